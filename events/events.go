package events

import (
	solanago "github.com/gagliardetto/solana-go"
)

// Type identifies an event kind for subscription routing.
type Type string

const (
	TypeCreate          Type = "create"
	TypeTrade           Type = "trade"
	TypeComplete        Type = "complete"
	TypeWithdraw        Type = "withdraw"
	TypeMigrate         Type = "migrate"
	TypeMigrateFallback Type = "migrate_fallback"
	TypeClaim           Type = "claim"
)

// Event is an observational record of a state transition. Events are
// published for off-system indexing and are never consumed back by the
// engine.
type Event interface {
	Type() Type
	Unix() int64
}

// CreateEvent is emitted when a token and its sale record are created.
type CreateEvent struct {
	Name         string
	Symbol       string
	URI          string
	Mint         solanago.PublicKey
	BondingCurve solanago.PublicKey
	User         solanago.PublicKey
	Timestamp    int64
}

func (e CreateEvent) Type() Type  { return TypeCreate }
func (e CreateEvent) Unix() int64 { return e.Timestamp }

// TradeEvent is emitted for every buy and sell, carrying the economic
// amounts moved.
type TradeEvent struct {
	Mint        solanago.PublicKey
	SolAmount   uint64
	TokenAmount uint64
	FeeAmount   uint64
	IsBuy       bool
	User        solanago.PublicKey
	Timestamp   int64
}

func (e TradeEvent) Type() Type  { return TypeTrade }
func (e TradeEvent) Unix() int64 { return e.Timestamp }

// CompleteEvent marks the moment the investing allocation sells out.
type CompleteEvent struct {
	User         solanago.PublicKey
	Mint         solanago.PublicKey
	BondingCurve solanago.PublicKey
	Timestamp    int64
}

func (e CompleteEvent) Type() Type  { return TypeComplete }
func (e CompleteEvent) Unix() int64 { return e.Timestamp }

// WithdrawEvent carries the settlement amounts of the one-time withdrawal.
type WithdrawEvent struct {
	User         solanago.PublicKey
	Mint         solanago.PublicKey
	BondingCurve solanago.PublicKey
	TokenAmount  uint64
	SolAmount    uint64
	Timestamp    int64
}

func (e WithdrawEvent) Type() Type  { return TypeWithdraw }
func (e WithdrawEvent) Unix() int64 { return e.Timestamp }

// MigrateEvent reports the reserves handed to the external pool.
type MigrateEvent struct {
	User         solanago.PublicKey
	Mint         solanago.PublicKey
	BondingCurve solanago.PublicKey
	TokenAmount  uint64
	SolAmount    uint64
	Timestamp    int64
}

func (e MigrateEvent) Type() Type  { return TypeMigrate }
func (e MigrateEvent) Unix() int64 { return e.Timestamp }

// MigrateFallbackEvent reports a direct-transfer migration.
type MigrateFallbackEvent struct {
	User         solanago.PublicKey
	Mint         solanago.PublicKey
	BondingCurve solanago.PublicKey
	TokenAmount  uint64
	SolAmount    uint64
	Timestamp    int64
}

func (e MigrateFallbackEvent) Type() Type  { return TypeMigrateFallback }
func (e MigrateFallbackEvent) Unix() int64 { return e.Timestamp }

// ClaimEvent reports a buyer's post-migration redemption.
type ClaimEvent struct {
	User         solanago.PublicKey
	Mint         solanago.PublicKey
	BondingCurve solanago.PublicKey
	TokenAmount  uint64
	Timestamp    int64
}

func (e ClaimEvent) Type() Type  { return TypeClaim }
func (e ClaimEvent) Unix() int64 { return e.Timestamp }
