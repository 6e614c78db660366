// Package launchpad implements a fixed-price token-sale engine: per-mint
// bonding-curve records sold during a timed window, settled once complete,
// and migrated into an external pool, after which buyers claim their tokens.
//
// The engine is host-free. Signer verification, rent bookkeeping, and
// transaction plumbing live outside; value movement goes through the
// collaborator interfaces below. The engine performs no cross-operation
// locking: the caller serializes operations that touch the same mint.
package launchpad

import (
	"time"

	solanago "github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/memechef/memechef-go/events"
)

// NativeLedger moves the native currency (lamports) between addresses.
type NativeLedger interface {
	Balance(addr solanago.PublicKey) uint64
	Transfer(from, to solanago.PublicKey, lamports uint64) error
}

// TokenLedger is the fungible-token collaborator. Amounts are in the
// token's smallest unit; decimals are fixed at creation.
type TokenLedger interface {
	CreateMint(mint solanago.PublicKey, decimals uint8, authority solanago.PublicKey) error
	MintTo(mint, to solanago.PublicKey, amount uint64) error
	Transfer(mint, from, to solanago.PublicKey, amount uint64) error
	Burn(mint, from solanago.PublicKey, amount uint64) error
	RevokeMintAuthority(mint solanago.PublicKey) error
	Balance(mint, holder solanago.PublicKey) uint64
}

// MetadataRegistry accepts token metadata at creation time.
type MetadataRegistry interface {
	Register(mint solanago.PublicKey, name, symbol, uri string) error
}

// PoolGateway provisions an external AMM pool from settled reserves.
// token0 must compare below token1 in raw byte order; the gateway rejects
// any other ordering. LP shares are credited to lpOwner.
type PoolGateway interface {
	CreatePool(token0, token1 solanago.PublicKey, amount0, amount1 uint64, funder0, funder1, lpOwner solanago.PublicKey, openTime int64) (lpMint solanago.PublicKey, lpAmount uint64, err error)
}

// Clock supplies ambient UNIX time. Deadlines are domain data compared
// against it, not a scheduling mechanism.
type Clock func() int64

// Engine owns the record arena and applies every state transition
// atomically: all validation and balance checks precede the first mutating
// effect, so a failed operation leaves no partial state.
type Engine struct {
	store    Store
	native   NativeLedger
	tokens   TokenLedger
	metadata MetadataRegistry
	pool     PoolGateway

	now    Clock
	logger *zap.Logger
	events events.Publisher
}

type Option func(*Engine)

// WithClock overrides the ambient clock, mainly for tests.
func WithClock(now Clock) Option {
	return func(e *Engine) { e.now = now }
}

func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithEvents wires an event publisher for off-system indexing.
func WithEvents(pub events.Publisher) Option {
	return func(e *Engine) { e.events = pub }
}

func NewEngine(store Store, native NativeLedger, tokens TokenLedger, metadata MetadataRegistry, pool PoolGateway, opts ...Option) *Engine {
	e := &Engine{
		store:    store,
		native:   native,
		tokens:   tokens,
		metadata: metadata,
		pool:     pool,
		now:      func() int64 { return time.Now().Unix() },
		logger:   zap.NewNop(),
		events:   events.Nop{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// requireCaller is the uniform capability check invoked at the top of every
// privileged operation, before any mutation.
func requireCaller(caller, required solanago.PublicKey) error {
	if !caller.Equals(required) {
		return ErrNotAuthorized
	}
	return nil
}

func (e *Engine) loadGlobal() (*GlobalConfig, error) {
	data, ok := e.store.Get(DeriveGlobalAddress())
	if !ok {
		return nil, ErrNotInitialized
	}
	g := new(GlobalConfig)
	if err := unmarshalRecord(data, g); err != nil {
		return nil, err
	}
	if !g.Initialized {
		return nil, ErrNotInitialized
	}
	return g, nil
}

func (e *Engine) saveGlobal(g *GlobalConfig) error {
	data, err := marshalRecord(g)
	if err != nil {
		return err
	}
	e.store.Put(DeriveGlobalAddress(), data)
	return nil
}

func (e *Engine) loadCurve(mint solanago.PublicKey) (*BondingCurve, error) {
	data, ok := e.store.Get(DeriveBondingCurveAddress(mint))
	if !ok {
		return nil, ErrCurveNotFound
	}
	c := new(BondingCurve)
	if err := unmarshalRecord(data, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (e *Engine) saveCurve(mint solanago.PublicKey, c *BondingCurve) error {
	data, err := marshalRecord(c)
	if err != nil {
		return err
	}
	e.store.Put(DeriveBondingCurveAddress(mint), data)
	return nil
}

func (e *Engine) loadPurchase(mint, user solanago.PublicKey) (*UserPurchase, bool, error) {
	data, ok := e.store.Get(DeriveUserPurchaseAddress(mint, user))
	if !ok {
		return nil, false, nil
	}
	p := new(UserPurchase)
	if err := unmarshalRecord(data, p); err != nil {
		return nil, false, err
	}
	return p, true, nil
}

func (e *Engine) savePurchase(p *UserPurchase) error {
	data, err := marshalRecord(p)
	if err != nil {
		return err
	}
	e.store.Put(DeriveUserPurchaseAddress(p.Mint, p.User), data)
	return nil
}

// Global returns a copy of the config singleton.
func (e *Engine) Global() (GlobalConfig, error) {
	g, err := e.loadGlobal()
	if err != nil {
		return GlobalConfig{}, err
	}
	return *g, nil
}

// Curve returns a copy of the sale record for a mint.
func (e *Engine) Curve(mint solanago.PublicKey) (BondingCurve, error) {
	c, err := e.loadCurve(mint)
	if err != nil {
		return BondingCurve{}, err
	}
	return *c, nil
}

// Purchase returns a copy of the purchase record for a (mint, buyer) pair.
// A buyer with no record has a zero purchase.
func (e *Engine) Purchase(mint, user solanago.PublicKey) (UserPurchase, error) {
	p, ok, err := e.loadPurchase(mint, user)
	if err != nil {
		return UserPurchase{}, err
	}
	if !ok {
		return UserPurchase{User: user, Mint: mint}, nil
	}
	return *p, nil
}
