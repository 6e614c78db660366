package launchpad

import (
	"bytes"

	bin "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"
)

// GlobalConfig is the administrator-controlled singleton shared by every
// sale. Sale records snapshot the fields they depend on at creation time;
// later config changes never retroactively affect a live curve.
type GlobalConfig struct {
	Initialized bool
	Authority   solanago.PublicKey

	FeeBps          uint16
	TokenPriceUpBps uint16
	WithdrawFeeBps  uint16

	TokenTotalSupply     uint64
	TokenInvestingSupply uint64

	FeeRecipient    solanago.PublicKey
	LpRecipient     solanago.PublicKey
	MigrationCaller solanago.PublicKey

	TokenCreatorReserve  uint64
	TokenPlatformReserve uint64
	TokenPoolReserve     uint64
}

// BondingCurve is the per-mint sale record. It is born with the full token
// supply in reserve, transitions Active -> Completed -> Withdrawn ->
// Migrated, and is never deleted.
type BondingCurve struct {
	SolReserves   uint64
	TokenReserves uint64

	TokenTotalSupply     uint64
	TokenInvestingSupply uint64

	TokenInvestingPrice    uint64
	TokenInvestingDeadline uint64
	TokenLaunchingPrice    uint64

	WithdrawFeeBps    uint16
	WithdrawRecipient solanago.PublicKey

	Completed bool

	InvestingStartAt uint64

	Whitelisted      bool
	MerkleRoot       [32]byte
	WhitelistStartAt uint64

	TokenCreatorReserve  uint64
	TokenPlatformReserve uint64
	TokenPoolReserve     uint64

	Migrated   bool
	Withdrawed bool
}

// UserPurchase accumulates tokens a buyer has paid for but not yet claimed.
type UserPurchase struct {
	User        solanago.PublicKey
	Mint        solanago.PublicKey
	TokenAmount uint64
}

func marshalRecord(v interface{}) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := bin.NewBorshEncoder(buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func unmarshalRecord(data []byte, v interface{}) error {
	return bin.NewBorshDecoder(data).Decode(v)
}
