package launchpad

import (
	solanago "github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/memechef/memechef-go/safemath"
)

// Initialize creates the config singleton with the caller as authority.
func (e *Engine) Initialize(caller solanago.PublicKey) error {
	if data, ok := e.store.Get(DeriveGlobalAddress()); ok {
		g := new(GlobalConfig)
		if err := unmarshalRecord(data, g); err != nil {
			return err
		}
		if g.Initialized {
			return ErrAlreadyInitialized
		}
	}
	g := &GlobalConfig{
		Initialized: true,
		Authority:   caller,
	}
	return e.saveGlobal(g)
}

// SetAuthority hands the config singleton to a new administrator.
func (e *Engine) SetAuthority(caller, newAuthority solanago.PublicKey) error {
	g, err := e.loadGlobal()
	if err != nil {
		return err
	}
	if err := requireCaller(caller, g.Authority); err != nil {
		return err
	}
	g.Authority = newAuthority
	return e.saveGlobal(g)
}

// Params is the full parameter set replaced atomically by SetParams.
type Params struct {
	FeeBps          uint16
	TokenPriceUpBps uint16
	WithdrawFeeBps  uint16

	TokenTotalSupply     uint64
	TokenInvestingSupply uint64
	TokenCreatorReserve  uint64
	TokenPlatformReserve uint64
	TokenPoolReserve     uint64

	FeeRecipient    solanago.PublicKey
	LpRecipient     solanago.PublicKey
	MigrationCaller solanago.PublicKey
}

// Validate applies the parameter invariants shared with the operator-side
// config loader: basis-point ranges, the supply partition, and the
// pool-funding requirement.
func (p Params) Validate() error {
	if p.FeeBps >= BasePoints {
		return ErrInvalidValue
	}
	if p.TokenPriceUpBps < BasePoints {
		return ErrInvalidValue
	}
	if p.WithdrawFeeBps >= BasePoints {
		return ErrInvalidValue
	}

	total := p.TokenInvestingSupply
	var err error
	for _, reserve := range []uint64{p.TokenCreatorReserve, p.TokenPlatformReserve, p.TokenPoolReserve} {
		if total, err = safemath.Add(total, reserve); err != nil {
			return ErrMathOverflow
		}
	}
	if total > p.TokenTotalSupply {
		return ErrInvalidValue
	}

	// The sale must raise enough native currency to seed the pool at the
	// marked-up launch price:
	// token_pool_reserve * price_up_bps <= token_investing_supply * 10000
	if safemath.MulCmp(p.TokenPoolReserve, uint64(p.TokenPriceUpBps), p.TokenInvestingSupply, BasePoints) > 0 {
		return ErrInvalidValue
	}
	return nil
}

// SetParams replaces every tunable config field at once. Partial
// application on validation failure is forbidden.
func (e *Engine) SetParams(caller solanago.PublicKey, p Params) error {
	g, err := e.loadGlobal()
	if err != nil {
		return err
	}
	if err := requireCaller(caller, g.Authority); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}

	g.FeeBps = p.FeeBps
	g.TokenPriceUpBps = p.TokenPriceUpBps
	g.WithdrawFeeBps = p.WithdrawFeeBps
	g.TokenTotalSupply = p.TokenTotalSupply
	g.TokenInvestingSupply = p.TokenInvestingSupply
	g.FeeRecipient = p.FeeRecipient
	g.LpRecipient = p.LpRecipient
	g.MigrationCaller = p.MigrationCaller
	g.TokenCreatorReserve = p.TokenCreatorReserve
	g.TokenPlatformReserve = p.TokenPlatformReserve
	g.TokenPoolReserve = p.TokenPoolReserve
	return e.saveGlobal(g)
}

// SetMerkleRoot replaces the allowlist root of a still-open sale.
func (e *Engine) SetMerkleRoot(caller, mint solanago.PublicKey, root [32]byte) error {
	g, err := e.loadGlobal()
	if err != nil {
		return err
	}
	if err := requireCaller(caller, g.Authority); err != nil {
		return err
	}
	c, err := e.loadCurve(mint)
	if err != nil {
		return err
	}
	if c.Completed {
		return ErrCurveCompleted
	}
	c.MerkleRoot = root
	if err := e.saveCurve(mint, c); err != nil {
		return err
	}
	e.logger.Info("merkle root updated", zap.Stringer("mint", mint))
	return nil
}
