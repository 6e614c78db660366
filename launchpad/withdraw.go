package launchpad

import (
	solanago "github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/memechef/memechef-go/events"
	"github.com/memechef/memechef-go/safemath"
)

// WithdrawSettlement is the deterministic split a withdrawal produces from
// a completed curve's reserves.
type WithdrawSettlement struct {
	TokenBurn        uint64
	FinalSolReserves uint64
	SolFee           uint64
	SolCreator       uint64
}

// settleWithdraw computes the settlement without touching state. The
// token-burn subtraction is checked: a partition violation is a fatal
// accounting error, never a silent wrap.
func settleWithdraw(c *BondingCurve) (WithdrawSettlement, error) {
	var s WithdrawSettlement

	burn := c.TokenReserves
	var err error
	for _, reserve := range []uint64{c.TokenPoolReserve, c.TokenCreatorReserve, c.TokenPlatformReserve} {
		if burn, err = safemath.Sub(burn, reserve); err != nil {
			return s, ErrMathOverflow
		}
	}
	s.TokenBurn = burn

	s.FinalSolReserves, err = safemath.MulDivFloor(c.TokenPoolReserve, c.TokenLaunchingPrice, safemath.Pow10(TokenDecimals))
	if err != nil {
		return s, ErrMathOverflow
	}

	solWithdraw, err := safemath.Sub(c.SolReserves, s.FinalSolReserves)
	if err != nil {
		return s, ErrMathOverflow
	}
	s.SolFee, err = safemath.MulDivFloor(solWithdraw, uint64(c.WithdrawFeeBps), BasePoints)
	if err != nil {
		return s, ErrMathOverflow
	}
	s.SolCreator = solWithdraw - s.SolFee
	return s, nil
}

// Withdraw settles a completed sale exactly once: burns the surplus supply,
// splits the raised native currency between creator and platform, moves the
// creator/platform token reserves out, and pins the pool-reserved pair for
// migration.
func (e *Engine) Withdraw(caller, mint solanago.PublicKey) error {
	g, err := e.loadGlobal()
	if err != nil {
		return err
	}
	if err := requireCaller(caller, g.MigrationCaller); err != nil {
		return err
	}

	c, err := e.loadCurve(mint)
	if err != nil {
		return err
	}
	if !c.Completed {
		return ErrCurveNotCompleted
	}
	if c.Withdrawed {
		return ErrAlreadyWithdrawn
	}

	s, err := settleWithdraw(c)
	if err != nil {
		return err
	}

	curveAddr := DeriveBondingCurveAddress(mint)
	vault := DeriveBondingCurveVault(mint)

	// Defensive re-check against external draining of the vault, before the
	// burn makes the operation irreversible.
	if e.native.Balance(vault) < s.SolCreator+s.SolFee {
		return ErrInsufficientBalance
	}

	if s.TokenBurn > 0 {
		if err := e.tokens.Burn(mint, curveAddr, s.TokenBurn); err != nil {
			return err
		}
	}
	if err := e.native.Transfer(vault, c.WithdrawRecipient, s.SolCreator); err != nil {
		return err
	}
	if err := e.native.Transfer(vault, g.FeeRecipient, s.SolFee); err != nil {
		return err
	}
	if c.TokenCreatorReserve > 0 {
		if err := e.tokens.Transfer(mint, curveAddr, c.WithdrawRecipient, c.TokenCreatorReserve); err != nil {
			return err
		}
	}
	if c.TokenPlatformReserve > 0 {
		if err := e.tokens.Transfer(mint, curveAddr, g.FeeRecipient, c.TokenPlatformReserve); err != nil {
			return err
		}
	}

	c.SolReserves = s.FinalSolReserves
	c.TokenReserves = c.TokenPoolReserve
	c.Withdrawed = true
	if err := e.saveCurve(mint, c); err != nil {
		return err
	}

	e.logger.Info("withdraw settled",
		zap.Stringer("mint", mint),
		zap.Uint64("token_burn", s.TokenBurn),
		zap.Uint64("sol_creator", s.SolCreator),
		zap.Uint64("sol_fee", s.SolFee))

	e.events.Publish(events.WithdrawEvent{
		User:         caller,
		Mint:         mint,
		BondingCurve: curveAddr,
		TokenAmount:  s.TokenBurn,
		SolAmount:    s.SolCreator,
		Timestamp:    e.now(),
	})
	return nil
}
