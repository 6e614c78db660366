package launchpad

import (
	"bytes"

	solanago "github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/memechef/memechef-go/events"
)

// checkMigratable validates the shared preconditions of every migration
// path and returns the loaded records.
func (e *Engine) checkMigratable(caller, mint solanago.PublicKey) (*GlobalConfig, *BondingCurve, error) {
	g, err := e.loadGlobal()
	if err != nil {
		return nil, nil, err
	}
	if err := requireCaller(caller, g.MigrationCaller); err != nil {
		return nil, nil, err
	}
	c, err := e.loadCurve(mint)
	if err != nil {
		return nil, nil, err
	}
	if !c.Completed {
		return nil, nil, ErrCurveNotCompleted
	}
	if !c.Withdrawed {
		return nil, nil, ErrNotWithdrawn
	}
	if c.Migrated {
		return nil, nil, ErrAlreadyMigrated
	}
	return g, c, nil
}

// Migrate moves the settled pool-reserved pair into the external AMM and
// forwards the minted LP shares to the configured LP recipient. The pool
// expects its two mints in ascending raw byte order, which differs from the
// native-first ordering used elsewhere.
func (e *Engine) Migrate(caller, mint solanago.PublicKey) error {
	g, c, err := e.checkMigratable(caller, mint)
	if err != nil {
		return err
	}

	vault := DeriveBondingCurveVault(mint)
	curveAddr := DeriveBondingCurveAddress(mint)
	tokenAmount := c.TokenReserves
	solAmount := c.SolReserves

	// Defensive re-check against external draining of the vault.
	if e.native.Balance(vault) < solAmount {
		return ErrInsufficientBalance
	}

	token0, token1 := solanago.WrappedSol, mint
	amount0, amount1 := solAmount, tokenAmount
	funder0, funder1 := vault, curveAddr
	if bytes.Compare(mint.Bytes(), solanago.WrappedSol.Bytes()) < 0 {
		token0, token1 = mint, solanago.WrappedSol
		amount0, amount1 = tokenAmount, solAmount
		funder0, funder1 = curveAddr, vault
	}

	lpMint, lpAmount, err := e.pool.CreatePool(token0, token1, amount0, amount1, funder0, funder1, g.LpRecipient, 0)
	if err != nil {
		return err
	}

	c.TokenReserves = 0
	c.SolReserves = 0
	c.Migrated = true
	if err := e.saveCurve(mint, c); err != nil {
		return err
	}

	e.logger.Info("liquidity migrated",
		zap.Stringer("mint", mint),
		zap.Stringer("lp_mint", lpMint),
		zap.Uint64("lp_amount", lpAmount),
		zap.Uint64("token_amount", tokenAmount),
		zap.Uint64("sol_amount", solAmount))

	e.events.Publish(events.MigrateEvent{
		User:         caller,
		Mint:         mint,
		BondingCurve: curveAddr,
		TokenAmount:  tokenAmount,
		SolAmount:    solAmount,
		Timestamp:    e.now(),
	})
	return nil
}

// MigrateFallback transfers the settled reserves directly to the LP
// recipient without creating a pool, for token pairs where external pool
// provisioning is unavailable or undesired.
func (e *Engine) MigrateFallback(caller, mint solanago.PublicKey) error {
	g, c, err := e.checkMigratable(caller, mint)
	if err != nil {
		return err
	}

	vault := DeriveBondingCurveVault(mint)
	curveAddr := DeriveBondingCurveAddress(mint)
	tokenAmount := c.TokenReserves
	solAmount := c.SolReserves

	if e.native.Balance(vault) < solAmount {
		return ErrInsufficientBalance
	}

	if solAmount > 0 {
		if err := e.native.Transfer(vault, g.LpRecipient, solAmount); err != nil {
			return err
		}
	}
	if tokenAmount > 0 {
		if err := e.tokens.Transfer(mint, curveAddr, g.LpRecipient, tokenAmount); err != nil {
			return err
		}
	}

	c.TokenReserves = 0
	c.SolReserves = 0
	c.Migrated = true
	if err := e.saveCurve(mint, c); err != nil {
		return err
	}

	e.logger.Info("liquidity migrated via fallback",
		zap.Stringer("mint", mint),
		zap.Uint64("token_amount", tokenAmount),
		zap.Uint64("sol_amount", solAmount))

	e.events.Publish(events.MigrateFallbackEvent{
		User:         caller,
		Mint:         mint,
		BondingCurve: curveAddr,
		TokenAmount:  tokenAmount,
		SolAmount:    solAmount,
		Timestamp:    e.now(),
	})
	return nil
}

// SetMigrated flips the migrated flag without moving funds. It is an
// administrative escape hatch for when automated migration cannot run.
func (e *Engine) SetMigrated(caller, mint solanago.PublicKey) error {
	_, c, err := e.checkMigratable(caller, mint)
	if err != nil {
		return err
	}
	c.Migrated = true
	if err := e.saveCurve(mint, c); err != nil {
		return err
	}
	e.logger.Info("migrated flag set manually", zap.Stringer("mint", mint))
	return nil
}
