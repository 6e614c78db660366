package launchpad

import (
	solanago "github.com/gagliardetto/solana-go"

	"github.com/memechef/memechef-go/events"
	"github.com/memechef/memechef-go/safemath"
)

// Sell refunds a purchase at the original sale price. It is only enabled
// for a sale that expired without completing; it is a refund path, not a
// secondary market.
func (e *Engine) Sell(seller, mint solanago.PublicKey, amount, minSolOutput uint64) error {
	if amount == 0 || minSolOutput == 0 {
		return ErrInvalidValue
	}

	c, err := e.loadCurve(mint)
	if err != nil {
		return err
	}

	now := uint64(e.now())

	if c.Completed {
		return ErrCurveCompleted
	}
	if c.TokenInvestingDeadline > now {
		return ErrCurveNotEnded
	}

	p, ok, err := e.loadPurchase(mint, seller)
	if err != nil {
		return err
	}
	if !ok || p.TokenAmount < amount {
		return ErrInsufficientBalance
	}

	solAmount, err := saleCost(amount, c.TokenInvestingPrice)
	if err != nil {
		return err
	}
	if solAmount < minSolOutput {
		return ErrTooLittleSolReceived
	}
	if c.SolReserves < solAmount {
		return ErrInvalidValue
	}

	newSolReserves, err := safemath.Sub(c.SolReserves, solAmount)
	if err != nil {
		return ErrMathOverflow
	}
	newTokenReserves, err := safemath.Add(c.TokenReserves, amount)
	if err != nil {
		return ErrMathOverflow
	}
	newPurchase, err := safemath.Sub(p.TokenAmount, amount)
	if err != nil {
		return ErrMathOverflow
	}

	if err := e.native.Transfer(DeriveBondingCurveVault(mint), seller, solAmount); err != nil {
		return err
	}

	c.SolReserves = newSolReserves
	c.TokenReserves = newTokenReserves
	p.TokenAmount = newPurchase
	if err := e.saveCurve(mint, c); err != nil {
		return err
	}
	if err := e.savePurchase(p); err != nil {
		return err
	}

	e.events.Publish(events.TradeEvent{
		Mint:        mint,
		SolAmount:   solAmount,
		TokenAmount: amount,
		FeeAmount:   0,
		IsBuy:       false,
		User:        seller,
		Timestamp:   int64(now),
	})
	return nil
}
