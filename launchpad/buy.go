package launchpad

import (
	solanago "github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/memechef/memechef-go/events"
	"github.com/memechef/memechef-go/merkle"
	"github.com/memechef/memechef-go/safemath"
)

// saleCost prices an amount at the fixed sale price, floor-rounded at the
// token's decimal scale.
func saleCost(amount, price uint64) (uint64, error) {
	cost, err := safemath.MulDivFloor(amount, price, safemath.Pow10(TokenDecimals))
	if err != nil {
		return 0, ErrMathOverflow
	}
	return cost, nil
}

// Buy purchases amount tokens at the fixed sale price, paying at most
// maxSolCost lamports. During the allowlist window a Merkle proof for the
// buyer's address is required. A buy that reaches the investing allocation
// is clipped to the remainder and completes the sale; this is the only
// transition from Active to Completed and it is irreversible.
//
// Tokens are not delivered here: the purchase record accrues the buyer's
// entitlement, redeemed by Claim after migration.
func (e *Engine) Buy(buyer, mint solanago.PublicKey, amount, maxSolCost uint64, proof [][32]byte) error {
	if amount == 0 || maxSolCost == 0 {
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
	if c.TokenInvestingDeadline <= now {
		return ErrCurveEnded
	}

	if now < c.InvestingStartAt {
		// Before the public window only allowlisted buyers may enter.
		if !c.Whitelisted {
			return ErrCurveNotStarted
		}
		if now < c.WhitelistStartAt {
			return ErrCurveNotStarted
		}
		if len(proof) == 0 {
			return ErrMerkleProofMissing
		}
		if !merkle.Verify(proof, c.MerkleRoot, merkle.Leaf(buyer)) {
			return ErrNotWhitelisted
		}
	}

	tokensSold, err := safemath.Sub(c.TokenTotalSupply, c.TokenReserves)
	if err != nil {
		return ErrMathOverflow
	}
	remaining, err := safemath.Sub(c.TokenInvestingSupply, tokensSold)
	if err != nil {
		return ErrMathOverflow
	}

	tokenAmount := amount
	completed := false
	if amount >= remaining {
		// Partial-fill-to-close: the last buyer gets only the remainder.
		tokenAmount = remaining
		completed = true
	}

	solAmount, err := saleCost(tokenAmount, c.TokenInvestingPrice)
	if err != nil {
		return err
	}
	// A vanishingly small remainder can price to zero; charge the minimum
	// unit so the sale can still close.
	if solAmount == 0 {
		solAmount = 1
	}

	if solAmount > maxSolCost {
		return ErrTooMuchSolRequired
	}

	newSolReserves, err := safemath.Add(c.SolReserves, solAmount)
	if err != nil {
		return ErrMathOverflow
	}
	newTokenReserves, err := safemath.Sub(c.TokenReserves, tokenAmount)
	if err != nil {
		return ErrMathOverflow
	}

	p, ok, err := e.loadPurchase(mint, buyer)
	if err != nil {
		return err
	}
	if !ok {
		p = &UserPurchase{User: buyer, Mint: mint}
	}
	newPurchase, err := safemath.Add(p.TokenAmount, tokenAmount)
	if err != nil {
		return ErrMathOverflow
	}

	if err := e.native.Transfer(buyer, DeriveBondingCurveVault(mint), solAmount); err != nil {
		return err
	}

	c.SolReserves = newSolReserves
	c.TokenReserves = newTokenReserves
	p.TokenAmount = newPurchase
	if completed {
		c.Completed = true
	}
	if err := e.saveCurve(mint, c); err != nil {
		return err
	}
	if err := e.savePurchase(p); err != nil {
		return err
	}

	e.events.Publish(events.TradeEvent{
		Mint:        mint,
		SolAmount:   solAmount,
		TokenAmount: tokenAmount,
		FeeAmount:   0,
		IsBuy:       true,
		User:        buyer,
		Timestamp:   int64(now),
	})

	if completed {
		e.logger.Info("bonding curve completed", zap.Stringer("mint", mint))
		e.events.Publish(events.CompleteEvent{
			User:         buyer,
			Mint:         mint,
			BondingCurve: DeriveBondingCurveAddress(mint),
			Timestamp:    int64(now),
		})
	}
	return nil
}
