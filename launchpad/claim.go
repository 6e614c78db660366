package launchpad

import (
	solanago "github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/memechef/memechef-go/events"
)

// Claim transfers a buyer's full purchased amount out of the sale's token
// vault and zeroes the record. Claims open only once the sale has migrated;
// a drained record fails cleanly rather than double-paying.
func (e *Engine) Claim(buyer, mint solanago.PublicKey) error {
	c, err := e.loadCurve(mint)
	if err != nil {
		return err
	}
	if !c.Migrated {
		return ErrNotMigrated
	}

	p, ok, err := e.loadPurchase(mint, buyer)
	if err != nil {
		return err
	}
	if !ok || p.TokenAmount == 0 {
		return ErrNoPurchaseRecord
	}

	tokenAmount := p.TokenAmount
	curveAddr := DeriveBondingCurveAddress(mint)
	if err := e.tokens.Transfer(mint, curveAddr, buyer, tokenAmount); err != nil {
		return err
	}

	p.TokenAmount = 0
	if err := e.savePurchase(p); err != nil {
		return err
	}

	e.logger.Info("purchase claimed",
		zap.Stringer("user", buyer),
		zap.Stringer("mint", mint),
		zap.Uint64("token_amount", tokenAmount))

	e.events.Publish(events.ClaimEvent{
		User:         buyer,
		Mint:         mint,
		BondingCurve: curveAddr,
		TokenAmount:  tokenAmount,
		Timestamp:    e.now(),
	})
	return nil
}
