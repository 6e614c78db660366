package launchpad

import (
	"github.com/shopspring/decimal"
)

// solDecimals scales lamports to SOL.
const solDecimals = 9

// BuyQuote prices a prospective buy without touching state. The lamport
// cost uses the same floor rounding as Buy, including the one-lamport
// minimum charge.
func BuyQuote(c *BondingCurve, amount uint64) (lamports uint64, ui decimal.Decimal, err error) {
	lamports, err = saleCost(amount, c.TokenInvestingPrice)
	if err != nil {
		return 0, decimal.Zero, err
	}
	if lamports == 0 {
		lamports = 1
	}
	return lamports, LamportsToSOL(lamports), nil
}

// SellQuote prices a prospective refund; no minimum charge applies.
func SellQuote(c *BondingCurve, amount uint64) (lamports uint64, ui decimal.Decimal, err error) {
	lamports, err = saleCost(amount, c.TokenInvestingPrice)
	if err != nil {
		return 0, decimal.Zero, err
	}
	return lamports, LamportsToSOL(lamports), nil
}

// LamportsToSOL converts lamports to a UI SOL amount.
func LamportsToSOL(v uint64) decimal.Decimal {
	return decimal.NewFromUint64(v).Shift(-solDecimals)
}

// TokenUI converts a raw token amount to its UI representation at the
// engine's fixed decimals.
func TokenUI(v uint64) decimal.Decimal {
	return decimal.NewFromUint64(v).Shift(-TokenDecimals)
}
