package launchpad_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/memechef/memechef-go/launchpad"
)

func TestBuyQuoteMatchesBuyPricing(t *testing.T) {
	c := &launchpad.BondingCurve{TokenInvestingPrice: tPrice}

	lamports, ui, err := launchpad.BuyQuote(c, 1_000_000)
	require.NoError(t, err)
	require.Equal(t, uint64(3_000), lamports)
	require.Equal(t, "0.000003", ui.String())
}

func TestBuyQuoteMinimumCharge(t *testing.T) {
	c := &launchpad.BondingCurve{TokenInvestingPrice: 3}

	lamports, ui, err := launchpad.BuyQuote(c, 1)
	require.NoError(t, err)
	require.Equal(t, uint64(1), lamports)
	require.Equal(t, "0.000000001", ui.String())
}

func TestSellQuoteHasNoMinimum(t *testing.T) {
	c := &launchpad.BondingCurve{TokenInvestingPrice: 3}

	lamports, _, err := launchpad.SellQuote(c, 1)
	require.NoError(t, err)
	require.Zero(t, lamports)
}

func TestUIConversions(t *testing.T) {
	require.Equal(t, "1", launchpad.LamportsToSOL(1_000_000_000).String())
	require.Equal(t, "1.5", launchpad.TokenUI(1_500_000).String())
}
