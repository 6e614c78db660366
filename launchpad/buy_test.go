package launchpad_test

import (
	"testing"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/memechef/memechef-go/events"
	"github.com/memechef/memechef-go/launchpad"
	"github.com/memechef/memechef-go/merkle"
)

func TestBuyAccruesPurchase(t *testing.T) {
	env := newTestEnv(t)
	mint := env.createSale(nil)
	buyer := env.newBuyer()

	vault := launchpad.DeriveBondingCurveVault(mint)
	vaultBefore := env.native.Balance(vault)
	buyerBefore := env.native.Balance(buyer)

	amount := uint64(1_000_000_000_000) // 1M tokens
	cost := amount / 1_000_000 * tPrice // 3e9 lamports

	require.NoError(t, env.engine.Buy(buyer, mint, amount, cost, nil))

	curve, err := env.engine.Curve(mint)
	require.NoError(t, err)
	require.Equal(t, cost, curve.SolReserves)
	require.Equal(t, uint64(tTotalSupply)-amount, curve.TokenReserves)
	require.False(t, curve.Completed)

	p, err := env.engine.Purchase(mint, buyer)
	require.NoError(t, err)
	require.Equal(t, amount, p.TokenAmount)

	require.Equal(t, vaultBefore+cost, env.native.Balance(vault))
	require.Equal(t, buyerBefore-cost, env.native.Balance(buyer))

	// Tokens stay in the sale vault until Claim.
	require.Zero(t, env.tokens.Balance(mint, buyer))
}

func TestBuyZeroAmount(t *testing.T) {
	env := newTestEnv(t)
	mint := env.createSale(nil)
	buyer := env.newBuyer()

	require.ErrorIs(t, env.engine.Buy(buyer, mint, 0, 1, nil), launchpad.ErrInvalidValue)
	require.ErrorIs(t, env.engine.Buy(buyer, mint, 1, 0, nil), launchpad.ErrInvalidValue)
}

func TestBuySlippageExceeded(t *testing.T) {
	env := newTestEnv(t)
	mint := env.createSale(nil)
	buyer := env.newBuyer()

	amount := uint64(1_000_000) // costs 3000 lamports
	err := env.engine.Buy(buyer, mint, amount, 2_999, nil)
	require.ErrorIs(t, err, launchpad.ErrTooMuchSolRequired)
}

func TestBuyClipsAtInvestingSupply(t *testing.T) {
	env := newTestEnv(t)
	mint := env.createSale(nil)
	first := env.newBuyer()
	last := env.newBuyer()

	var trades []events.TradeEvent
	env.bus.Subscribe(events.TypeTrade, func(ev events.Event) {
		trades = append(trades, ev.(events.TradeEvent))
	})
	completed := 0
	env.bus.Subscribe(events.TypeComplete, func(events.Event) { completed++ })

	require.NoError(t, env.engine.Buy(first, mint, tInvestingSupply-50, buyerFunding, nil))

	// Only 50 raw units remain; the 100 asked for is clipped and the sale
	// completes.
	require.NoError(t, env.engine.Buy(last, mint, 100, buyerFunding, nil))

	curve, err := env.engine.Curve(mint)
	require.NoError(t, err)
	require.True(t, curve.Completed)
	require.Equal(t, uint64(tTotalSupply-tInvestingSupply), curve.TokenReserves)

	p, err := env.engine.Purchase(mint, last)
	require.NoError(t, err)
	require.Equal(t, uint64(50), p.TokenAmount)

	require.Len(t, trades, 2)
	require.Equal(t, uint64(50), trades[1].TokenAmount)
	require.True(t, trades[1].IsBuy)
	require.Equal(t, 1, completed)
}

func TestBuyAfterCompletion(t *testing.T) {
	env := newTestEnv(t)
	mint := env.createSale(nil)
	env.completeSale(mint)

	buyer := env.newBuyer()
	require.ErrorIs(t, env.engine.Buy(buyer, mint, 1_000_000, buyerFunding, nil), launchpad.ErrCurveCompleted)
}

func TestBuyAfterDeadline(t *testing.T) {
	env := newTestEnv(t)
	mint := env.createSale(nil)
	buyer := env.newBuyer()

	env.now = int64(tDeadline)
	require.ErrorIs(t, env.engine.Buy(buyer, mint, 1_000_000, buyerFunding, nil), launchpad.ErrCurveEnded)
}

func TestBuyMinimumCharge(t *testing.T) {
	env := newTestEnv(t)
	mint := env.createSale(&saleOpts{price: 3})
	buyer := env.newBuyer()

	vault := launchpad.DeriveBondingCurveVault(mint)
	vaultBefore := env.native.Balance(vault)

	// 3 * 1 / 10^6 floors to zero; the buyer is charged the minimum lamport.
	require.NoError(t, env.engine.Buy(buyer, mint, 1, 1, nil))

	curve, err := env.engine.Curve(mint)
	require.NoError(t, err)
	require.Equal(t, uint64(1), curve.SolReserves)
	require.Equal(t, vaultBefore+1, env.native.Balance(vault))
}

func TestBuySaleWindowGating(t *testing.T) {
	env := newTestEnv(t)

	allowed := env.newBuyer()
	other := env.newBuyer()
	outsider := env.newBuyer()

	tree, err := merkle.NewAddressTree([]solanago.PublicKey{allowed, other})
	require.NoError(t, err)

	wlStart := uint64(tNow) + 100
	pubStart := uint64(tNow) + 200
	mint := env.createSale(&saleOpts{
		whitelisted:      true,
		merkleRoot:       tree.Root(),
		whitelistStartAt: wlStart,
		investingStartAt: pubStart,
	})

	proof, err := tree.Proof(merkle.Leaf(allowed))
	require.NoError(t, err)

	amount := uint64(1_000_000)

	// Before the allowlist window even a valid proof is rejected.
	require.ErrorIs(t, env.engine.Buy(allowed, mint, amount, buyerFunding, proof), launchpad.ErrCurveNotStarted)

	// Inside the allowlist window: proof required, membership enforced.
	env.now = int64(wlStart)
	require.ErrorIs(t, env.engine.Buy(allowed, mint, amount, buyerFunding, nil), launchpad.ErrMerkleProofMissing)
	require.ErrorIs(t, env.engine.Buy(outsider, mint, amount, buyerFunding, proof), launchpad.ErrNotWhitelisted)
	require.NoError(t, env.engine.Buy(allowed, mint, amount, buyerFunding, proof))

	// Public window: anyone buys, no proof needed.
	env.now = int64(pubStart)
	require.NoError(t, env.engine.Buy(outsider, mint, amount, buyerFunding, nil))
}

func TestBuySellConservation(t *testing.T) {
	env := newTestEnv(t)
	mint := env.createSale(nil)
	vault := launchpad.DeriveBondingCurveVault(mint)
	rent := env.native.Balance(vault)

	buyers := []solanago.PublicKey{env.newBuyer(), env.newBuyer(), env.newBuyer()}

	check := func() {
		t.Helper()
		curve, err := env.engine.Curve(mint)
		require.NoError(t, err)
		var held uint64
		for _, b := range buyers {
			p, err := env.engine.Purchase(mint, b)
			require.NoError(t, err)
			held += p.TokenAmount
		}
		require.Equal(t, uint64(tTotalSupply), curve.TokenReserves+held)
		require.Equal(t, curve.SolReserves, env.native.Balance(vault)-rent)
	}

	for i, b := range buyers {
		amount := uint64(i+1) * 2_000_000_000_000
		require.NoError(t, env.engine.Buy(b, mint, amount, buyerFunding, nil))
		check()
	}

	// Expire the sale and refund in uneven pieces.
	env.now = int64(tDeadline)
	require.NoError(t, env.engine.Sell(buyers[0], mint, 1_500_000_000_000, 1))
	check()
	require.NoError(t, env.engine.Sell(buyers[2], mint, 6_000_000_000_000, 1))
	check()
}
