package launchpad_test

import (
	"strings"
	"testing"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/memechef/memechef-go/launchpad"
)

func (env *testEnv) baseCreateParams() launchpad.CreateTokenParams {
	return launchpad.CreateTokenParams{
		Payer:             env.creator,
		Mint:              solanago.NewWallet().PublicKey(),
		Name:              "Chef Coin",
		Symbol:            "CHEF",
		URI:               "https://example.com/chef.json",
		InvestingPrice:    tPrice,
		InvestingDeadline: tDeadline,
		InvestingStartAt:  uint64(tNow),
		WithdrawRecipient: env.creator,
	}
}

func TestCreateTokenFundsVaultAndLocksMint(t *testing.T) {
	env := newTestEnv(t)

	creatorBefore := env.native.Balance(env.creator)
	mint := env.createSale(nil)

	// The payer's debit is exactly the vault's rent floor.
	vault := launchpad.DeriveBondingCurveVault(mint)
	debit := creatorBefore - env.native.Balance(env.creator)
	require.Equal(t, debit, env.native.Balance(vault))
	require.NotZero(t, debit)

	// Full supply sits on the curve and the mint is sealed.
	curveAddr := launchpad.DeriveBondingCurveAddress(mint)
	require.Equal(t, uint64(tTotalSupply), env.tokens.Balance(mint, curveAddr))
	require.Equal(t, uint64(tTotalSupply), env.tokens.Supply(mint))
	require.Error(t, env.tokens.MintTo(mint, env.creator, 1))

	decimals, err := env.tokens.Decimals(mint)
	require.NoError(t, err)
	require.Equal(t, uint8(launchpad.TokenDecimals), decimals)
}

func TestCreateTokenUnfundedPayerLeavesNoState(t *testing.T) {
	env := newTestEnv(t)

	p := env.baseCreateParams()
	p.Payer = solanago.NewWallet().PublicKey() // cannot cover the rent floor

	require.ErrorIs(t, env.engine.CreateToken(p), launchpad.ErrInsufficientBalance)

	// The failed create touches nothing: no metadata, no mint, no curve.
	_, ok := env.registry.Get(p.Mint)
	require.False(t, ok)
	require.Zero(t, env.tokens.Supply(p.Mint))
	_, err := env.engine.Curve(p.Mint)
	require.ErrorIs(t, err, launchpad.ErrCurveNotFound)

	// The same mint identity is still usable once the payer is funded.
	env.native.Credit(p.Payer, buyerFunding)
	require.NoError(t, env.engine.CreateToken(p))
}

func TestCreateTokenDuplicateMint(t *testing.T) {
	env := newTestEnv(t)
	p := env.baseCreateParams()
	require.NoError(t, env.engine.CreateToken(p))
	require.ErrorIs(t, env.engine.CreateToken(p), launchpad.ErrCurveExists)
}

func TestCreateTokenValidation(t *testing.T) {
	env := newTestEnv(t)

	cases := map[string]struct {
		mutate func(*launchpad.CreateTokenParams)
		want   error
	}{
		"zero price": {
			func(p *launchpad.CreateTokenParams) { p.InvestingPrice = 0 },
			launchpad.ErrInvalidValue,
		},
		"zero deadline": {
			func(p *launchpad.CreateTokenParams) { p.InvestingDeadline = 0 },
			launchpad.ErrInvalidValue,
		},
		"start after deadline": {
			func(p *launchpad.CreateTokenParams) { p.InvestingStartAt = p.InvestingDeadline },
			launchpad.ErrInvalidValue,
		},
		"whitelist window after public start": {
			func(p *launchpad.CreateTokenParams) {
				p.Whitelisted = true
				p.WhitelistStartAt = p.InvestingStartAt + 1
			},
			launchpad.ErrInvalidValue,
		},
		"whitelist start in the past": {
			func(p *launchpad.CreateTokenParams) {
				p.Whitelisted = true
				p.WhitelistStartAt = uint64(tNow) - 10
				p.InvestingStartAt = uint64(tNow) + 100
			},
			launchpad.ErrInvalidValue,
		},
		"name too long": {
			func(p *launchpad.CreateTokenParams) { p.Name = strings.Repeat("x", 33) },
			launchpad.ErrNameTooLong,
		},
		"symbol too long": {
			func(p *launchpad.CreateTokenParams) { p.Symbol = strings.Repeat("x", 11) },
			launchpad.ErrSymbolTooLong,
		},
		"uri too long": {
			func(p *launchpad.CreateTokenParams) { p.URI = strings.Repeat("x", 201) },
			launchpad.ErrUriTooLong,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			p := env.baseCreateParams()
			tc.mutate(&p)
			require.ErrorIs(t, env.engine.CreateToken(p), tc.want)
		})
	}
}

func TestCreateTokenSnapshotsConfig(t *testing.T) {
	env := newTestEnv(t)
	mint := env.createSale(nil)

	// Later parameter changes never reach a live curve.
	p := env.defaultParams()
	p.WithdrawFeeBps = 1_000
	p.TokenInvestingSupply = tInvestingSupply / 2
	p.TokenCreatorReserve = 0
	require.NoError(t, env.engine.SetParams(env.authority, p))

	curve, err := env.engine.Curve(mint)
	require.NoError(t, err)
	require.Equal(t, uint16(tWithdrawFeeBps), curve.WithdrawFeeBps)
	require.Equal(t, uint64(tInvestingSupply), curve.TokenInvestingSupply)
	require.Equal(t, uint64(tCreatorReserve), curve.TokenCreatorReserve)
}
