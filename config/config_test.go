package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "launchpad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func validBody() string {
	return fmt.Sprintf(`fee_bps: 100
token_price_up_bps: 12500
withdraw_fee_bps: 500
token_total_supply: 1000000000000000
token_investing_supply: 750000000000000
token_creator_reserve: 50000000000000
token_platform_reserve: 50000000000000
token_pool_reserve: 100000000000000
fee_recipient: %q
lp_recipient: %q
migration_caller: %q
`,
		solanago.NewWallet().PublicKey(),
		solanago.NewWallet().PublicKey(),
		solanago.NewWallet().PublicKey())
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validBody()))
	require.NoError(t, err)

	p, err := cfg.Params()
	require.NoError(t, err)
	require.Equal(t, uint16(100), p.FeeBps)
	require.Equal(t, uint16(12_500), p.TokenPriceUpBps)
	require.Equal(t, uint64(750_000_000_000_000), p.TokenInvestingSupply)
	require.Equal(t, cfg.FeeRecipient, p.FeeRecipient.String())
	require.Equal(t, cfg.MigrationCaller, p.MigrationCaller.String())
}

func TestLoadAppliesDefaults(t *testing.T) {
	body := fmt.Sprintf(`token_total_supply: 1000000000000000
token_investing_supply: 750000000000000
token_pool_reserve: 100000000000000
fee_recipient: %q
lp_recipient: %q
migration_caller: %q
`,
		solanago.NewWallet().PublicKey(),
		solanago.NewWallet().PublicKey(),
		solanago.NewWallet().PublicKey())

	cfg, err := Load(writeConfig(t, body))
	require.NoError(t, err)
	require.Equal(t, uint16(DefaultFeeBps), cfg.FeeBps)
	require.Equal(t, uint16(DefaultPriceUpBps), cfg.TokenPriceUpBps)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	cases := map[string]string{
		"missing recipients": `token_total_supply: 1000`,
		"zero supply": fmt.Sprintf(`token_total_supply: 0
fee_recipient: %q
lp_recipient: %q
migration_caller: %q`, solanago.NewWallet().PublicKey(), solanago.NewWallet().PublicKey(), solanago.NewWallet().PublicKey()),
		"bad address": `token_total_supply: 1000
token_investing_supply: 1000
fee_recipient: "not-an-address"
lp_recipient: "not-an-address"
migration_caller: "not-an-address"`,
		"partition exceeds supply": fmt.Sprintf(`token_total_supply: 1000
token_investing_supply: 900
token_pool_reserve: 200
fee_recipient: %q
lp_recipient: %q
migration_caller: %q`, solanago.NewWallet().PublicKey(), solanago.NewWallet().PublicKey(), solanago.NewWallet().PublicKey()),
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			require.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
