// Package config loads the operator-side bootstrap parameters fed to
// Initialize and SetParams. Validation mirrors the engine's own checks so a
// bad file is rejected before any operation is submitted.
package config

import (
	"errors"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/spf13/viper"

	"github.com/memechef/memechef-go/launchpad"
)

type Config struct {
	FeeBps          uint16 `mapstructure:"fee_bps"`
	TokenPriceUpBps uint16 `mapstructure:"token_price_up_bps"`
	WithdrawFeeBps  uint16 `mapstructure:"withdraw_fee_bps"`

	TokenTotalSupply     uint64 `mapstructure:"token_total_supply"`
	TokenInvestingSupply uint64 `mapstructure:"token_investing_supply"`
	TokenCreatorReserve  uint64 `mapstructure:"token_creator_reserve"`
	TokenPlatformReserve uint64 `mapstructure:"token_platform_reserve"`
	TokenPoolReserve     uint64 `mapstructure:"token_pool_reserve"`

	FeeRecipient    string `mapstructure:"fee_recipient"`
	LpRecipient     string `mapstructure:"lp_recipient"`
	MigrationCaller string `mapstructure:"migration_caller"`
}

const (
	// DefaultPriceUpBps launches the pool at 1.25x the sale price.
	DefaultPriceUpBps = 12_500
	DefaultFeeBps     = 100
)

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("fee_bps", DefaultFeeBps)
	v.SetDefault("token_price_up_bps", DefaultPriceUpBps)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.TokenTotalSupply == 0 {
		return errors.New("token_total_supply must be positive")
	}
	if c.FeeRecipient == "" || c.LpRecipient == "" || c.MigrationCaller == "" {
		return errors.New("fee_recipient, lp_recipient and migration_caller are required")
	}
	p, err := c.Params()
	if err != nil {
		return err
	}
	return p.Validate()
}

// Params resolves the file values into the engine parameter set.
func (c *Config) Params() (launchpad.Params, error) {
	feeRecipient, err := solanago.PublicKeyFromBase58(c.FeeRecipient)
	if err != nil {
		return launchpad.Params{}, errors.New("invalid fee_recipient address")
	}
	lpRecipient, err := solanago.PublicKeyFromBase58(c.LpRecipient)
	if err != nil {
		return launchpad.Params{}, errors.New("invalid lp_recipient address")
	}
	migrationCaller, err := solanago.PublicKeyFromBase58(c.MigrationCaller)
	if err != nil {
		return launchpad.Params{}, errors.New("invalid migration_caller address")
	}
	return launchpad.Params{
		FeeBps:               c.FeeBps,
		TokenPriceUpBps:      c.TokenPriceUpBps,
		WithdrawFeeBps:       c.WithdrawFeeBps,
		TokenTotalSupply:     c.TokenTotalSupply,
		TokenInvestingSupply: c.TokenInvestingSupply,
		TokenCreatorReserve:  c.TokenCreatorReserve,
		TokenPlatformReserve: c.TokenPlatformReserve,
		TokenPoolReserve:     c.TokenPoolReserve,
		FeeRecipient:         feeRecipient,
		LpRecipient:          lpRecipient,
		MigrationCaller:      migrationCaller,
	}, nil
}
