package launchpad

import (
	solanago "github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/memechef/memechef-go/events"
	"github.com/memechef/memechef-go/safemath"
)

// CreateTokenParams describes a new sale. Mint is the token identity chosen
// by the payer; the engine creates the mint, registers its metadata, mints
// the full supply into the sale's token vault, and revokes further minting.
type CreateTokenParams struct {
	Payer solanago.PublicKey
	Mint  solanago.PublicKey

	Name   string
	Symbol string
	URI    string

	InvestingPrice    uint64
	InvestingDeadline uint64
	InvestingStartAt  uint64

	Whitelisted      bool
	MerkleRoot       [32]byte
	WhitelistStartAt uint64

	WithdrawRecipient solanago.PublicKey
}

// CreateToken births a bonding curve with the full supply in reserve. The
// new record snapshots every config field it depends on; later SetParams
// calls do not affect it.
func (e *Engine) CreateToken(p CreateTokenParams) error {
	g, err := e.loadGlobal()
	if err != nil {
		return err
	}

	if p.InvestingPrice == 0 || p.InvestingDeadline == 0 {
		return ErrInvalidValue
	}
	if p.WhitelistStartAt > p.InvestingStartAt {
		return ErrInvalidValue
	}
	if p.InvestingStartAt >= p.InvestingDeadline {
		return ErrInvalidValue
	}
	if g.TokenTotalSupply == 0 {
		return ErrInvalidValue
	}
	if len(p.Name) > maxNameLen {
		return ErrNameTooLong
	}
	if len(p.Symbol) > maxSymbolLen {
		return ErrSymbolTooLong
	}
	if len(p.URI) > maxURILen {
		return ErrUriTooLong
	}

	now := e.now()
	if p.Whitelisted && p.WhitelistStartAt < uint64(now) {
		return ErrInvalidValue
	}

	curveAddr := DeriveBondingCurveAddress(p.Mint)
	if _, ok := e.store.Get(curveAddr); ok {
		return ErrCurveExists
	}

	// The payer must cover the vault's rent floor before any collaborator
	// effect; a partial create would leave the mint identity unusable.
	if e.native.Balance(p.Payer) < rentExemptMinimum {
		return ErrInsufficientBalance
	}

	launchingPrice, err := safemath.MulDivFloor(p.InvestingPrice, uint64(g.TokenPriceUpBps), BasePoints)
	if err != nil {
		return ErrMathOverflow
	}

	if err := e.metadata.Register(p.Mint, p.Name, p.Symbol, p.URI); err != nil {
		return err
	}
	if err := e.tokens.CreateMint(p.Mint, TokenDecimals, DeriveMintAuthority()); err != nil {
		return err
	}
	if err := e.tokens.MintTo(p.Mint, curveAddr, g.TokenTotalSupply); err != nil {
		return err
	}

	// Fund the native vault so it can accept arbitrarily small purchases.
	vault := DeriveBondingCurveVault(p.Mint)
	if err := e.native.Transfer(p.Payer, vault, rentExemptMinimum); err != nil {
		return err
	}

	if err := e.tokens.RevokeMintAuthority(p.Mint); err != nil {
		return err
	}

	c := &BondingCurve{
		SolReserves:            0,
		TokenReserves:          g.TokenTotalSupply,
		TokenTotalSupply:       g.TokenTotalSupply,
		TokenInvestingSupply:   g.TokenInvestingSupply,
		TokenInvestingPrice:    p.InvestingPrice,
		TokenInvestingDeadline: p.InvestingDeadline,
		TokenLaunchingPrice:    launchingPrice,
		WithdrawFeeBps:         g.WithdrawFeeBps,
		WithdrawRecipient:      p.WithdrawRecipient,
		InvestingStartAt:       p.InvestingStartAt,
		Whitelisted:            p.Whitelisted,
		MerkleRoot:             p.MerkleRoot,
		WhitelistStartAt:       p.WhitelistStartAt,
		TokenCreatorReserve:    g.TokenCreatorReserve,
		TokenPlatformReserve:   g.TokenPlatformReserve,
		TokenPoolReserve:       g.TokenPoolReserve,
	}
	if err := e.saveCurve(p.Mint, c); err != nil {
		return err
	}

	e.logger.Info("bonding curve created",
		zap.Stringer("mint", p.Mint),
		zap.String("symbol", p.Symbol),
		zap.Uint64("investing_price", p.InvestingPrice),
		zap.Uint64("launching_price", launchingPrice))

	e.events.Publish(events.CreateEvent{
		Name:         p.Name,
		Symbol:       p.Symbol,
		URI:          p.URI,
		Mint:         p.Mint,
		BondingCurve: curveAddr,
		User:         p.Payer,
		Timestamp:    now,
	})
	return nil
}
