package launchpad

import (
	solanago "github.com/gagliardetto/solana-go"
)

var ProgramID = solanago.MustPublicKeyFromBase58("2AmX65g4mZA76u5EHBssYQ9XRtaFWDcCPaWhCi1J4ZjB")

const (
	// TokenDecimals is fixed for every mint the engine creates.
	TokenDecimals = 6

	// BasePoints is the denominator of every basis-point parameter.
	BasePoints = 10_000

	// rentExemptMinimum funds the native vault at creation so it can
	// accept arbitrarily small purchases.
	rentExemptMinimum = 890_880

	maxNameLen   = 32
	maxSymbolLen = 10
	maxURILen    = 200
)
