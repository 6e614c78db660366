package launchpad

import "errors"

var (
	ErrNotAuthorized      = errors.New("the given account is not authorized to execute this operation")
	ErrAlreadyInitialized = errors.New("the global config is already initialized")
	ErrNotInitialized     = errors.New("the global config is not initialized")

	ErrCurveExists   = errors.New("a bonding curve already exists for this mint")
	ErrCurveNotFound = errors.New("no bonding curve exists for this mint")

	ErrCurveNotStarted   = errors.New("the bonding curve has not started yet")
	ErrCurveCompleted    = errors.New("the bonding curve has completed")
	ErrCurveNotCompleted = errors.New("the bonding curve has not completed")
	ErrCurveEnded        = errors.New("the bonding curve has ended")
	ErrCurveNotEnded     = errors.New("the bonding curve has not ended")
	ErrAlreadyWithdrawn  = errors.New("the bonding curve has been withdrawn")
	ErrNotWithdrawn      = errors.New("the bonding curve has not been withdrawn")
	ErrAlreadyMigrated   = errors.New("the bonding curve has been migrated")
	ErrNotMigrated       = errors.New("token not migrated yet")

	ErrTooMuchSolRequired   = errors.New("slippage: too much SOL required to buy the given amount of tokens")
	ErrTooLittleSolReceived = errors.New("slippage: too little SOL received to sell the given amount of tokens")
	ErrInsufficientBalance  = errors.New("insufficient token balance")

	ErrInvalidValue     = errors.New("invalid value")
	ErrMathOverflow     = errors.New("mathematical operation overflow")
	ErrNoPurchaseRecord = errors.New("no purchase record found")

	ErrNotWhitelisted     = errors.New("you are not whitelisted")
	ErrMerkleProofMissing = errors.New("merkle proof is required for whitelist period")

	ErrNameTooLong   = errors.New("token name is too long")
	ErrSymbolTooLong = errors.New("token symbol is too long")
	ErrUriTooLong    = errors.New("token uri is too long")
)
