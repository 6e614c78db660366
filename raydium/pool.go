// Package raydium is the external pool-provisioning collaborator: an
// in-memory constant-product AMM with the CP-swap conventions the engine
// migrates into — ascending mint order, LP shares as the geometric mean of
// the deposits, and a permanently locked liquidity floor.
package raydium

import (
	"bytes"
	"errors"
	"sync"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/holiman/uint256"

	"github.com/memechef/memechef-go/launchpad"
)

var ProgramID = solanago.MustPublicKeyFromBase58("CPMMoo8L3F4NbTegBCKVNunggL7H1ZpdTHKxQB5qKP1C")

// LockedLPAmount is minted to the pool itself and never redeemable, so a
// pool can never be fully drained.
const LockedLPAmount = 100

const lpDecimals = 9

var (
	ErrTokenOrder            = errors.New("raydium: token0 must sort below token1")
	ErrPoolExists            = errors.New("raydium: pool already exists")
	ErrPoolNotFound          = errors.New("raydium: pool not found")
	ErrZeroDeposit           = errors.New("raydium: deposit amounts must be positive")
	ErrInsufficientFunds     = errors.New("raydium: funder cannot cover its deposit")
	ErrInsufficientLiquidity = errors.New("raydium: initial deposit below locked liquidity floor")
)

// Pool is the provisioned pair state.
type Pool struct {
	Token0   solanago.PublicKey
	Token1   solanago.PublicKey
	Reserve0 uint64
	Reserve1 uint64
	LpMint   solanago.PublicKey
	LpSupply uint64
	OpenTime int64
}

// AMM provisions pools against the same ledgers the engine settles on.
// The native side of a pair is addressed by the wrapped-SOL mint.
type AMM struct {
	mu     sync.RWMutex
	native launchpad.NativeLedger
	tokens launchpad.TokenLedger
	pools  map[solanago.PublicKey]*Pool
}

func New(native launchpad.NativeLedger, tokens launchpad.TokenLedger) *AMM {
	return &AMM{
		native: native,
		tokens: tokens,
		pools:  make(map[solanago.PublicKey]*Pool),
	}
}

// DerivePoolAddress returns the pool state address for an ordered pair.
func DerivePoolAddress(token0, token1 solanago.PublicKey) solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{[]byte("pool"), token0.Bytes(), token1.Bytes()}, ProgramID)
	return pub
}

// DeriveLpMintAddress returns the LP share mint for a pool.
func DeriveLpMintAddress(pool solanago.PublicKey) solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{[]byte("pool_lp_mint"), pool.Bytes()}, ProgramID)
	return pub
}

// initialLiquidity is floor(sqrt(amount0*amount1)); the product of two
// uint64 needs a 128-bit intermediate.
func initialLiquidity(amount0, amount1 uint64) uint64 {
	prod := new(uint256.Int).Mul(uint256.NewInt(amount0), uint256.NewInt(amount1))
	return new(uint256.Int).Sqrt(prod).Uint64()
}

// CreatePool provisions a pool from the two deposits, debiting each side
// from its funder, and credits the minted LP shares (minus the locked
// floor) to lpOwner.
func (a *AMM) CreatePool(token0, token1 solanago.PublicKey, amount0, amount1 uint64, funder0, funder1, lpOwner solanago.PublicKey, openTime int64) (solanago.PublicKey, uint64, error) {
	if bytes.Compare(token0.Bytes(), token1.Bytes()) >= 0 {
		return solanago.PublicKey{}, 0, ErrTokenOrder
	}
	if amount0 == 0 || amount1 == 0 {
		return solanago.PublicKey{}, 0, ErrZeroDeposit
	}

	poolAddr := DerivePoolAddress(token0, token1)

	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.pools[poolAddr]; ok {
		return solanago.PublicKey{}, 0, ErrPoolExists
	}

	liquidity := initialLiquidity(amount0, amount1)
	if liquidity <= LockedLPAmount {
		return solanago.PublicKey{}, 0, ErrInsufficientLiquidity
	}
	lpAmount := liquidity - LockedLPAmount

	// Both legs are validated before either moves, so a failed create
	// strands nothing on the pool address.
	if a.funderBalance(token0, funder0) < amount0 || a.funderBalance(token1, funder1) < amount1 {
		return solanago.PublicKey{}, 0, ErrInsufficientFunds
	}

	if err := a.deposit(token0, funder0, poolAddr, amount0); err != nil {
		return solanago.PublicKey{}, 0, err
	}
	if err := a.deposit(token1, funder1, poolAddr, amount1); err != nil {
		return solanago.PublicKey{}, 0, err
	}

	lpMint := DeriveLpMintAddress(poolAddr)
	if err := a.tokens.CreateMint(lpMint, lpDecimals, ProgramID); err != nil {
		return solanago.PublicKey{}, 0, err
	}
	if err := a.tokens.MintTo(lpMint, poolAddr, LockedLPAmount); err != nil {
		return solanago.PublicKey{}, 0, err
	}
	if err := a.tokens.MintTo(lpMint, lpOwner, lpAmount); err != nil {
		return solanago.PublicKey{}, 0, err
	}

	a.pools[poolAddr] = &Pool{
		Token0:   token0,
		Token1:   token1,
		Reserve0: amount0,
		Reserve1: amount1,
		LpMint:   lpMint,
		LpSupply: liquidity,
		OpenTime: openTime,
	}
	return lpMint, lpAmount, nil
}

func (a *AMM) funderBalance(token, funder solanago.PublicKey) uint64 {
	if token.Equals(solanago.WrappedSol) {
		return a.native.Balance(funder)
	}
	return a.tokens.Balance(token, funder)
}

func (a *AMM) deposit(token, funder, poolAddr solanago.PublicKey, amount uint64) error {
	if token.Equals(solanago.WrappedSol) {
		return a.native.Transfer(funder, poolAddr, amount)
	}
	return a.tokens.Transfer(token, funder, poolAddr, amount)
}

// PoolFor looks up the provisioned pool for an unordered pair.
func (a *AMM) PoolFor(tokenA, tokenB solanago.PublicKey) (*Pool, error) {
	token0, token1 := tokenA, tokenB
	if bytes.Compare(token0.Bytes(), token1.Bytes()) > 0 {
		token0, token1 = token1, token0
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	pool, ok := a.pools[DerivePoolAddress(token0, token1)]
	if !ok {
		return nil, ErrPoolNotFound
	}
	out := *pool
	return &out, nil
}
