package ledger

import (
	"errors"
	"sync"

	solanago "github.com/gagliardetto/solana-go"
)

var (
	ErrMintExists        = errors.New("ledger: mint already exists")
	ErrMintNotFound      = errors.New("ledger: mint not found")
	ErrMintAuthorityGone = errors.New("ledger: mint authority revoked")
)

type mintInfo struct {
	decimals  uint8
	authority solanago.PublicKey
	revoked   bool
	supply    uint64
}

// Tokens is an SPL-style fungible-token ledger: balances keyed by
// (mint, holder), one optional mint authority per mint, revocable once.
type Tokens struct {
	mu       sync.RWMutex
	mints    map[solanago.PublicKey]*mintInfo
	balances map[solanago.PublicKey]map[solanago.PublicKey]uint64
}

func NewTokens() *Tokens {
	return &Tokens{
		mints:    make(map[solanago.PublicKey]*mintInfo),
		balances: make(map[solanago.PublicKey]map[solanago.PublicKey]uint64),
	}
}

func (t *Tokens) CreateMint(mint solanago.PublicKey, decimals uint8, authority solanago.PublicKey) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.mints[mint]; ok {
		return ErrMintExists
	}
	t.mints[mint] = &mintInfo{decimals: decimals, authority: authority}
	t.balances[mint] = make(map[solanago.PublicKey]uint64)
	return nil
}

func (t *Tokens) MintTo(mint, to solanago.PublicKey, amount uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	info, ok := t.mints[mint]
	if !ok {
		return ErrMintNotFound
	}
	if info.revoked {
		return ErrMintAuthorityGone
	}
	info.supply += amount
	t.balances[mint][to] += amount
	return nil
}

func (t *Tokens) Transfer(mint, from, to solanago.PublicKey, amount uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	holders, ok := t.balances[mint]
	if !ok {
		return ErrMintNotFound
	}
	if holders[from] < amount {
		return ErrInsufficientFunds
	}
	holders[from] -= amount
	holders[to] += amount
	return nil
}

func (t *Tokens) Burn(mint, from solanago.PublicKey, amount uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	info, ok := t.mints[mint]
	if !ok {
		return ErrMintNotFound
	}
	holders := t.balances[mint]
	if holders[from] < amount {
		return ErrInsufficientFunds
	}
	holders[from] -= amount
	info.supply -= amount
	return nil
}

func (t *Tokens) RevokeMintAuthority(mint solanago.PublicKey) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	info, ok := t.mints[mint]
	if !ok {
		return ErrMintNotFound
	}
	info.revoked = true
	return nil
}

func (t *Tokens) Balance(mint, holder solanago.PublicKey) uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.balances[mint][holder]
}

// Supply returns the outstanding supply of a mint.
func (t *Tokens) Supply(mint solanago.PublicKey) uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if info, ok := t.mints[mint]; ok {
		return info.supply
	}
	return 0
}

// Decimals returns the decimal scale fixed at mint creation.
func (t *Tokens) Decimals(mint solanago.PublicKey) (uint8, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	info, ok := t.mints[mint]
	if !ok {
		return 0, ErrMintNotFound
	}
	return info.decimals, nil
}
