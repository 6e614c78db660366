// Package ledger provides in-memory implementations of the engine's value
// collaborators: the native-currency ledger, an SPL-style token ledger, and
// the token-metadata registry. They back the engine completely in tests; a
// production deployment substitutes host-backed adapters.
package ledger

import (
	"errors"
	"sync"

	solanago "github.com/gagliardetto/solana-go"
)

var (
	ErrInsufficientFunds = errors.New("ledger: insufficient funds")
)

// Native tracks lamport balances per address.
type Native struct {
	mu       sync.RWMutex
	balances map[solanago.PublicKey]uint64
}

func NewNative() *Native {
	return &Native{balances: make(map[solanago.PublicKey]uint64)}
}

// Credit funds an address out of thin air, for bootstrap and tests.
func (n *Native) Credit(addr solanago.PublicKey, lamports uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.balances[addr] += lamports
}

func (n *Native) Balance(addr solanago.PublicKey) uint64 {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.balances[addr]
}

func (n *Native) Transfer(from, to solanago.PublicKey, lamports uint64) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.balances[from] < lamports {
		return ErrInsufficientFunds
	}
	n.balances[from] -= lamports
	n.balances[to] += lamports
	return nil
}
