package launchpad

import (
	"sync"

	solanago "github.com/gagliardetto/solana-go"
)

// Store is the keyed record arena backing the engine. Records are opaque
// serialized bytes addressed by their derived key; there are no live
// references between records.
type Store interface {
	Get(addr solanago.PublicKey) ([]byte, bool)
	Put(addr solanago.PublicKey, data []byte)
}

// MemoryStore keeps records in a map. The mutex only guards map access;
// operation-level serialization per mint is the caller's responsibility.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[solanago.PublicKey][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accounts: make(map[solanago.PublicKey][]byte)}
}

func (s *MemoryStore) Get(addr solanago.PublicKey) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.accounts[addr]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true
}

func (s *MemoryStore) Put(addr solanago.PublicKey, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	s.accounts[addr] = cp
}
