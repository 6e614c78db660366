package ledger

import (
	"errors"
	"sync"

	solanago "github.com/gagliardetto/solana-go"
)

var ErrMetadataExists = errors.New("ledger: metadata already registered")

// Metadata is the registered descriptive record of a mint.
type Metadata struct {
	Name   string
	Symbol string
	URI    string
}

// Registry stores token metadata keyed by mint. Length limits are enforced
// by the engine before registration.
type Registry struct {
	mu      sync.RWMutex
	entries map[solanago.PublicKey]Metadata
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[solanago.PublicKey]Metadata)}
}

func (r *Registry) Register(mint solanago.PublicKey, name, symbol, uri string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[mint]; ok {
		return ErrMetadataExists
	}
	r.entries[mint] = Metadata{Name: name, Symbol: symbol, URI: uri}
	return nil
}

func (r *Registry) Get(mint solanago.PublicKey) (Metadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.entries[mint]
	return m, ok
}
