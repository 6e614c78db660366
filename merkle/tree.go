package merkle

import (
	"errors"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/tidwall/gjson"
)

var (
	ErrEmptyTree    = errors.New("merkle: tree has no leaves")
	ErrLeafNotFound = errors.New("merkle: leaf not in tree")
)

// Tree builds proofs for an allowlist. It exists for the off-system side
// of the flow (proof generation and tests); the engine only ever verifies.
type Tree struct {
	levels [][][32]byte // levels[0] = leaves, last level = root
}

// NewTree builds a tree over the given leaves. An odd node on any level is
// promoted unchanged. Duplicate leaves are allowed and prove independently.
func NewTree(leaves [][32]byte) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyTree
	}
	levels := [][][32]byte{append([][32]byte(nil), leaves...)}
	for current := levels[0]; len(current) > 1; {
		next := make([][32]byte, 0, (len(current)+1)/2)
		for i := 0; i < len(current); i += 2 {
			if i+1 < len(current) {
				next = append(next, hashPair(current[i], current[i+1]))
			} else {
				next = append(next, current[i])
			}
		}
		levels = append(levels, next)
		current = next
	}
	return &Tree{levels: levels}, nil
}

// NewAddressTree builds a tree over address-only leaves.
func NewAddressTree(addrs []solanago.PublicKey) (*Tree, error) {
	leaves := make([][32]byte, len(addrs))
	for i, addr := range addrs {
		leaves[i] = Leaf(addr)
	}
	return NewTree(leaves)
}

// Root returns the tree root committed on the sale record.
func (t *Tree) Root() [32]byte {
	top := t.levels[len(t.levels)-1]
	return top[0]
}

// Proof returns the sibling path for a leaf.
func (t *Tree) Proof(leaf [32]byte) ([][32]byte, error) {
	index := -1
	for i, l := range t.levels[0] {
		if l == leaf {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, ErrLeafNotFound
	}

	var proof [][32]byte
	for _, level := range t.levels[:len(t.levels)-1] {
		sibling := index ^ 1
		if sibling < len(level) {
			proof = append(proof, level[sibling])
		}
		index /= 2
	}
	return proof, nil
}

// LoadAllowlist parses an allowlist document: either a bare JSON array of
// base58 addresses or an object with an "addresses" array.
func LoadAllowlist(doc []byte) ([]solanago.PublicKey, error) {
	parsed := gjson.ParseBytes(doc)
	list := parsed
	if !parsed.IsArray() {
		list = parsed.Get("addresses")
	}
	if !list.IsArray() {
		return nil, errors.New("merkle: allowlist document has no address array")
	}

	var addrs []solanago.PublicKey
	for _, entry := range list.Array() {
		addr, err := solanago.PublicKeyFromBase58(entry.String())
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, addr)
	}
	if len(addrs) == 0 {
		return nil, ErrEmptyTree
	}
	return addrs, nil
}
