// Package merkle implements the keccak-256 allowlist membership proof.
//
// Node pairs are hashed with the lexicographically smaller value first, so a
// proof verifies regardless of construction order. Proofs are generated
// off-system; the hash must stay pinned to legacy Keccak-256 (the same
// digest family the on-chain verifier uses) or existing proofs break.
package merkle

import (
	"bytes"
	"encoding/binary"

	solanago "github.com/gagliardetto/solana-go"
	"golang.org/x/crypto/sha3"
)

// Leaf derives the allowlist leaf for an address.
func Leaf(addr solanago.PublicKey) [32]byte {
	return keccak(addr.Bytes())
}

// LeafWithAmount derives a leaf binding an address to a purchase cap, the
// amount appended as 8 little-endian bytes. It is a documented extension
// point for per-address caps and is not wired into any operation.
func LeafWithAmount(addr solanago.PublicKey, amount uint64) [32]byte {
	data := make([]byte, 0, 40)
	data = append(data, addr.Bytes()...)
	var amt [8]byte
	binary.LittleEndian.PutUint64(amt[:], amount)
	data = append(data, amt[:]...)
	return keccak(data)
}

// Verify folds the proof into the leaf and compares against the root.
func Verify(proof [][32]byte, root, leaf [32]byte) bool {
	computed := leaf
	for _, node := range proof {
		computed = hashPair(computed, node)
	}
	return computed == root
}

func hashPair(a, b [32]byte) [32]byte {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}
	combined := make([]byte, 0, 64)
	combined = append(combined, a[:]...)
	combined = append(combined, b[:]...)
	return keccak(combined)
}

func keccak(data []byte) (out [32]byte) {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	copy(out[:], h.Sum(nil))
	return out
}
