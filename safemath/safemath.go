// Package safemath provides checked uint64 arithmetic for reserve and price
// accounting. Any overflow or underflow is an error, never a silent wrap.
package safemath

import (
	"errors"
	"math/big"
	"math/bits"
)

var ErrOverflow = errors.New("safemath: arithmetic overflow")

func Add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrOverflow
	}
	return sum, nil
}

func Sub(a, b uint64) (uint64, error) {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0, ErrOverflow
	}
	return diff, nil
}

func Mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrOverflow
	}
	return lo, nil
}

// MulDivFloor computes floor(a*b/den) with a 128-bit intermediate. Floor
// rounding is normative for all price math: it systematically favors the
// protocol over the trader and must be reproduced exactly for conformance.
func MulDivFloor(a, b, den uint64) (uint64, error) {
	if den == 0 {
		return 0, ErrOverflow
	}
	prod := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	quo := prod.Quo(prod, new(big.Int).SetUint64(den))
	if !quo.IsUint64() {
		return 0, ErrOverflow
	}
	return quo.Uint64(), nil
}

// MulCmp reports the sign of a*b - c*d without overflow.
func MulCmp(a, b, c, d uint64) int {
	lhs := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	rhs := new(big.Int).Mul(new(big.Int).SetUint64(c), new(big.Int).SetUint64(d))
	return lhs.Cmp(rhs)
}

// Pow10 returns 10^n for token-decimal scaling.
func Pow10(n uint8) uint64 {
	out := uint64(1)
	for i := uint8(0); i < n; i++ {
		out *= 10
	}
	return out
}
