package chachagen

import (
	"math/big"
	"math/bits"
)

// RandUint returns a uniformly distributed number in [0, max].
//
// It draws bit-length(max) bits and redraws while the value is greater
// than max, so there is no modulo bias. For max == 0 a single bit is
// drawn (one whole byte per attempt) until it is zero.
//
// The bit length is exact. The JavaScript and Python generators compute
// it as floor(log2(max))+1 in floating point, which adds one bit for max
// just below 2^k with k >= 49, so for such max the outputs differ.
func (g *Generator) RandUint(max uint64) uint64 {
	maxBits := uint(bits.Len64(max))
	if maxBits == 0 {
		maxBits = 1
	}
	for {
		v := g.GetRandBits(maxBits)
		if v <= max {
			return v
		}
	}
}

// RandBigUint is RandUint for arbitrary precision numbers. max must not
// be negative.
func (g *Generator) RandBigUint(max *big.Int) *big.Int {
	if max.Sign() < 0 {
		panic("invalid argument to RandBigUint: negative max")
	}
	maxBits := uint(max.BitLen())
	if maxBits == 0 {
		maxBits = 1
	}
	for {
		v := g.GetRandBitsBig(maxBits)
		if v.Cmp(max) <= 0 {
			return v
		}
	}
}

// RandInt returns a uniformly distributed number in [min, max]. It
// panics if max < min.
func (g *Generator) RandInt(min, max int64) int64 {
	if max < min {
		panic("invalid argument to RandInt: max < min")
	}
	return int64(g.RandUint(uint64(max)-uint64(min)) + uint64(min))
}
