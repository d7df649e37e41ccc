package chachagen

import (
	"math/big"
)

// GetRandBits returns a number in [0, 2^nbits) built from the next
// ceil(nbits/8) bytes of the stream read as a big-endian number, with
// the excess high bits of the first byte masked out.
//
// nbits must be within [1, 64].
func (g *Generator) GetRandBits(nbits uint) uint64 {
	if nbits < 1 || nbits > 64 {
		panic("invalid argument to GetRandBits: nbits should be within [1, 64]")
	}
	var buf [8]byte
	b := buf[:(nbits+7)/8]
	g.ReadBytes(b)
	b[0] &= firstByteMask(nbits)

	var result uint64
	for _, v := range b {
		result = result<<8 | uint64(v)
	}
	return result
}

// GetRandBitsBig is GetRandBits for any nbits >= 1. It consumes exactly
// the same bytes as GetRandBits would.
func (g *Generator) GetRandBitsBig(nbits uint) *big.Int {
	if nbits < 1 {
		panic("invalid argument to GetRandBitsBig: nbits should be positive")
	}
	b := g.GetBytes(int((nbits + 7) / 8))
	b[0] &= firstByteMask(nbits)
	return new(big.Int).SetBytes(b)
}

func firstByteMask(nbits uint) byte {
	extraBits := nbits % 8
	if extraBits == 0 {
		return 0xff
	}
	return byte(1)<<extraBits - 1
}
