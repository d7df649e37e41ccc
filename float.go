package chachagen

import (
	"math"
)

// The constants are related to IEEE 754 limits.
const (
	floatWidth         = 256             // each keystream byte is 0 <= x < 256
	floatChunks        = 6               // at least six bytes for each double
	floatDigits        = 52              // there are 52 significant digits in a double
	floatStartDenomExp = 8 * floatChunks // startdenom == width^chunks == 2^48
	floatSignificance  = 1 << floatDigits
	floatOverflow      = floatSignificance * 2
)

// Random returns a float64 in [0, 1) with randomness in every bit of
// the mantissa.
//
// It is David Bau's seedrandom construction with the keystream instead
// of RC4, kept as is for parity with the JavaScript and Python
// generators: the result is not the same as a plain 53-bit draw.
func (g *Generator) Random() float64 {
	// The denominator is always a power of two, so only its exponent is
	// tracked: d == 2^denomExp.
	n := g.GetRandBits(floatChunks * 8)
	denomExp := floatStartDenomExp
	var x uint64
	for n < floatSignificance {
		n = (n + x) * floatWidth
		denomExp += 8
		x = g.GetRandBits(8)
	}
	for n >= floatOverflow {
		n >>= 1
		denomExp--
		x >>= 1
	}
	return math.Ldexp(float64(n+x), -denomExp)
}
