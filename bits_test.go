package chachagen

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRandBits(t *testing.T) {
	g := newTestGenerator(t, nil)
	var results []uint64
	for _, nbits := range []uint{1, 7, 8, 9, 16, 64} {
		results = append(results, g.GetRandBits(nbits))
	}
	assert.Equal(t, []uint64{0, 56, 224, 416, 61757, 10394410653666477757}, results)
	assert.Equal(t, uint64((1+1+1+2+2+8)*8), g.UsedBitsCount())
}

func TestGetRandBitsRange(t *testing.T) {
	g := newTestGenerator(t, nil)
	for nbits := uint(1); nbits < 64; nbits++ {
		for i := 0; i < 50; i++ {
			assert.Less(t, g.GetRandBits(nbits), uint64(1)<<nbits, nbits)
		}
	}
}

func TestGetRandBitsBig(t *testing.T) {
	gSmall := newTestGenerator(t, nil)
	gBig := newTestGenerator(t, nil)
	for _, nbits := range []uint{1, 7, 8, 9, 16, 33, 64} {
		expected := new(big.Int).SetUint64(gSmall.GetRandBits(nbits))
		assert.Equal(t, expected.String(), gBig.GetRandBitsBig(nbits).String(), nbits)
	}

	g := newTestGenerator(t, nil)
	assert.Equal(t, "532585836214570992126747403603", g.GetRandBitsBig(100).String())

	limit := new(big.Int).Lsh(big.NewInt(1), 100)
	for i := 0; i < 100; i++ {
		assert.Equal(t, -1, g.GetRandBitsBig(100).Cmp(limit))
	}
}

func TestGetRandBitsInvalid(t *testing.T) {
	g := newTestGenerator(t, nil)
	assert.Panics(t, func() { g.GetRandBits(0) })
	assert.Panics(t, func() { g.GetRandBits(65) })
	assert.Panics(t, func() { g.GetRandBitsBig(0) })
	assert.Equal(t, uint64(0), g.UsedBitsCount())
}
