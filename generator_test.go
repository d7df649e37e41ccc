package chachagen

import (
	"encoding/hex"
	"errors"
	"io"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorCounters(t *testing.T) {
	g, err := New(strings.Repeat("00", SeedSize), nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), g.GeneratedBlocksCount())
	assert.Equal(t, uint64(0), g.UsedBitsCount())

	g.GetBytes(64)
	assert.Equal(t, uint64(1), g.GeneratedBlocksCount())
	assert.Equal(t, uint64(512), g.UsedBitsCount())

	g.GetByte()
	assert.Equal(t, uint64(2), g.GeneratedBlocksCount())
	assert.Equal(t, uint64(520), g.UsedBitsCount())

	g.GetBytes(200)
	assert.Equal(t, uint64(5), g.GeneratedBlocksCount())
	assert.Equal(t, uint64(265*8), g.UsedBitsCount())
}

func TestGeneratorGetBytes(t *testing.T) {
	g := newTestGenerator(t, nil)
	assert.Equal(t, "76b8e0ada0f13d90", hex.EncodeToString(g.GetBytes(8)))
	assert.Empty(t, g.GetBytes(0))
	assert.Equal(t, uint64(64), g.UsedBitsCount())
	assert.Equal(t, byte(0x40), g.GetByte())

	assert.Panics(t, func() { g.GetBytes(-1) })
}

func TestGeneratorGetBytesSpansBlocks(t *testing.T) {
	g, err := New(testSeedHex, nil)
	require.NoError(t, err)
	assert.Equal(t, "f798a189f195e66982105ffb640bb775", hex.EncodeToString(g.GetBytes(16)))

	g, err = New(testSeedHex, nil)
	require.NoError(t, err)
	g.GetBytes(70)
	assert.Equal(t, "35941e2444177c8a", hex.EncodeToString(g.GetBytes(8)))
	assert.Equal(t, uint64(2), g.GeneratedBlocksCount())
	assert.Equal(t, uint64(78*8), g.UsedBitsCount())
}

func TestGeneratorGetBytesConcatenation(t *testing.T) {
	for _, sizes := range [][2]int{{1, 1}, {3, 61}, {63, 2}, {64, 64}, {10, 300}, {129, 7}} {
		g := newTestGenerator(t, nil)
		a := g.GetBytes(sizes[0])
		b := g.GetBytes(sizes[1])

		require.NoError(t, g.ReseedFrom(ZeroSeed))
		assert.Equal(t, append(a, b...), g.GetBytes(sizes[0]+sizes[1]), sizes)
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	g0 := newTestGenerator(t, nil)
	g1 := newTestGenerator(t, nil)
	for i := 0; i < 100; i++ {
		assert.Equal(t, g0.GetBytes(i), g1.GetBytes(i))
		assert.Equal(t, g0.RandUint(uint64(i)), g1.RandUint(uint64(i)))
		assert.Equal(t, g0.Random(), g1.Random())
	}
	assert.Equal(t, g0.Snapshot(), g1.Snapshot())
}

func TestGeneratorReseed(t *testing.T) {
	g := newTestGenerator(t, nil)
	first := g.GetBytes(100)
	require.NoError(t, g.Reseed(testSeedHex))
	assert.Equal(t, uint64(1), g.GeneratedBlocksCount())
	assert.Equal(t, uint64(0), g.UsedBitsCount())
	assert.Equal(t, testSeedHex, g.Seed().String())
	assert.NotEqual(t, first, g.GetBytes(100))

	require.NoError(t, g.ReseedFrom(ZeroSeed))
	assert.Equal(t, first, g.GetBytes(100))
}

func TestGeneratorReseedErrorKeepsState(t *testing.T) {
	g := newTestGenerator(t, nil)
	g.GetBytes(10)
	before := g.Snapshot()

	err := g.Reseed("00")
	require.Error(t, err)
	assert.True(t, errors.As(err, &ErrInvalidSeedLength{}))
	assert.Equal(t, before, g.Snapshot())
}

func TestNewErrors(t *testing.T) {
	g, err := New("not a seed", nil)
	assert.Nil(t, g)
	assert.True(t, errors.As(err, &ErrInvalidSeedLength{}))

	g, err = New(strings.Repeat("0g", SeedSize), nil)
	assert.Nil(t, g)
	assert.True(t, errors.As(err, &ErrInvalidSeedEncoding{}))

	g, err = NewFromSeed(ZeroSeed, &Options{Rounds: &[]uint{7}[0]})
	assert.Nil(t, g)
	assert.True(t, errors.As(err, &ErrUnsupportedRounds{}))
}

func TestGeneratorOptions(t *testing.T) {
	g := newTestGenerator(t, &Options{Rounds: &[]uint{8}[0]})
	assert.Equal(t, "3e00ef2f895f40d6", hex.EncodeToString(g.GetBytes(8)))

	g = newTestGenerator(t, &Options{Rounds: &[]uint{12}[0]})
	assert.Equal(t, "9bf49a6a0755f953", hex.EncodeToString(g.GetBytes(8)))

	gDefault := newTestGenerator(t, nil)
	gIETF := newTestGenerator(t, &Options{KeystreamSourceFactory: NewIETFChaCha20Source})
	for i := 0; i < 1000; i++ {
		assert.Equal(t, gDefault.Random(), gIETF.Random())
	}
	assert.Equal(t, gDefault.GeneratedBlocksCount(), gIETF.GeneratedBlocksCount())
}

func TestGeneratorLogger(t *testing.T) {
	logger := &testLogger{T: t}
	g := newTestGenerator(t, &Options{Logger: logger})
	g.GetBytes(BlockSize * 2)
	assert.Len(t, logger.infos, 1)
	assert.Empty(t, logger.debugs)

	logger = &testLogger{T: t, enableDebug: true}
	g = newTestGenerator(t, &Options{Logger: logger})
	g.GetBytes(BlockSize * 2)
	require.NoError(t, g.ReseedFrom(ZeroSeed))
	assert.Len(t, logger.infos, 2)
	assert.Equal(t, []string{
		"generated keystream block #1",
		"generated keystream block #2",
		"generated keystream block #1",
	}, logger.debugs)
}

func TestGeneratorReader(t *testing.T) {
	g := newTestGenerator(t, nil)
	b := make([]byte, 100)
	_, err := io.ReadFull(g, b)
	require.NoError(t, err)

	expected := newTestGenerator(t, nil).GetBytes(100)
	assert.Equal(t, expected, b)

	dst := make([]byte, 5)
	g.ReadBytes(dst)
	assert.Equal(t, newTestGenerator(t, nil).GetBytes(105)[100:], dst)
}

func TestGeneratorAsRandSource(t *testing.T) {
	g := newTestGenerator(t, nil)
	assert.Equal(t, uint64(8554834528524385680), g.Uint64())
	assert.Equal(t, uint64(4637980724442873128), g.Uint64())

	r0 := rand.New(newTestGenerator(t, nil))
	r1 := rand.New(newTestGenerator(t, nil))
	for i := 0; i < 100; i++ {
		assert.Equal(t, r0.IntN(1000), r1.IntN(1000))
	}
}
