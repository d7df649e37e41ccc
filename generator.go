// Package chachagen implements a deterministic pseudo-random generator
// on top of the ChaCha keystream together with uniform integers, floats,
// shuffles, sampling and choice helpers.
//
// The same seed always produces the same output, bit for bit, including
// the output of the JavaScript and Python generators built on the same
// construction. A Generator is a single sequential stream and is not
// safe for concurrent use.
package chachagen

// Generator is a deterministic random stream seeded by a Seed.
//
// A Generator must not be copied by value; use Clone to fork the stream
// at its current position.
type Generator struct {
	seed    Seed
	options Options
	buf     *blockBuffer
}

// New returns a Generator seeded by a hex seed (see ParseSeed).
func New(seed string, opts *Options) (*Generator, error) {
	parsedSeed, err := ParseSeed(seed)
	if err != nil {
		return nil, err
	}
	return NewFromSeed(parsedSeed, opts)
}

// NewFromSeed returns a Generator seeded by seed.
func NewFromSeed(seed Seed, opts *Options) (*Generator, error) {
	g := &Generator{
		options: opts.normalize(),
	}
	if err := g.ReseedFrom(seed); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Generator) newSource(seed Seed) (KeystreamSource, error) {
	return g.options.KeystreamSourceFactory(seed.Key(), seed.Nonce(), *g.options.Rounds)
}

// Reseed restarts the stream from a hex seed. The current block is
// discarded. On error the generator keeps its previous state.
func (g *Generator) Reseed(seed string) error {
	parsedSeed, err := ParseSeed(seed)
	if err != nil {
		return err
	}
	return g.ReseedFrom(parsedSeed)
}

// ReseedFrom is the same as Reseed, but accepts a decoded Seed.
func (g *Generator) ReseedFrom(seed Seed) error {
	source, err := g.newSource(seed)
	if err != nil {
		return err
	}
	g.seed = seed
	g.buf = newBlockBuffer(source, g.options.Logger)
	g.options.Logger.Infof("reseeded (ChaCha%d)", *g.options.Rounds)
	return nil
}

// Seed returns the seed of the current stream.
func (g *Generator) Seed() Seed {
	return g.seed
}

// GeneratedBlocksCount returns how many keystream blocks were produced
// since the last (re)seed. The first block is produced right away.
func (g *Generator) GeneratedBlocksCount() uint64 {
	return g.buf.BlockCounter()
}

// UsedBitsCount returns how many bits were handed out since the last
// (re)seed.
func (g *Generator) UsedBitsCount() uint64 {
	return g.buf.UsedBits()
}

// GetBytes returns the next n bytes of the stream.
func (g *Generator) GetBytes(n int) []byte {
	if n < 0 {
		panic("invalid argument to GetBytes: negative count")
	}
	result := make([]byte, n)
	g.ReadBytes(result)
	return result
}

// GetByte returns the next byte of the stream.
func (g *Generator) GetByte() byte {
	var b [1]byte
	g.ReadBytes(b[:])
	return b[0]
}

// ReadBytes fills dst with the next len(dst) bytes of the stream.
func (g *Generator) ReadBytes(dst []byte) {
	g.buf.Fill(dst)
}

// Read implements io.Reader. It always fills p completely and never
// returns an error.
func (g *Generator) Read(p []byte) (int, error) {
	g.buf.Fill(p)
	return len(p), nil
}

// Uint64 returns the next 64 bits as a big-endian number. It makes
// a *Generator a math/rand/v2.Source.
func (g *Generator) Uint64() uint64 {
	return g.GetRandBits(64)
}
