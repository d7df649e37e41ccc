package chachagen

import (
	"github.com/mohae/deepcopy"
)

// Snapshot is a copy of the position of a Generator in its stream.
type Snapshot struct {
	Seed Seed

	// Block is the current keystream block. It is informational only:
	// NewFromSnapshot recomputes it from Seed and BlockCounter.
	Block []byte

	// Offset is the index of the next unused byte of Block.
	Offset int

	// BlockCounter is the amount of blocks generated so far.
	BlockCounter uint64
}

// Snapshot returns a detached copy of the generator state.
func (g *Generator) Snapshot() Snapshot {
	return deepcopy.Copy(Snapshot{
		Seed:         g.seed,
		Block:        g.buf.block[:],
		Offset:       g.buf.offset,
		BlockCounter: g.buf.counter,
	}).(Snapshot)
}

// NewFromSnapshot returns a Generator which continues the stream exactly
// where the snapshotted generator was. The keystream source must be
// able to seek (both built-in sources can).
func NewFromSnapshot(snapshot Snapshot, opts *Options) (*Generator, error) {
	if snapshot.BlockCounter < 1 {
		return nil, newErrInvalidSnapshot("BlockCounter should be positive")
	}
	if snapshot.Offset < 0 || snapshot.Offset > BlockSize {
		return nil, newErrInvalidSnapshot("Offset is out of the block")
	}

	g := &Generator{
		seed:    snapshot.Seed,
		options: opts.normalize(),
	}
	source, err := g.newSource(snapshot.Seed)
	if err != nil {
		return nil, err
	}
	if err := source.SetBlockCounter(snapshot.BlockCounter - 1); err != nil {
		return nil, err
	}

	buf := &blockBuffer{
		source:  source,
		logger:  g.options.Logger,
		counter: snapshot.BlockCounter - 1,
	}
	buf.nextBlock()
	buf.offset = snapshot.Offset
	g.buf = buf
	if g.options.Logger.IsDebugEnabled() {
		g.options.Logger.Debugf("restored at block #%d offset %d", buf.counter, buf.offset)
	}
	return g, nil
}

// Clone returns an independent Generator at exactly the same position in
// the same stream: both produce the same output from now on.
func (g *Generator) Clone() *Generator {
	clone, err := NewFromSnapshot(g.Snapshot(), &g.options)
	if err != nil {
		// g itself is at this position, so it is reachable.
		panic(err)
	}
	return clone
}
