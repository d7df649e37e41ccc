package chachagen

// blockBuffer turns a KeystreamSource into an unbounded byte stream.
// A block is requested only when a byte of it is actually needed.
type blockBuffer struct {
	source  KeystreamSource
	logger  Logger
	block   [BlockSize]byte
	offset  int
	counter uint64
}

func newBlockBuffer(source KeystreamSource, logger Logger) *blockBuffer {
	buf := &blockBuffer{
		source: source,
		logger: logger,
	}
	buf.nextBlock()
	return buf
}

func (buf *blockBuffer) nextBlock() {
	buf.source.NextBlock(buf.block[:])
	buf.offset = 0
	buf.counter++
	if buf.logger.IsDebugEnabled() {
		buf.logger.Debugf("generated keystream block #%d", buf.counter)
	}
}

// Fill fills the whole b, requesting as many blocks as needed.
func (buf *blockBuffer) Fill(b []byte) {
	for len(b) > 0 {
		if buf.offset == BlockSize {
			buf.nextBlock()
		}
		copied := copy(b, buf.block[buf.offset:])
		buf.offset += copied
		b = b[copied:]
	}
}

func (buf *blockBuffer) BlockCounter() uint64 {
	return buf.counter
}

func (buf *blockBuffer) UsedBits() uint64 {
	return uint64(buf.offset)*8 + (buf.counter-1)*BlockSize*8
}
