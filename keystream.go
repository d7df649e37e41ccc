package chachagen

import (
	"fmt"
	"math"

	"github.com/aead/chacha20/chacha"
	"github.com/xaionaro-go/slice"
	"golang.org/x/crypto/chacha20"
)

const (
	// BlockSize is the size of a ChaCha keystream block.
	BlockSize = 64

	// DefaultRounds is the number of ChaCha rounds used if
	// Options.Rounds is not set.
	DefaultRounds = 20
)

// KeystreamSource produces successive keystream blocks as a pure
// function of (key, nonce, block index).
type KeystreamSource interface {
	// NextBlock overwrites dst[:BlockSize] with the next keystream block
	// and advances the block counter by one.
	NextBlock(dst []byte)

	// SetBlockCounter positions the source so the next call of NextBlock
	// returns the block with index "counter".
	SetBlockCounter(counter uint64) error
}

// KeystreamSourceFactory creates a KeystreamSource for a key/nonce pair.
type KeystreamSourceFactory func(key, nonce []byte, rounds uint) (KeystreamSource, error)

type chachaSource struct {
	cipher *chacha.Cipher
}

// NewChaChaSource is the default KeystreamSourceFactory. It uses the
// original ChaCha construction (8-byte nonce, 64-bit block counter) and
// supports 8, 12 and 20 rounds.
func NewChaChaSource(key, nonce []byte, rounds uint) (KeystreamSource, error) {
	switch rounds {
	case 8, 12, 20:
	default:
		return nil, newErrUnsupportedRounds(rounds)
	}
	// chacha.NewCipher also accepts IETF and XChaCha nonces
	if len(nonce) != NonceSize {
		return nil, newErrCannotInitKeystream(fmt.Errorf("invalid nonce length %d", len(nonce)))
	}
	cipher, err := chacha.NewCipher(nonce, key, int(rounds))
	if err != nil {
		return nil, newErrCannotInitKeystream(err)
	}
	return &chachaSource{cipher: cipher}, nil
}

func (src *chachaSource) NextBlock(dst []byte) {
	dst = dst[:BlockSize]
	slice.SetZeros(dst)
	src.cipher.XORKeyStream(dst, dst)
}

func (src *chachaSource) SetBlockCounter(counter uint64) error {
	src.cipher.SetCounter(counter)
	return nil
}

type ietfSource struct {
	cipher *chacha20.Cipher
}

// NewIETFChaCha20Source is a KeystreamSourceFactory on top of
// golang.org/x/crypto/chacha20. The 8-byte nonce is prefixed with four
// zero bytes, which makes the IETF state identical to the original
// ChaCha20 state for the first 2^32 blocks. Only 20 rounds are
// supported.
func NewIETFChaCha20Source(key, nonce []byte, rounds uint) (KeystreamSource, error) {
	if rounds != 20 {
		return nil, newErrUnsupportedRounds(rounds)
	}
	if len(nonce) != NonceSize {
		return nil, newErrCannotInitKeystream(fmt.Errorf("invalid nonce length %d", len(nonce)))
	}
	ietfNonce := make([]byte, chacha20.NonceSize)
	copy(ietfNonce[chacha20.NonceSize-NonceSize:], nonce)
	cipher, err := chacha20.NewUnauthenticatedCipher(key, ietfNonce)
	if err != nil {
		return nil, newErrCannotInitKeystream(err)
	}
	return &ietfSource{cipher: cipher}, nil
}

func (src *ietfSource) NextBlock(dst []byte) {
	dst = dst[:BlockSize]
	slice.SetZeros(dst)
	src.cipher.XORKeyStream(dst, dst)
}

// SetBlockCounter may only move forward: x/crypto/chacha20 refuses to
// reuse a counter value.
func (src *ietfSource) SetBlockCounter(counter uint64) error {
	if counter > math.MaxUint32 {
		return newErrCounterOutOfRange(counter, math.MaxUint32)
	}
	src.cipher.SetCounter(uint32(counter))
	return nil
}
