package chachagen

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/aead/chacha20/chacha"
)

const (
	// KeySize is the size of the ChaCha key part of a Seed.
	KeySize = chacha.KeySize
	// NonceSize is the size of the nonce (IV) part of a Seed.
	NonceSize = chacha.NonceSize
	// SeedSize is the size of a Seed in bytes.
	SeedSize = KeySize + NonceSize
	// SeedHexSize is the length of a Seed in its hex form.
	SeedHexSize = SeedSize * 2
)

// Seed is the key followed by the nonce. It fully determines the output
// of a Generator.
type Seed [SeedSize]byte

// ZeroSeed is the all-zero seed (the default seed of the JavaScript and
// Python generators).
var ZeroSeed Seed

// ParseSeed decodes a seed from exactly SeedHexSize hex characters: the
// first 64 are the key, the next 16 are the nonce.
func ParseSeed(s string) (seed Seed, err error) {
	if len(s) != SeedHexSize {
		return seed, newErrInvalidSeedLength(SeedHexSize, uint(len(s)))
	}
	if _, err := hex.Decode(seed[:], []byte(s)); err != nil {
		return Seed{}, newErrInvalidSeedEncoding(err)
	}
	return seed, nil
}

// NewRandomSeed returns a seed read from crypto/rand. Use it when the
// stream does not have to be reproducible (but may be replayed later
// by keeping the seed).
func NewRandomSeed() (seed Seed, err error) {
	_, err = io.ReadFull(rand.Reader, seed[:])
	return seed, wrapError(err)
}

// Key returns the ChaCha key part of the seed.
func (seed Seed) Key() []byte {
	return seed[:KeySize]
}

// Nonce returns the nonce (IV) part of the seed.
func (seed Seed) Nonce() []byte {
	return seed[KeySize:]
}

func (seed Seed) String() string {
	return hex.EncodeToString(seed[:])
}
