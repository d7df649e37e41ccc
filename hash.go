package chachagen

import (
	"golang.org/x/crypto/sha3"

	"lukechampine.com/blake3"
)

// DeriveSeed derives a Seed from arbitrary material (for example a
// published randomness beacon pulse).
//
// The material and the salts are pre-hashed with blake3-512, then the
// pre-hash followed by the salts again is squeezed through SHAKE256.
func DeriveSeed(material []byte, salts ...[]byte) (seed Seed) {
	preHasher := blake3.New(64, nil)
	preHasher.Write(material)
	for _, salt := range salts {
		preHasher.Write(salt)
	}

	shake := sha3.NewShake256()
	shake.Write(preHasher.Sum(nil))
	for _, salt := range salts {
		shake.Write(salt)
	}
	shake.Read(seed[:])
	return
}
