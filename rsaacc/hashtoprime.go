package rsaacc

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"
)

// HashToPrime deterministically maps a member string to a probable prime:
// repeatedly hash s concatenated with a little-endian counter starting at 0
// until the result is a probable prime at MillerRabinRounds confidence. The
// counter that produced the prime is returned alongside it so that a
// witness computation can unambiguously re-derive the same prime later.
func HashToPrime(s string) (*big.Int, uint64, error) {
	var counterBytes [8]byte
	msg := []byte(s)
	for counter := uint64(0); ; counter++ {
		binary.LittleEndian.PutUint64(counterBytes[:], counter)
		h := sha256.Sum256(append(append([]byte{}, msg...), counterBytes[:]...))
		candidate := new(big.Int).SetBytes(h[:])
		if candidate.ProbablyPrime(MillerRabinRounds) {
			return candidate, counter, nil
		}
	}
}
