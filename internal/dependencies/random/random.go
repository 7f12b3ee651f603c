package random

import (
	"crypto/rand"
	"math/big"
)

// Random is the source of every draw made when seeding a cohort.
// Tests substitute a queue-backed mock to fix the outcome.
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a random int in [0, n). Non-positive n yields 0.
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	result, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(result.Int64())
}

// Pick returns a random element of items; items must not be empty
func Pick[T any](r Random, items []T) T {
	return items[r.Intn(len(items))]
}

// Letter draws an upper-case ASCII letter
func Letter(r Random) rune {
	return rune('A' + r.Intn(26))
}
