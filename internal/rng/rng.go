package rng

import "math/rand"

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Seeded returns a deterministic generator
// A seed of 0 returns the crypto generator instead
func Seeded(seed int64) Generator {
	if seed == 0 {
		return Crypto{}
	}

	return rand.New(rand.NewSource(seed)) // nolint:gosec
}
