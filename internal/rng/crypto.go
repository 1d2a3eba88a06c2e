package rng

import (
	"crypto/rand"
	"math"
	"math/big"
)

// Seed returns a positive, cryptographically random shuffle seed
func Seed() int64 {
	b, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64-1))
	if err != nil {
		panic(err)
	}

	return b.Int64() + 1
}
