// Package randutil centralises how seeded random sources are built so that
// every shuffle in a game session is reproducible from a single int64 seed.
package randutil

import (
	"io"
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The returned value satisfies deck.Shuffler.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewReader returns a deterministic byte stream derived from seed. It is used
// where a library wants an io.Reader as its entropy source (session IDs).
func NewReader(seed int64) io.Reader {
	var key [32]byte
	u := uint64(seed)
	for i := range 4 {
		v := mix(u + uint64(i)*goldenRatio64)
		for b := range 8 {
			key[i*8+b] = byte(v >> (8 * b))
		}
	}
	return rand.NewChaCha8(key)
}

// Derive returns the seed for the n-th independent stream under a base seed.
// Session n of a batch uses Derive(seed, n) so sessions never share a sequence.
func Derive(seed int64, n int) int64 {
	return int64(mix(uint64(seed) + uint64(n)*goldenRatio64))
}

// SeedOrNow returns seed unless it is zero, in which case a time based seed
// is returned. Zero is treated as "pick one for me" on the command line.
func SeedOrNow(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
