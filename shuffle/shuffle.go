package shuffle

import (
	"hash/fnv"
	"math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// Source derives deterministic permutations from a seed string.
//
// Every Permute call constructs a fresh generator from the seed, so repeated
// calls with the same length produce the same permutation. Determinism comes
// from the seed alone; a Source is a value and is safe to copy and to use
// from multiple goroutines.
type Source struct {
	lo, hi uint64
}

// New creates a Source from a seed string.
//
// The seed bytes are hashed through FNV-64a and expanded into two PCG words.
// An empty seed is still deterministic but carries no entropy; it is a
// degenerate seed, not an error.
func New(seed string) Source {
	h := fnv.New64a()
	h.Write([]byte(seed))
	u := h.Sum64()
	return Source{
		lo: mix(u),
		hi: mix(u + goldenRatio64),
	}
}

// Permute applies a seeded Fisher-Yates permutation to n elements through
// the provided swap function. n <= 1 is a no-op.
func (s Source) Permute(n int, swap func(i, j int)) {
	if n <= 1 {
		return
	}
	rng := rand.New(rand.NewPCG(s.lo, s.hi))
	rng.Shuffle(n, swap)
}

// mix is a splitmix64-style finalizer. It decorrelates the two generator
// words derived from one hash value.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
