// Package shuffle provides deterministic seeded permutations.
//
// A Source is built once from a seed string and reused for every shuffle in
// one randomization pass. Each Permute call re-seeds a fresh generator, so
// the permutation applied to a sequence depends only on the seed and the
// sequence length, never on how many shuffles ran before it. That property
// is what keeps explicitly seeded builds reproducible.
//
//	src := shuffle.New("build-seed")
//	src.Permute(len(items), func(i, j int) {
//	    items[i], items[j] = items[j], items[i]
//	})
//
// The generator is math/rand/v2 PCG, not a cryptographic source. An empty
// seed is deterministic but predictable; callers wanting the security
// benefit must supply real entropy.
package shuffle
