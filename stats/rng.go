// Package stats - RNG utilities shared by the samplers.
//
// Goals:
//   - Determinism: same seed ⇒ identical fractions across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package stats

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// uniformInclusive returns an integer drawn uniformly from [lo, hi].
// Requires lo ≤ hi.
//
// Complexity: O(1).
func uniformInclusive(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a using r.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, r *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// permRange returns a uniformly random permutation of 0..n-1.
//
// Complexity: O(n) time, O(n) space.
func permRange(n int, r *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	shuffleIntsInPlace(p, r)

	return p
}
