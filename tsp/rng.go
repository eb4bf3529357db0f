// Package tsp - RNG utilities.
//
// Goals:
//   - Determinism: same seed ⇒ identical trajectories across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use DeriveSeed to create independent streams for parallel restarts.
package tsp

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// rngFor picks the run's generator: opts.Rand if set, else one seeded from opts.Seed.
func rngFor(opts Options) *rand.Rand {
	if opts.Rand != nil {
		return opts.Rand
	}

	return rngFromSeed(opts.Seed)
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64-style finalizer, so consecutive stream ids give
// decorrelated seeds. A zero parent is replaced by defaultRNGSeed first.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	if parent == 0 {
		parent = defaultRNGSeed
	}
	var x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// samplePair draws two distinct positions uniformly from [0,n) and returns
// them ordered (i < j). Contract: n ≥ 2.
//
// Complexity: O(1); consumes exactly two values from r.
func samplePair(r *rand.Rand, n int) (int, int) {
	i := r.Intn(n)
	j := r.Intn(n - 1)
	if j >= i {
		j++ // skip i so the pair is distinct and still uniform
	}
	if i > j {
		i, j = j, i
	}

	return i, j
}
