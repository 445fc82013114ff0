package order

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when a Config's Seed is left
// at its zero value, so DefaultConfig() stays reproducible without callers
// having to pick a seed themselves.
const defaultRNGSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand for seed. seed==0 maps to
// defaultRNGSeed; any other value is used verbatim.
func NewRNG(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed via a SplitMix64-style avalanche finalizer, so independent
// substreams (e.g. one per restart) don't correlate.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG creates an independent deterministic RNG stream from a base RNG
// and a stream identifier. If base is nil, defaultRNGSeed is used as the
// parent.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultRNGSeed
	} else {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// sampleWithoutReplacement draws min(k, len(pool)) distinct indices from
// pool via a partial Fisher-Yates shuffle and returns the first one drawn,
// implementing a sampling-without-replacement tiebreak among equally-costed
// candidates. pool is shuffled in place up to the draw count; elements
// beyond it are left in an unspecified order.
func sampleWithoutReplacement(pool []int, k int, rng *rand.Rand) int {
	n := len(pool)
	draw := k
	if draw > n {
		draw = n
	}
	if draw <= 0 {
		draw = 1
	}

	for i := 0; i < draw && i < n-1; i++ {
		j := i + rng.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[0]
}
