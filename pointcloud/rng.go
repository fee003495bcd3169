// Package pointcloud — RNG utilities shared by the cloud builders.
//
// This file centralizes deterministic random generation for every builder
// that consumes randomness.
//
// Goals:
//   - Determinism: same seed ⇒ identical clouds across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; builders return sentinel errors instead.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Builders create a private stream
//     per call, so concurrent builds with distinct seeds are safe.
package pointcloud

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
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

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed, so that per-cloud streams inside one batch stay uncorrelated.
//
// Notes:
//   - Constants are the canonical SplitMix64 multipliers/finalizer; they
//     provide strong bit diffusion between adjacent stream IDs.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		x = uint64(defaultRNGSeed)
	}
	return int64(x)
}
