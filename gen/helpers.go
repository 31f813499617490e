// Package gen provides internal helper functions used by generator
// constructors to draw from either a caller-supplied deterministic RNG
// or, when rng is nil, the process-global locked math/rand source.
//
// Design principles:
//   - Single Responsibility: each helper wraps exactly one draw shape.
//   - Determinism: given the same non-nil rng state, every helper is
//     a pure function of that state.
//   - Concurrency: the nil-rng path delegates to math/rand's top-level
//     functions, which serialize on an internal lock.
package gen

import "math/rand"

// intn draws a uniform int in [0, n). Callers guarantee n > 0.
// Complexity: O(1).
func intn(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.Intn(n)
	}

	return rng.Intn(n)
}

// int63n draws a uniform int64 in [0, n). Callers guarantee n > 0.
// Complexity: O(1).
func int63n(rng *rand.Rand, n int64) int64 {
	if rng == nil {
		return rand.Int63n(n)
	}

	return rng.Int63n(n)
}

// float64v draws a uniform float64 in [0, 1).
// Complexity: O(1).
func float64v(rng *rand.Rand) float64 {
	if rng == nil {
		return rand.Float64()
	}

	return rng.Float64()
}

// pick returns a uniformly chosen element of list.
// Callers guarantee len(list) > 0.
// Complexity: O(1).
func pick(rng *rand.Rand, list []string) string {
	return list[intn(rng, len(list))]
}
