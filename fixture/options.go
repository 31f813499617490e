// SPDX-License-Identifier: MIT
// Package: fixgen/fixture
//
// options.go — functional options for the fixture package.
//
// Contract (strict):
//   • Options are functional (type Option func(*buildConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     the builder itself MUST NOT panic at runtime.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through buildConfig.

package fixture

import (
	"fmt"
	"math/rand" // RNG source for deterministic builds
)

// Option customizes a Builder by mutating a buildConfig instance before
// the first build. Complexity: applying N options costs O(N) time.
type Option func(*buildConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes: two builders created
// with equal schemas and equal seeds produce identical records.
// The seeded stream is NOT safe for concurrent Build calls; serialize
// builds or give each goroutine its own seeded Builder.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) Option {
	return func(c *buildConfig) {
		// Seeded source → reproducible draws across all generators.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG for all generator draws.
// Panics on nil; prefer WithSeed for reproducible runs.
// Thread-safety of the supplied stream is the caller's concern.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent fallback to the global source.
		panic("fixture: WithRand(nil)")
	}
	return func(c *buildConfig) {
		// Attach the RNG; callers decide the seed policy.
		c.rng = r
	}
}

// WithUnknownFields selects the treatment of override keys that do not
// name any schema field. Panics on an undefined policy value.
// Complexity: O(1) time, O(1) space.
func WithUnknownFields(p UnknownFieldPolicy) Option {
	if !p.valid() {
		// Fail fast: an out-of-range policy is programmer error.
		panic(fmt.Sprintf("fixture: WithUnknownFields(%d): undefined policy", p))
	}
	return func(c *buildConfig) {
		// Store the policy; enforced by Build before any generator runs.
		c.policy = p
	}
}
