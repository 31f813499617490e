// SPDX-License-Identifier: MIT
// Package: fixgen/fixture
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • buildConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals beyond the
//     process-wide math/rand source selected by a nil rng.
//   • newBuildConfig applies options in-order (later overrides earlier).
//
// Defaults (no surprises):
//   • rng    = nil           (process-global locked source: fresh data per
//                             call, safe for concurrent builds)
//   • policy = RejectUnknown (typos in override keys fail fast)

package fixture

import (
	"math/rand" // RNG for deterministic builds via WithSeed/WithRand
)

// buildConfig aggregates all knobs used by Build.
// It is stored by VALUE inside Builder (immutable to callers).
type buildConfig struct {
	// RNG passed to every generator; nil means "use the global source".
	rng *rand.Rand
	// Treatment of override keys outside the schema.
	policy UnknownFieldPolicy
}

// newBuildConfig constructs a config with deterministic defaults and applies
// all options in order, last-wins semantics.
// Complexity: O(len(opts)) time, O(1) space.
func newBuildConfig(opts ...Option) buildConfig {
	// Start with strict, documented defaults.
	cfg := buildConfig{
		rng:    nil,           // global locked source unless explicitly seeded
		policy: RejectUnknown, // safest unknown-key treatment
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	// Return by value to keep the resolved config immutable.
	return cfg
}
