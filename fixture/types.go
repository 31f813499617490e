// SPDX-License-Identifier: MIT
// Package: fixgen/fixture
//
// types.go — public types of the fixture package.
//
// Design contract (strict):
//   - Generator is the single extension point: any func(*rand.Rand) (any, error).
//   - nil RNG means "draw from the process-global locked source" (fresh data,
//     safe concurrently); a non-nil RNG is a private deterministic stream.
//   - Schema/Overrides/Record are plain maps: literal-friendly, no hidden state.
//   - Determinism: same schema, same overrides, same seed ⇒ identical Record.

package fixture

import (
	"math/rand"
)

// Generator produces one value for a schema field. Generators MUST:
//   - Tolerate a nil rng by falling back to the process-global source.
//   - Be safe to invoke any number of times (each call is an independent draw).
//   - Return a non-nil error instead of panicking when they cannot produce
//     a value; Build wraps such errors as ErrGeneratorFailed with the field name.
//
// Rationale: isolates value synthesis behind a uniform function type so the
// builder stays agnostic of what the fields mean.
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Generator func(rng *rand.Rand) (any, error)

// Schema maps field names to their generators. Field names must be non-empty;
// uniqueness is inherent to the map. New validates and copies the schema, so
// later mutation of the caller's map does not affect a constructed Builder.
type Schema map[string]Generator

// Overrides carries caller-supplied literal values for a single Build call.
// A nil Overrides is equivalent to an empty one. Keys should name schema
// fields; treatment of unknown keys is governed by UnknownFieldPolicy.
type Overrides map[string]any

// Record is the output of a Build call: field name → value. Every schema
// field is present exactly once; the value is the override when supplied and
// the generator's output otherwise. Records are transient and independent —
// successive builds share no state.
type Record map[string]any

// UnknownFieldPolicy selects how Build treats override keys that do not
// name any schema field. The zero value is RejectUnknown.
type UnknownFieldPolicy int

const (
	// RejectUnknown fails the build with ErrUnknownField before any
	// generator is invoked. Default and the safest choice: a typo in an
	// override key surfaces immediately instead of silently testing nothing.
	RejectUnknown UnknownFieldPolicy = iota

	// IgnoreUnknown drops unknown override keys silently; the Record still
	// contains exactly the schema's fields.
	IgnoreUnknown

	// PassThroughUnknown copies unknown override keys into the Record
	// verbatim, in addition to every schema field.
	PassThroughUnknown

	// policyLimit guards option validation; not a usable policy.
	policyLimit
)

// String renders the policy name for logs and error messages.
// Complexity: O(1) time, O(1) space.
func (p UnknownFieldPolicy) String() string {
	switch p {
	case RejectUnknown:
		return "RejectUnknown"
	case IgnoreUnknown:
		return "IgnoreUnknown"
	case PassThroughUnknown:
		return "PassThroughUnknown"
	default:
		return "UnknownFieldPolicy(invalid)"
	}
}

// valid reports whether p is one of the defined policies.
func (p UnknownFieldPolicy) valid() bool {
	return p >= RejectUnknown && p < policyLimit
}
