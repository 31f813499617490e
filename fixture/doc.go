// Package fixture provides the Fixture Builder: a reusable, immutable
// mapping from field names to generator functions that produces fully
// populated records on demand, with caller overrides taking exact
// precedence over generated defaults.
//
// The package offers the following key components:
//
//   - Core types:
//     – Generator:     func(*rand.Rand) (any, error), one value per call.
//     – Schema:        field name → Generator; validated and copied by New.
//     – Overrides:     per-call literal values with right-hand precedence.
//     – Record:        the built result; key set equals the schema's key set.
//   - Configuration primitives:
//     – Option:        a function that mutates buildConfig before use.
//     – buildConfig:   holds RNG and the unknown-field policy.
//   - Unknown-field policies (UnknownFieldPolicy):
//     – RejectUnknown:      fail the build before any generator runs (default).
//     – IgnoreUnknown:      drop unknown override keys silently.
//     – PassThroughUnknown: copy unknown override keys into the record.
//   - Sentinel errors:
//     – ErrBadFieldName, ErrNilGenerator (schema validation in New).
//     – ErrUnknownField (reject policy, Record accessors).
//     – ErrGeneratorFailed (a generator returned an error during Build).
//     – ErrWrongType, ErrBadCount (Record accessors, BuildMany).
//
// Guarantees:
//
//   - Totality: every schema field appears exactly once in the returned
//     Record; no missing fields, no extras beyond the pass-through policy.
//   - Exact precedence: an overridden field carries the override value
//     unmodified; its generator is never invoked for that build.
//   - One draw per field per build: generators are invoked exactly once
//     for each non-overridden field and are never memoized across calls.
//   - All-or-nothing: a build returns either a complete Record or an
//     error; no partial record is ever observable.
//   - Concurrency: a Builder is immutable after New and safe for
//     concurrent Build calls under the default (nil) RNG; a stream set
//     via WithRand/WithSeed is the caller's concurrency concern.
//   - Fast-fail on invalid option parameters via panics in
//     option-constructors; runtime code returns sentinel errors and
//     never panics.
//
// See individual function documentation for detailed contracts, panic
// conditions, parameter descriptions, and performance notes.
package fixture
