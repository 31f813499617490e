// SPDX-License-Identifier: MIT
// Package: fixgen/fixture
//
// errors.go — sentinel errors for the fixture package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Implementations attach context using %w wrapping with a
//     "<Method>: ..." prefix (see wrapf below).
//   - Runtime code MUST NOT panic; validation panics are confined to
//     option constructor functions (WithX...).

package fixture

import (
	"errors"
	"fmt"
)

// ErrBadFieldName indicates a schema field name that violates the naming
// contract (currently: the empty string).
// Classification: Validation error (schema), raised by New.
// Usage: if errors.Is(err, ErrBadFieldName) { /* fix the schema literal */ }.
var ErrBadFieldName = errors.New("fixture: bad field name")

// ErrNilGenerator indicates a schema entry whose generator is nil.
// Classification: Validation error (schema), raised by New.
// Usage: if errors.Is(err, ErrNilGenerator) { /* supply a generator */ }.
var ErrNilGenerator = errors.New("fixture: nil generator")

// ErrUnknownField indicates a field name outside the schema: an override
// key under the RejectUnknown policy, or a missing field in a Record
// accessor. The error message always names the offending field.
// Usage: if errors.Is(err, ErrUnknownField) { /* check the key spelling */ }.
var ErrUnknownField = errors.New("fixture: unknown field")

// ErrGeneratorFailed indicates that a field's generator returned an error
// during Build. The build is abandoned; no partial Record is returned.
// The underlying cause remains reachable through errors.Is/errors.As.
// Usage: if errors.Is(err, ErrGeneratorFailed) { /* inspect the cause */ }.
var ErrGeneratorFailed = errors.New("fixture: generator failed")

// ErrWrongType indicates that a Record accessor found the field but its
// value has a different dynamic type than requested.
// Usage: if errors.Is(err, ErrWrongType) { /* use the right accessor */ }.
var ErrWrongType = errors.New("fixture: wrong value type")

// ErrBadCount indicates a negative count passed to BuildMany.
// Usage: if errors.Is(err, ErrBadCount) { /* fix n */ }.
var ErrBadCount = errors.New("fixture: invalid build count")

// wrapf attaches method context to a sentinel, producing an error of the
// form "<Method>: <formatted message>: <sentinel>". The sentinel stays
// reachable via errors.Is.
//
// Parameters:
//   - method:   canonical operation name, e.g. MethodBuild.
//   - sentinel: one of the package sentinels above.
//   - format:   format string for the inner message.
//   - args:     values for the format placeholders.
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func wrapf(method string, sentinel error, format string, args ...any) error {
	// Build the inner message first so the sentinel is the last %w target.
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}

// generatorFailure wraps a generator's error with both the
// ErrGeneratorFailed sentinel and the original cause, naming the field.
// errors.Is matches the sentinel AND the cause; errors.As reaches the cause.
//
// Complexity: O(1) beyond error formatting.
func generatorFailure(method, field string, cause error) error {
	return fmt.Errorf("%s: field %q: %w: %w", method, field, ErrGeneratorFailed, cause)
}

// --- Implementation Notes ----------------------------------------------------
//
// 1) Priority (tie-break guidance when multiple validations fail):
//    • ErrBadFieldName / ErrNilGenerator — schema checks first (New).
//    • ErrBadCount                       — count checks (BuildMany).
//    • ErrUnknownField                   — override keys, BEFORE any generator runs.
//    • ErrGeneratorFailed                — only once generation has started.
//
// 2) Testing guidance:
//    Use table tests asserting errors.Is(err, ErrX). Avoid matching error
//    strings except for the presence of the offending field name, which is
//    part of the public contract.
