// Package fixture provides validation helpers to enforce
// parameter contracts in the builder's operations.
//
// Each function returns a sentinel error wrapped with method context
// via wrapf when its precondition is violated.
package fixture

import "sort"

// validateSchema ensures every field name is non-empty and every
// generator is non-nil. Fields are checked in sorted order so the first
// reported violation is deterministic.
//
// Parameters:
//   - method: canonical operation name, e.g. MethodNew.
//   - s:      schema supplied by the caller.
//
// Complexity: O(F log F) time for the sort, O(F) space, F = len(s).
func validateSchema(method string, s Schema) error {
	// Collect names first: map iteration order is randomized.
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if name == "" {
			return wrapf(method, ErrBadFieldName, "field name must be non-empty")
		}
		if s[name] == nil {
			return wrapf(method, ErrNilGenerator, "field %q has a nil generator", name)
		}
	}

	return nil
}

// validateOverrides enforces the RejectUnknown policy: every override key
// must name a schema field. It runs BEFORE any generator is invoked, so a
// rejected build performs no draws at all. Unknown keys are reported in
// sorted order for deterministic messages.
//
// Parameters:
//   - method: canonical operation name, e.g. MethodBuild.
//   - s:      the builder's schema.
//   - ov:     caller overrides (may be nil).
//
// Complexity: O(K log K) time, O(K) space, K = len(ov).
func validateOverrides(method string, s Schema, ov Overrides) error {
	var unknown []string
	for key := range ov {
		if _, ok := s[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)

	return wrapf(method, ErrUnknownField, "override key(s) %q not in schema", unknown)
}

// validateCount ensures the BuildMany count is ≥ MinBuildCount.
//
// Complexity: O(1) time and space.
func validateCount(method string, n int) error {
	if n < MinBuildCount {
		return wrapf(method, ErrBadCount, "count must be ≥ %d, got %d", MinBuildCount, n)
	}

	return nil
}
