// Package fixture: Record accessors and views.
//
// Records are plain maps; these methods add deterministic views (sorted
// Fields), a shallow Clone, and typed getters that convert lookup and
// type mismatches into the package's sentinel errors instead of the
// two-value comma-ok dance at every call site.
package fixture

import (
	"sort"
	"time"
)

// Fields returns the record's field names in sorted order.
// Complexity: O(F log F) time, O(F) space.
func (r Record) Fields() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Has reports whether the record contains field.
// Complexity: O(1).
func (r Record) Has(field string) bool {
	_, ok := r[field]

	return ok
}

// Clone returns a shallow copy of the record: field set and values are
// copied, referenced objects are shared. Useful when a test mutates a
// record it hands to the code under test.
// Complexity: O(F) time and space.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for name, v := range r {
		out[name] = v
	}

	return out
}

// String returns the field's value as a string.
// Errors: ErrUnknownField if the field is absent, ErrWrongType if the
// value is not a string. Both name the field.
// Complexity: O(1).
func (r Record) String(field string) (string, error) {
	v, ok := r[field]
	if !ok {
		return "", wrapf(MethodRecord, ErrUnknownField, "field %q", field)
	}
	s, ok := v.(string)
	if !ok {
		return "", wrapf(MethodRecord, ErrWrongType, "field %q holds %T, want string", field, v)
	}

	return s, nil
}

// Int returns the field's value as an int.
// Errors: ErrUnknownField, ErrWrongType (both name the field).
// Complexity: O(1).
func (r Record) Int(field string) (int, error) {
	v, ok := r[field]
	if !ok {
		return 0, wrapf(MethodRecord, ErrUnknownField, "field %q", field)
	}
	n, ok := v.(int)
	if !ok {
		return 0, wrapf(MethodRecord, ErrWrongType, "field %q holds %T, want int", field, v)
	}

	return n, nil
}

// Float64 returns the field's value as a float64.
// Errors: ErrUnknownField, ErrWrongType (both name the field).
// Complexity: O(1).
func (r Record) Float64(field string) (float64, error) {
	v, ok := r[field]
	if !ok {
		return 0, wrapf(MethodRecord, ErrUnknownField, "field %q", field)
	}
	f, ok := v.(float64)
	if !ok {
		return 0, wrapf(MethodRecord, ErrWrongType, "field %q holds %T, want float64", field, v)
	}

	return f, nil
}

// Bool returns the field's value as a bool.
// Errors: ErrUnknownField, ErrWrongType (both name the field).
// Complexity: O(1).
func (r Record) Bool(field string) (bool, error) {
	v, ok := r[field]
	if !ok {
		return false, wrapf(MethodRecord, ErrUnknownField, "field %q", field)
	}
	b, ok := v.(bool)
	if !ok {
		return false, wrapf(MethodRecord, ErrWrongType, "field %q holds %T, want bool", field, v)
	}

	return b, nil
}

// Time returns the field's value as a time.Time.
// Errors: ErrUnknownField, ErrWrongType (both name the field).
// Complexity: O(1).
func (r Record) Time(field string) (time.Time, error) {
	v, ok := r[field]
	if !ok {
		return time.Time{}, wrapf(MethodRecord, ErrUnknownField, "field %q", field)
	}
	ts, ok := v.(time.Time)
	if !ok {
		return time.Time{}, wrapf(MethodRecord, ErrWrongType, "field %q holds %T, want time.Time", field, v)
	}

	return ts, nil
}
