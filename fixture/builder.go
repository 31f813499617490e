// SPDX-License-Identifier: MIT
// Package: fixgen/fixture
//
// builder.go - thin public entry-points for the fixture package.
//
// Design contract (strict):
//   - One constructor: New(schema, opts...). Validates, copies the schema,
//     resolves cfg, sorts the field list once.
//   - One operation: Build(overrides). Policy check first, then exactly one
//     generator draw per non-overridden field, then pass-through (if any).
//   - Determinism: same schema/overrides/seed ⇒ identical Record; fields are
//     visited in sorted name order so seeded draws are reproducible.
//   - Safety: never panic at runtime; return sentinel errors; a build either
//     yields a complete Record or an error, never a partial result.

package fixture

import "sort"

// Builder holds a fixed, validated field schema and produces new records
// on demand. It is immutable after New and safe to share across many test
// cases; see WithSeed/WithRand for the one concurrency caveat (the RNG).
type Builder struct {
	// Private copy of the caller's schema; never mutated after New.
	schema Schema
	// Field names in sorted order; fixes the internal generation order.
	fields []string
	// Resolved configuration (RNG + unknown-field policy), by value.
	cfg buildConfig
}

// New validates schema, copies it, resolves the configuration from opts,
// and returns an immutable Builder.
//
// Validation:
//   - every field name must be non-empty (ErrBadFieldName),
//   - every generator must be non-nil (ErrNilGenerator).
//
// An empty schema is legal: every Build returns an empty Record (plus
// pass-through keys under PassThroughUnknown).
//
// Complexity: O(F log F) time, O(F) space, F = len(schema).
func New(schema Schema, opts ...Option) (*Builder, error) {
	// Validate before copying; the first violation is reported deterministically.
	if err := validateSchema(MethodNew, schema); err != nil {
		return nil, err
	}

	// Private copy: later mutation of the caller's map must not leak in.
	owned := make(Schema, len(schema))
	names := make([]string, 0, len(schema))
	for name, g := range schema {
		owned[name] = g
		names = append(names, name)
	}
	// Sorted field list fixes the internal draw order (seeded reproducibility).
	sort.Strings(names)

	return &Builder{
		schema: owned,
		fields: names,
		cfg:    newBuildConfig(opts...),
	}, nil
}

// Build produces one Record: overridden fields carry the override value
// exactly; every other field is generated by exactly one draw of its
// generator. A nil ov is equivalent to an empty Overrides.
//
// Unknown override keys are handled per the configured policy BEFORE any
// generator runs: RejectUnknown returns ErrUnknownField naming the keys,
// IgnoreUnknown drops them, PassThroughUnknown copies them into the Record.
//
// Errors:
//   - ErrUnknownField (reject policy only).
//   - ErrGeneratorFailed wrapping the generator's error and naming the
//     field; no partial Record is returned.
//
// Complexity: O(F + K) map work plus the generators' own cost,
// F = schema size, K = len(ov).
func (b *Builder) Build(ov Overrides) (Record, error) {
	// Policy gate first: a rejected build performs no draws at all.
	if b.cfg.policy == RejectUnknown {
		if err := validateOverrides(MethodBuild, b.schema, ov); err != nil {
			return nil, err
		}
	}

	// Every schema field lands in the record exactly once.
	rec := make(Record, len(b.fields)+len(ov))
	for _, name := range b.fields {
		// Override wins; the generator is NOT invoked for this field.
		if v, ok := ov[name]; ok {
			rec[name] = v
			continue
		}
		// Exactly one draw per non-overridden field per build.
		v, err := b.schema[name](b.cfg.rng)
		if err != nil {
			// Abandon the build; the caller never sees a partial record.
			return nil, generatorFailure(MethodBuild, name, err)
		}
		rec[name] = v
	}

	// Pass-through keys ride along only under the explicit policy.
	if b.cfg.policy == PassThroughUnknown {
		for key, v := range ov {
			if _, known := b.schema[key]; !known {
				rec[key] = v
			}
		}
	}

	return rec, nil
}

// BuildMany produces n independent records with the same overrides applied
// to each. The first failing build aborts and returns its error; n == 0
// yields an empty slice.
//
// Complexity: n × cost of Build.
func (b *Builder) BuildMany(n int, ov Overrides) ([]Record, error) {
	if err := validateCount(MethodBuildMany, n); err != nil {
		return nil, err
	}

	recs := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		rec, err := b.Build(ov)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, nil
}

// Fields returns the schema's field names in sorted order. The returned
// slice is a fresh copy; mutating it does not affect the Builder.
//
// Complexity: O(F) time and space.
func (b *Builder) Fields() []string {
	out := make([]string, len(b.fields))
	copy(out, b.fields)

	return out
}

// Build is a thin one-shot helper: construct a Builder for schema with
// opts and run a single build against ov. It returns sentinel errors;
// it never panics (option-constructor panics excepted, as always).
//
// Complexity: O(len(opts)) + cost of New + cost of (*Builder).Build.
func Build(schema Schema, ov Overrides, opts ...Option) (Record, error) {
	b, err := New(schema, opts...)
	if err != nil {
		return nil, err
	}

	return b.Build(ov)
}
