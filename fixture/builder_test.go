// Package fixture_test contains unit tests for the Builder contract:
// totality, override precedence, unknown-field policies, failure
// propagation and seeded reproducibility.
package fixture_test

import (
	"errors"
	"math/rand"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixgen/fixture"
)

// constGen returns a generator that always yields v and never fails.
func constGen(v any) fixture.Generator {
	return func(_ *rand.Rand) (any, error) { return v, nil }
}

// countingGen returns a generator that yields v and bumps calls on each draw.
// Used to verify the exactly-once-per-build and no-draw-on-reject invariants.
func countingGen(v any, calls *atomic.Int64) fixture.Generator {
	return func(_ *rand.Rand) (any, error) {
		calls.Add(1)

		return v, nil
	}
}

// failingGen returns a generator that always fails with cause.
func failingGen(cause error) fixture.Generator {
	return func(_ *rand.Rand) (any, error) { return nil, cause }
}

// randWordGen yields a pseudo-random 12-letter string; collision chance
// between two draws is negligible, which the independence test relies on.
func randWordGen() fixture.Generator {
	const letters = "abcdefghijklmnopqrstuvwxyz"

	return func(rng *rand.Rand) (any, error) {
		var sb strings.Builder
		for i := 0; i < 12; i++ {
			if rng == nil {
				sb.WriteByte(letters[rand.Intn(len(letters))])
			} else {
				sb.WriteByte(letters[rng.Intn(len(letters))])
			}
		}

		return sb.String(), nil
	}
}

// TestNew_SchemaValidation verifies that New rejects empty field names and
// nil generators with the documented sentinels, and accepts an empty schema.
func TestNew_SchemaValidation(t *testing.T) {
	t.Parallel()

	// Empty field name → ErrBadFieldName.
	_, err := fixture.New(fixture.Schema{"": constGen(1)})
	assert.ErrorIs(t, err, fixture.ErrBadFieldName, "empty field name must be rejected")

	// Nil generator → ErrNilGenerator naming the field.
	_, err = fixture.New(fixture.Schema{"username": nil})
	assert.ErrorIs(t, err, fixture.ErrNilGenerator, "nil generator must be rejected")
	assert.Contains(t, err.Error(), `"username"`, "error must name the offending field")

	// Empty schema is legal and builds an empty record.
	b, err := fixture.New(fixture.Schema{})
	require.NoError(t, err, "empty schema must be accepted")
	rec, err := b.Build(nil)
	require.NoError(t, err)
	assert.Empty(t, rec, "empty schema must build an empty record")
}

// TestBuild_Totality verifies that the record's key set equals the schema's
// key set exactly, with and without overrides.
func TestBuild_Totality(t *testing.T) {
	t.Parallel()

	b, err := fixture.New(fixture.Schema{
		"username": randWordGen(),
		"password": randWordGen(),
		"age":      constGen(30),
	})
	require.NoError(t, err)

	// No overrides: all three fields, nothing else.
	rec, err := b.Build(nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"age", "password", "username"}, rec.Fields())

	// With an override: same key set, no extras.
	rec, err = b.Build(fixture.Overrides{"age": 7})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"age", "password", "username"}, rec.Fields())
}

// TestBuild_OverridePrecedence verifies exact, uncoerced override values and
// that an overridden field's generator is never invoked.
func TestBuild_OverridePrecedence(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	b, err := fixture.New(fixture.Schema{
		"password": countingGen("generated", &calls),
		"username": randWordGen(),
	})
	require.NoError(t, err)

	rec, err := b.Build(fixture.Overrides{"password": "abc"})
	require.NoError(t, err)
	assert.Equal(t, "abc", rec["password"], "override value must appear exactly")
	assert.Equal(t, int64(0), calls.Load(), "overridden field's generator must not run")

	// Overrides keep their dynamic type: no coercion of any kind.
	rec, err = b.Build(fixture.Overrides{"password": 12345})
	require.NoError(t, err)
	assert.Equal(t, 12345, rec["password"], "override must not be coerced to the generator's type")
}

// TestBuild_GeneratorRunsExactlyOnce verifies one draw per non-overridden
// field per build, with no memoization across successive builds.
func TestBuild_GeneratorRunsExactlyOnce(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	b, err := fixture.New(fixture.Schema{"token": countingGen("t", &calls)})
	require.NoError(t, err)

	_, err = b.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), calls.Load(), "exactly one draw on first build")

	_, err = b.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), calls.Load(), "fresh draw on second build (no memoization)")
}

// TestBuild_IndependenceAcrossCalls verifies that two default builds produce
// different values for a randomized field with overwhelming probability.
func TestBuild_IndependenceAcrossCalls(t *testing.T) {
	t.Parallel()

	b, err := fixture.New(fixture.Schema{"word": randWordGen()})
	require.NoError(t, err)

	first, err := b.Build(nil)
	require.NoError(t, err)
	second, err := b.Build(nil)
	require.NoError(t, err)

	// 26^-12 collision chance; a flake here means caching leaked between calls.
	assert.NotEqual(t, first["word"], second["word"], "successive builds must draw fresh values")
}

// TestBuild_SeededReproducibility verifies that two builders with equal
// schemas and equal seeds produce identical records, and different seeds
// diverge.
func TestBuild_SeededReproducibility(t *testing.T) {
	t.Parallel()

	schema := fixture.Schema{
		"a": randWordGen(),
		"b": randWordGen(),
		"c": randWordGen(),
	}

	b1, err := fixture.New(schema, fixture.WithSeed(42))
	require.NoError(t, err)
	b2, err := fixture.New(schema, fixture.WithSeed(42))
	require.NoError(t, err)
	b3, err := fixture.New(schema, fixture.WithSeed(43))
	require.NoError(t, err)

	r1, err := b1.Build(nil)
	require.NoError(t, err)
	r2, err := b2.Build(nil)
	require.NoError(t, err)
	r3, err := b3.Build(nil)
	require.NoError(t, err)

	assert.Equal(t, r1, r2, "equal seeds must reproduce identical records")
	assert.NotEqual(t, r1, r3, "different seeds must diverge")
}

// TestBuild_RejectUnknown verifies the default policy: ErrUnknownField names
// the bad key and no generator in the schema is invoked.
func TestBuild_RejectUnknown(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	b, err := fixture.New(fixture.Schema{
		"username": countingGen("u", &calls),
		"password": countingGen("p", &calls),
	})
	require.NoError(t, err)

	rec, err := b.Build(fixture.Overrides{"badKey": 1})
	assert.ErrorIs(t, err, fixture.ErrUnknownField, "unknown override key must be rejected by default")
	assert.Contains(t, err.Error(), "badKey", "error must name the offending key")
	assert.Nil(t, rec, "no record on rejection")
	assert.Equal(t, int64(0), calls.Load(), "rejection must happen before any generator runs")
}

// TestBuild_IgnoreUnknown verifies that the ignore policy drops unknown keys
// and still produces a schema-exact record.
func TestBuild_IgnoreUnknown(t *testing.T) {
	t.Parallel()

	b, err := fixture.New(
		fixture.Schema{"username": constGen("u")},
		fixture.WithUnknownFields(fixture.IgnoreUnknown),
	)
	require.NoError(t, err)

	rec, err := b.Build(fixture.Overrides{"badKey": 1, "username": "alice"})
	require.NoError(t, err)
	assert.Equal(t, fixture.Record{"username": "alice"}, rec, "unknown key must be dropped, known override kept")
}

// TestBuild_PassThroughUnknown verifies that the pass-through policy copies
// unknown keys into the record verbatim alongside every schema field.
func TestBuild_PassThroughUnknown(t *testing.T) {
	t.Parallel()

	b, err := fixture.New(
		fixture.Schema{"username": constGen("u")},
		fixture.WithUnknownFields(fixture.PassThroughUnknown),
	)
	require.NoError(t, err)

	rec, err := b.Build(fixture.Overrides{"extra": 99})
	require.NoError(t, err)
	assert.Equal(t, fixture.Record{"username": "u", "extra": 99}, rec, "extra key must ride along verbatim")
}

// TestBuild_FailurePropagation verifies that a failing generator aborts the
// build with ErrGeneratorFailed naming the field, keeps the cause reachable,
// and returns no partial record.
func TestBuild_FailurePropagation(t *testing.T) {
	t.Parallel()

	cause := errors.New("upstream exhausted")
	b, err := fixture.New(fixture.Schema{
		"ok":   constGen(1),
		"sick": failingGen(cause),
	})
	require.NoError(t, err)

	rec, err := b.Build(nil)
	assert.ErrorIs(t, err, fixture.ErrGeneratorFailed, "failure must surface the sentinel")
	assert.ErrorIs(t, err, cause, "the cause must stay reachable via errors.Is")
	assert.Contains(t, err.Error(), `"sick"`, "error must name the failing field")
	assert.Nil(t, rec, "no partial record on failure")
}

// TestBuild_LoginFormScenario runs the canonical scenario: a username and
// password schema built with and without a password override.
func TestBuild_LoginFormScenario(t *testing.T) {
	t.Parallel()

	b, err := fixture.New(fixture.Schema{
		"username": randWordGen(),
		"password": randWordGen(),
	})
	require.NoError(t, err)

	// Fully generated: both fields present and non-empty strings.
	rec, err := b.Build(nil)
	require.NoError(t, err)
	username, err := rec.String("username")
	require.NoError(t, err)
	password, err := rec.String("password")
	require.NoError(t, err)
	assert.NotEmpty(t, username)
	assert.NotEmpty(t, password)

	// Pinned password: exact override, fresh username.
	rec, err = b.Build(fixture.Overrides{"password": "abc"})
	require.NoError(t, err)
	assert.Equal(t, "abc", rec["password"])
	username, err = rec.String("username")
	require.NoError(t, err)
	assert.NotEmpty(t, username)
}

// TestBuildMany verifies count validation, independence of the produced
// records, and uniform override application.
func TestBuildMany(t *testing.T) {
	t.Parallel()

	b, err := fixture.New(fixture.Schema{
		"word": randWordGen(),
		"role": constGen("tester"),
	})
	require.NoError(t, err)

	// Negative count → ErrBadCount.
	_, err = b.BuildMany(-1, nil)
	assert.ErrorIs(t, err, fixture.ErrBadCount, "negative count must be rejected")

	// Zero count → empty slice, no error.
	recs, err := b.BuildMany(0, nil)
	require.NoError(t, err)
	assert.Empty(t, recs)

	// Three records: override uniform, random field fresh per record.
	recs, err = b.BuildMany(3, fixture.Overrides{"role": "admin"})
	require.NoError(t, err)
	require.Len(t, recs, 3)
	seen := make(map[any]bool, 3)
	for _, rec := range recs {
		assert.Equal(t, "admin", rec["role"])
		seen[rec["word"]] = true
	}
	assert.Greater(t, len(seen), 1, "records must not share one frozen draw")
}

// TestBuilder_Fields verifies the sorted deterministic view and that the
// returned slice is a defensive copy.
func TestBuilder_Fields(t *testing.T) {
	t.Parallel()

	b, err := fixture.New(fixture.Schema{
		"zeta":  constGen(1),
		"alpha": constGen(2),
		"mid":   constGen(3),
	})
	require.NoError(t, err)

	fields := b.Fields()
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, fields, "fields must be sorted")

	fields[0] = "mutated"
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, b.Fields(), "Fields must return a copy")
}

// TestBuild_OneShotHelper verifies the package-level Build wrapper end to end.
func TestBuild_OneShotHelper(t *testing.T) {
	t.Parallel()

	rec, err := fixture.Build(
		fixture.Schema{"username": constGen("u"), "password": constGen("p")},
		fixture.Overrides{"password": "abc"},
	)
	require.NoError(t, err)
	assert.Equal(t, fixture.Record{"username": "u", "password": "abc"}, rec)

	// Schema validation errors pass straight through the helper.
	_, err = fixture.Build(fixture.Schema{"broken": nil}, nil)
	assert.ErrorIs(t, err, fixture.ErrNilGenerator)
}

// TestBuilder_SchemaCopy verifies that mutating the caller's schema map
// after New does not affect the Builder.
func TestBuilder_SchemaCopy(t *testing.T) {
	t.Parallel()

	schema := fixture.Schema{"name": constGen("fixed")}
	b, err := fixture.New(schema)
	require.NoError(t, err)

	// Sabotage the caller's map; the builder must keep its private copy.
	schema["name"] = failingGen(errors.New("sabotaged"))
	schema["injected"] = constGen("rogue")

	rec, err := b.Build(nil)
	require.NoError(t, err, "builder must not observe post-New schema mutation")
	assert.Equal(t, fixture.Record{"name": "fixed"}, rec)
}
