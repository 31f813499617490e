// Package fixture_test contains unit tests for the functional options,
// covering both config behavior and constructor panic conditions.
package fixture_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixgen/fixture"
)

// assertPanics fails the test unless fn panics.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic, got none", name)
		}
	}()
	fn()
}

// TestOptionConstructorPanics verifies that option constructors panic on
// meaningless inputs according to their documented contracts.
func TestOptionConstructorPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"WithRand_nil", func() { fixture.WithRand(nil) }},
		{"WithUnknownFields_negative", func() { fixture.WithUnknownFields(fixture.UnknownFieldPolicy(-1)) }},
		{"WithUnknownFields_pastRange", func() { fixture.WithUnknownFields(fixture.UnknownFieldPolicy(99)) }},
	}

	for _, tc := range tests {
		tc := tc // capture range variable
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assertPanics(t, tc.fn, tc.name)
		})
	}
}

// TestWithRand_MatchesWithSeed verifies that WithRand with a seeded stream
// behaves identically to WithSeed with the same seed.
func TestWithRand_MatchesWithSeed(t *testing.T) {
	t.Parallel()

	schema := fixture.Schema{"word": randWordGen()}

	viaSeed, err := fixture.New(schema, fixture.WithSeed(7))
	require.NoError(t, err)
	viaRand, err := fixture.New(schema, fixture.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)

	r1, err := viaSeed.Build(nil)
	require.NoError(t, err)
	r2, err := viaRand.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, r1, r2, "WithSeed(s) and WithRand(rand.New(NewSource(s))) must agree")
}

// TestOptions_LastWins verifies last-wins semantics of option application.
func TestOptions_LastWins(t *testing.T) {
	t.Parallel()

	// Reject is applied last and must win over the earlier pass-through.
	b, err := fixture.New(
		fixture.Schema{"name": constGen("n")},
		fixture.WithUnknownFields(fixture.PassThroughUnknown),
		fixture.WithUnknownFields(fixture.RejectUnknown),
	)
	require.NoError(t, err)

	_, err = b.Build(fixture.Overrides{"ghost": 1})
	assert.ErrorIs(t, err, fixture.ErrUnknownField, "last policy option must win")
}

// TestUnknownFieldPolicy_String covers the policy name rendering.
func TestUnknownFieldPolicy_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "RejectUnknown", fixture.RejectUnknown.String())
	assert.Equal(t, "IgnoreUnknown", fixture.IgnoreUnknown.String())
	assert.Equal(t, "PassThroughUnknown", fixture.PassThroughUnknown.String())
	assert.Equal(t, "UnknownFieldPolicy(invalid)", fixture.UnknownFieldPolicy(99).String())
}
