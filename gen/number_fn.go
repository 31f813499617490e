// Package gen provides primitive-value generator constructors:
// fixed values, uniform picks, integer/float ranges and booleans.
package gen

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/fixgen/fixture"
)

// Const returns a Generator that always yields v. Never fails.
// The override-free way to pin a field at construction time.
// Complexity: O(1) time, O(1) space per draw.
func Const[T any](v T) fixture.Generator {
	return func(_ *rand.Rand) (any, error) {
		return v, nil
	}
}

// OneOf returns a Generator picking uniformly from choices.
// Panics if choices is empty.
// Complexity: O(1) time per draw.
func OneOf[T any](choices ...T) fixture.Generator {
	if len(choices) == 0 {
		panic("gen: OneOf() requires at least one choice")
	}
	return func(rng *rand.Rand) (any, error) {
		return choices[intn(rng, len(choices))], nil
	}
}

// IntRange returns a Generator yielding a uniform int in [min, max]
// inclusive. Panics if max < min.
// Complexity: O(1) time per draw.
func IntRange(min, max int) fixture.Generator {
	if max < min {
		panic(fmt.Sprintf("gen: IntRange: require min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) (any, error) {
		if max == min {
			// Degenerate interval: constant.
			return min, nil
		}

		return min + intn(rng, max-min+1), nil
	}
}

// Float64Range returns a Generator yielding a uniform float64 in [min, max).
// Panics if max < min.
// Complexity: O(1) time per draw.
func Float64Range(min, max float64) fixture.Generator {
	if max < min {
		panic(fmt.Sprintf("gen: Float64Range: require min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) (any, error) {
		if max == min {
			// Degenerate interval: constant.
			return min, nil
		}

		return min + float64v(rng)*(max-min), nil
	}
}

// Bool returns a Generator yielding a fair coin flip. Never fails.
// Complexity: O(1) time per draw.
func Bool() fixture.Generator {
	return func(rng *rand.Rand) (any, error) {
		return intn(rng, 2) == 1, nil
	}
}
