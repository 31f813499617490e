// Package gen provides time-instant generator constructors.
package gen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/fixgen/fixture"
)

// TimeBetween returns a Generator yielding a uniform time.Time in
// [from, to). The result carries from's location. Panics if to is
// before from; from == to degenerates to the constant from.
// Complexity: O(1) time per draw.
func TimeBetween(from, to time.Time) fixture.Generator {
	if to.Before(from) {
		panic(fmt.Sprintf("gen: TimeBetween: require from ≤ to, got from=%s, to=%s",
			from.Format(time.RFC3339), to.Format(time.RFC3339)))
	}
	span := to.Sub(from)

	return func(rng *rand.Rand) (any, error) {
		if span == 0 {
			// Degenerate interval: constant.
			return from, nil
		}

		return from.Add(time.Duration(int63n(rng, int64(span)))), nil
	}
}
