// Package gen provides identifier generator constructors: UUIDs and
// opaque hexadecimal tokens.
package gen

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/fixgen/fixture"
)

// UUID returns a Generator yielding an RFC 4122 version-4 UUID string.
// With a nil rng the draw comes from crypto-quality randomness via
// uuid.NewRandom; with a seeded rng the UUID bytes are read from that
// stream (rand.Rand implements io.Reader), so seeded builds reproduce
// identical IDs. A reader failure surfaces as the generator's error and
// becomes fixture.ErrGeneratorFailed at build time.
// Complexity: O(1) time per draw.
func UUID() fixture.Generator {
	return func(rng *rand.Rand) (any, error) {
		var (
			id  uuid.UUID
			err error
		)
		if rng == nil {
			id, err = uuid.NewRandom()
		} else {
			id, err = uuid.NewRandomFromReader(rng)
		}
		if err != nil {
			return nil, fmt.Errorf("gen: UUID: %w", err)
		}

		return id.String(), nil
	}
}

// HexToken returns a Generator yielding a lowercase hexadecimal string of
// nbytes random bytes (2*nbytes characters). Never fails.
// Panics if nbytes < 1.
// Complexity: O(nbytes) time per draw.
func HexToken(nbytes int) fixture.Generator {
	if nbytes < 1 {
		panic(fmt.Sprintf("gen: HexToken: nbytes must be ≥ 1, got %d", nbytes))
	}
	return func(rng *rand.Rand) (any, error) {
		var sb strings.Builder
		sb.Grow(2 * nbytes)
		for i := 0; i < nbytes; i++ {
			b := intn(rng, 256) // one uniform byte
			sb.WriteByte(hexDigits[b>>4])
			sb.WriteByte(hexDigits[b&0x0f])
		}

		return sb.String(), nil
	}
}
