// Package gen provides persona generator constructors: usernames,
// passwords, emails and human names, drawn from the canonical tables
// in constants.go. These are the classic login-form fields — random
// enough to be obviously synthetic, regular enough to pass validation.
package gen

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/katalvlaran/fixgen/fixture"
)

// Username returns a Generator yielding handles of the form
// "<adjective>_<noun><00-99>", e.g. "brisk_otter42". Never fails.
// Always non-empty, lowercase, no spaces.
// Complexity: O(1) time per draw.
func Username() fixture.Generator {
	return func(rng *rand.Rand) (any, error) {
		adj := pick(rng, usernameAdjectives)
		noun := pick(rng, usernameNouns)
		suffix := intn(rng, usernameSuffixBound)

		return adj + "_" + noun + strconv.Itoa(suffix), nil
	}
}

// Password returns a Generator yielding a password of exactly length
// characters drawn uniformly from passwordAlphabet. Never fails.
// Panics if length < 1.
// Complexity: O(length) time per draw.
func Password(length int) fixture.Generator {
	if length < 1 {
		panic(fmt.Sprintf("gen: Password: length must be ≥ 1, got %d", length))
	}
	return func(rng *rand.Rand) (any, error) {
		var sb strings.Builder
		sb.Grow(length)
		for i := 0; i < length; i++ {
			sb.WriteByte(passwordAlphabet[intn(rng, len(passwordAlphabet))])
		}

		return sb.String(), nil
	}
}

// Email returns a Generator yielding "<first>.<last><00-99>@<domain>"
// with lowercase names and an RFC 2606 reserved domain, so generated
// addresses can never route anywhere real. Never fails.
// Complexity: O(1) time per draw.
func Email() fixture.Generator {
	return func(rng *rand.Rand) (any, error) {
		first := strings.ToLower(pick(rng, firstNames))
		last := strings.ToLower(pick(rng, lastNames))
		suffix := intn(rng, usernameSuffixBound)
		domain := pick(rng, emailDomains)

		return first + "." + last + strconv.Itoa(suffix) + "@" + domain, nil
	}
}

// FirstName returns a Generator yielding a given name from the canonical
// table. Never fails.
// Complexity: O(1) time per draw.
func FirstName() fixture.Generator {
	return func(rng *rand.Rand) (any, error) {
		return pick(rng, firstNames), nil
	}
}

// LastName returns a Generator yielding a family name from the canonical
// table. Never fails.
// Complexity: O(1) time per draw.
func LastName() fixture.Generator {
	return func(rng *rand.Rand) (any, error) {
		return pick(rng, lastNames), nil
	}
}

// FullName returns a Generator yielding "<First> <Last>" with independent
// uniform draws for each part. Never fails.
// Complexity: O(1) time per draw.
func FullName() fixture.Generator {
	return func(rng *rand.Rand) (any, error) {
		return pick(rng, firstNames) + " " + pick(rng, lastNames), nil
	}
}
