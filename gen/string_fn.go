// Package gen provides lorem-text generator constructors built on the
// canonical vocabulary in constants.go.
package gen

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/fixgen/fixture"
)

// Word returns a Generator yielding one lowercase word from the canonical
// vocabulary. Never fails.
// Complexity: O(1) time per draw.
func Word() fixture.Generator {
	return func(rng *rand.Rand) (any, error) {
		return pick(rng, loremWords), nil
	}
}

// Sentence returns a Generator yielding a capitalized, period-terminated
// sentence of minWords..maxWords words (bounds inclusive).
// Panics if minWords < 1 or maxWords < minWords.
// Complexity: O(W) time per draw, W = drawn word count.
func Sentence(minWords, maxWords int) fixture.Generator {
	if minWords < 1 || maxWords < minWords {
		panic(fmt.Sprintf("gen: Sentence: require 1 ≤ min ≤ max, got min=%d, max=%d", minWords, maxWords))
	}
	return func(rng *rand.Rand) (any, error) {
		// Draw the word count first, then the words.
		count := minWords
		if maxWords > minWords {
			count += intn(rng, maxWords-minWords+1)
		}
		words := make([]string, count)
		for i := range words {
			words[i] = pick(rng, loremWords)
		}

		s := strings.Join(words, " ")
		// Capitalize the first letter; vocabulary is pure ASCII lowercase.
		s = strings.ToUpper(s[:1]) + s[1:]

		return s + ".", nil
	}
}
