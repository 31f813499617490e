// Package gen provides ready-made generator constructors compatible with
// fixture.Generator, covering the values test fixtures most often need.
//
// The package offers the following key components:
//
//   - Primitive values (number_fn.go):
//     – Const:        fixed value of any type, never fails.
//     – OneOf:        uniform pick from an explicit choice list.
//     – IntRange:     uniform int in [min, max] inclusive.
//     – Float64Range: uniform float64 in [min, max).
//     – Bool:         fair coin.
//   - Text (string_fn.go):
//     – Word:         one lowercase lorem word.
//     – Sentence:     capitalized lorem sentence of min..max words.
//   - Personas (persona_fn.go):
//     – Username, Password, Email, FirstName, LastName, FullName.
//   - Instants (time_fn.go):
//     – TimeBetween:  uniform time.Time in [from, to).
//   - Identifiers (id_fn.go):
//     – UUID:         RFC 4122 version-4 UUID string.
//     – HexToken:     lowercase hex string of n random bytes.
//
// Contracts shared by every constructor:
//
//   - Constructors VALIDATE and PANIC on meaningless parameters
//     (e.g. IntRange(5, 4), Password(0)); the returned closure never
//     panics at runtime.
//   - A nil *rand.Rand makes the closure draw from the process-global
//     locked source: fresh data on every call, safe concurrently.
//     A non-nil RNG yields a deterministic stream — same seed, same values.
//   - Closures return an error only when value synthesis genuinely fails
//     (UUID reader errors); all other generators always succeed.
//
// See individual function documentation for panic conditions and
// performance notes.
package gen
