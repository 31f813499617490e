// Package fixgen is your in-memory toolkit for producing realistic but
// irrelevant test data — fixed schemas, pluggable generators, precise
// per-field overrides.
//
// 🚀 What is fixgen?
//
//	A small, deterministic-when-you-want-it library that brings together:
//		• Fixture Builder: declare a schema of named fields once, build fresh records on demand
//		• Overrides: pin exactly the fields a test's correctness depends on, randomize the rest
//		• Generators: usernames, passwords, emails, names, words, numbers, times, UUIDs
//		• Policies: reject, ignore, or pass through override keys unknown to the schema
//		• Seeding: WithSeed/WithRand freeze every random draw for golden tests
//
// ✨ Why choose fixgen?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – total records, exact override precedence, sentinel errors
//   - Pure Go – no cgo, no code generation, no reflection in the hot path
//   - Extensible – any func(*rand.Rand) (any, error) is a generator
//
// Under the hood, everything is organized under two subpackages:
//
//	fixture/ — Schema, Builder, Overrides, Record, unknown-field policies & errors
//	gen/     — generator constructors compatible with fixture.Generator
//
// Quick example:
//
//	loginForm, _ := fixture.New(fixture.Schema{
//		"username": gen.Username(),
//		"password": gen.Password(16),
//	})
//	rec, _ := loginForm.Build(fixture.Overrides{"password": "abc"})
//	// rec["username"] is random, rec["password"] == "abc"
//
// Dive into the per-package documentation for full contracts, error
// taxonomy, determinism rules and runnable examples.
//
//	go get github.com/katalvlaran/fixgen
package fixgen
