// Package validator provides declarative, composable validation rules for
// form input: string length and format checks, numeric bounds, enum
// membership, consent booleans, and password policy.
//
// Every exported rule constructor returns an immutable Rule value pairing a
// Check function with the exact error reported on failure. Rules carry no
// hidden state, so the package is stateless and goroutine-safe. The Apply
// helper evaluates a batch of rules and aggregates every failure into a
// FieldErrors value that implements the error interface; the schema package
// layers per-field first-failure semantics on top.
//
// Messages come from a fixed catalog (messages.go): static strings for
// parameter-free checks and pure generator functions for parameterised ones,
// so the same rule always produces byte-identical text.
//
// The standalone Is* predicates mirror the format rules as plain boolean
// functions for callers that render messages themselves, such as live
// per-keystroke feedback. PasswordStrength provides a 0-4 quality score
// independent of the strict policy check.
package validator
