// Package sanitizer provides string cleanup helpers for untrusted input:
// single-pass HTML entity escaping, null byte and control character removal,
// length limiting, and filename sanitization, plus generic Apply/Compose
// helpers for building transform pipelines.
//
// EscapeHTML deliberately does not re-scan its output; escaping twice
// double-encodes. All functions are pure and goroutine-safe.
package sanitizer
