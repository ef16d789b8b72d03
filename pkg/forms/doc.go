// Package forms defines the application's form shapes as typed structs with
// process-wide immutable schemas: registration, login, contact, profile
// update, password change, and search.
//
// Each schema is built once at package init from validator rules plus any
// cross-field refinements (password confirmation, new-password-differs).
// The FromValues decoders turn submitted url.Values into the typed structs,
// so HTTP handlers can decode, validate, and report field-keyed errors in
// three lines.
package forms
