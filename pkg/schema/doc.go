// Package schema composes validator rules into object schemas describing
// whole form shapes: an ordered set of per-field rule lists plus cross-field
// refinements evaluated after all fields pass.
//
// Validation is short-circuit per field (first failing rule wins for that
// field) while fields themselves are independent, so a single submission
// surfaces every invalid field at once. Failures come back as an Errors
// multimap keyed by field name; success returns nil and the caller keeps
// working with the typed form value it passed in.
//
// Schemas are data: build them once with New and Refine at package init and
// treat them as process-wide immutable constants.
package schema
