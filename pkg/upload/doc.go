// Package upload validates uploaded files before a handler accepts them:
// size limit, MIME type allow-list, and extension allow-list, checked in that
// order with the first failure winning.
//
// MIME types are detected from file content rather than the declared header
// where possible, so renaming a file does not bypass the type check.
// StoredName produces collision-free names for persisting accepted uploads.
package upload
