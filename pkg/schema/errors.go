package schema

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Errors maps field names to their error messages. It is based on url.Values
// to leverage built-in string slice handling, and implements the error
// interface so Validate can return it directly.
type Errors url.Values

// NewErrors creates an empty error set.
func NewErrors() Errors {
	return make(Errors)
}

// Error implements the error interface with a deterministic, human-readable
// summary of the failing fields.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	fields := e.Fields()
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e.Get(field)))
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends an error message for a field.
func (e Errors) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first error message for a field, or "" if the field passed.
func (e Errors) Get(field string) string {
	return url.Values(e).Get(field)
}

// All returns every error message recorded for a field.
func (e Errors) All(field string) []string {
	return e[field]
}

// Has reports whether a field has any errors.
func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

// Fields returns the names of all failing fields in sorted order.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// IsEmpty reports whether the set contains no errors.
func (e Errors) IsEmpty() bool {
	return len(e) == 0
}

// Extract returns the Errors wrapped in err, or nil if err does not carry
// field-keyed validation errors.
func Extract(err error) Errors {
	if err == nil {
		return nil
	}

	var verrs Errors
	if errors.As(err, &verrs) {
		return verrs
	}

	return nil
}
