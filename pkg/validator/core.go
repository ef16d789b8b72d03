package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Numeric is the constraint used by the numeric rule helpers.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// FieldError describes a single failed check on a named field.
type FieldError struct {
	Field   string
	Message string
}

// FieldErrors is a collection of field errors that satisfies the error
// interface, so a validation pass can surface every failing field at once.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(fe))
	for _, err := range fe {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (fe FieldErrors) Has(field string) bool {
	for _, err := range fe {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (fe FieldErrors) Get(field string) []string {
	var messages []string
	for _, err := range fe {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (fe FieldErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range fe {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (fe FieldErrors) IsEmpty() bool {
	return len(fe) == 0
}

// Rule couples a boolean check with the error reported when the check fails.
// Rules are immutable values; constructing one performs no validation.
type Rule struct {
	Check func() bool
	Error FieldError
}

// Apply executes every rule and aggregates the failures. It never stops at
// the first failing rule; per-field short-circuit is the schema layer's job.
func Apply(rules ...Rule) error {
	var errs FieldErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// Extract returns the FieldErrors wrapped in err, or nil if err is not a
// validation error.
func Extract(err error) FieldErrors {
	if err == nil {
		return nil
	}

	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs
	}

	return nil
}

// IsValidationError reports whether err carries field-level validation errors.
func IsValidationError(err error) bool {
	var fieldErrs FieldErrors
	return errors.As(err, &fieldErrs)
}
