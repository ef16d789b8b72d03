package schema

import (
	"fmt"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Field binds a field name to the ordered rules applied to one value of the
// form. Rules is called with the whole form so each rule closes over the
// field's current value.
type Field[T any] struct {
	Name  string
	Rules func(form T) []validator.Rule
}

// F is a convenience constructor for Field.
func F[T any](name string, rules func(form T) []validator.Rule) Field[T] {
	return Field[T]{Name: name, Rules: rules}
}

type refinement[T any] struct {
	field   string
	message string
	check   func(form T) bool
}

// Schema describes one form shape: an ordered list of per-field rule sets
// plus cross-field refinements. Schemas are built once at startup and are
// immutable afterwards, so sharing them across goroutines needs no locking.
type Schema[T any] struct {
	fields      []Field[T]
	refinements []refinement[T]
}

// New builds a schema from the given fields. Field order is preserved and
// determines evaluation order.
func New[T any](fields ...Field[T]) *Schema[T] {
	return &Schema[T]{fields: fields}
}

// Refine attaches a cross-field predicate whose failure message is reported
// against the named target field. Refinements run only after every per-field
// rule set has passed, and every refinement runs even if an earlier one
// failed.
//
// Referencing a field the schema does not declare is a schema authoring bug,
// not a runtime data error, so Refine panics instead of failing soft.
func (s *Schema[T]) Refine(field, message string, check func(form T) bool) *Schema[T] {
	if !s.hasField(field) {
		panic(fmt.Sprintf("schema: refinement targets unknown field %q", field))
	}

	s.refinements = append(s.refinements, refinement[T]{
		field:   field,
		message: message,
		check:   check,
	})
	return s
}

func (s *Schema[T]) hasField(name string) bool {
	for _, f := range s.fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// Validate checks the form against the schema. For each field the rules run
// in declared order and only the FIRST failing rule's message is recorded;
// one field failing never blocks evaluation of the others. Refinements run
// only when all fields passed. Returns nil on success, or an Errors value
// keyed by field name. Validate never panics on input data.
func (s *Schema[T]) Validate(form T) error {
	errs := NewErrors()

	for _, field := range s.fields {
		for _, rule := range field.Rules(form) {
			if !rule.Check() {
				errs.Add(field.Name, rule.Error.Message)
				break
			}
		}
	}

	if !errs.IsEmpty() {
		return errs
	}

	for _, ref := range s.refinements {
		if !ref.check(form) {
			errs.Add(ref.field, ref.message)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}
