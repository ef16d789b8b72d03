package validator

// OneOf validates that a string is a member of a fixed closed set.
func OneOf(field, value string, allowed []string) Rule {
	return Rule{
		Check: func() bool {
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		},
		Error: FieldError{
			Field:   field,
			Message: OneOfMessage(allowed),
		},
	}
}

// MustAccept validates that a boolean is exactly true. Used for consent
// checkboxes where an unchecked box must block submission.
func MustAccept(field string, value bool) Rule {
	return Rule{
		Check: func() bool {
			return value
		},
		Error: FieldError{
			Field:   field,
			Message: MsgAcceptTerms,
		},
	}
}
