package validator

// ValidEmail validates that a string is a well-formed email address.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidEmail(value)
		},
		Error: FieldError{
			Field:   field,
			Message: MsgEmail,
		},
	}
}

// ValidPhone validates that a string is an international phone number.
// Accepts formats like +1234567890 (E.164 format).
func ValidPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidPhone(value)
		},
		Error: FieldError{
			Field:   field,
			Message: MsgPhone,
		},
	}
}

// ValidURL validates that a string is an absolute URL with scheme and host.
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidURL(value)
		},
		Error: FieldError{
			Field:   field,
			Message: MsgURL,
		},
	}
}

// ValidUsername validates that a string is a username of the given length
// containing only letters, numbers, underscores, and hyphens.
func ValidUsername(field, value string, minLen, maxLen int) Rule {
	return Rule{
		Check: func() bool {
			if len(value) < minLen || len(value) > maxLen {
				return false
			}
			return usernameRegex.MatchString(value)
		},
		Error: FieldError{
			Field:   field,
			Message: UsernameMessage(minLen, maxLen),
		},
	}
}

// ValidName validates that a string looks like a person's name: letters,
// spaces, apostrophes, and hyphens only. Length bounds are separate rules so
// each violation keeps its own message.
func ValidName(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return nameRegex.MatchString(value)
		},
		Error: FieldError{
			Field:   field,
			Message: MsgName,
		},
	}
}
