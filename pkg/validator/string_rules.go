package validator

import (
	"regexp"
	"strings"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: FieldError{
			Field:   field,
			Message: MsgRequired,
		},
	}
}

// MinLen validates that a string is at least min bytes long.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: FieldError{
			Field:   field,
			Message: MinLengthMessage(min),
		},
	}
}

// MaxLen validates that a string is at most max bytes long.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: FieldError{
			Field:   field,
			Message: MaxLengthMessage(max),
		},
	}
}

// Matches validates a string against an arbitrary pattern with a caller-chosen
// message. The named format rules cover the common cases; this is the escape
// hatch for one-off patterns.
func Matches(field, value string, pattern *regexp.Regexp, message string) Rule {
	return Rule{
		Check: func() bool {
			return pattern.MatchString(value)
		},
		Error: FieldError{
			Field:   field,
			Message: message,
		},
	}
}
