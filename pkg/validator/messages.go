package validator

import (
	"fmt"
	"strings"
)

// Message catalog. Static messages are plain constants; parameterised ones are
// pure generator functions of the rule's own parameters, so identical rules
// always produce identical text. Tests assert against these exact strings.
const (
	MsgRequired    = "field is required"
	MsgEmail       = "must be a valid email address"
	MsgPhone       = "must be a valid phone number in international format"
	MsgURL         = "must be a valid URL"
	MsgName        = "must contain only letters, spaces, apostrophes, and hyphens"
	MsgPassword    = "must be at least 8 characters with an uppercase letter, a lowercase letter, a digit, and a special character"
	MsgAcceptTerms = "must be accepted"
)

// MinLengthMessage returns the message for a minimum string length violation.
func MinLengthMessage(min int) string {
	return fmt.Sprintf("must be at least %d characters long", min)
}

// MaxLengthMessage returns the message for a maximum string length violation.
func MaxLengthMessage(max int) string {
	return fmt.Sprintf("must be at most %d characters long", max)
}

// MinMessage returns the message for a numeric lower-bound violation.
func MinMessage(min any) string {
	return fmt.Sprintf("must be at least %v", min)
}

// MaxMessage returns the message for a numeric upper-bound violation.
func MaxMessage(max any) string {
	return fmt.Sprintf("must be at most %v", max)
}

// OneOfMessage returns the message for an enum membership violation.
func OneOfMessage(allowed []string) string {
	return "must be one of: " + strings.Join(allowed, ", ")
}

// UsernameMessage returns the message for an invalid username.
func UsernameMessage(minLen, maxLen int) string {
	return fmt.Sprintf("username must be %d-%d characters long and contain only letters, numbers, underscores, and hyphens", minLen, maxLen)
}
