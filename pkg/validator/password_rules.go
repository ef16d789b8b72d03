package validator

// StrongPassword validates the strict password policy: minimum 8 characters
// with at least one uppercase letter, one lowercase letter, one digit, and
// one special character from the fixed set in patterns.go.
func StrongPassword(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidPassword(value)
		},
		Error: FieldError{
			Field:   field,
			Message: MsgPassword,
		},
	}
}

// PasswordStrength scores a password from 0 to 4. One point is awarded for
// each of: length >= 8, length >= 12, mixed case, a digit, and a special
// character. Five conditions can fire, so the raw score is clamped at 4.
//
// The scorer is independent of IsValidPassword: a long mixed-case password
// can score well without satisfying the strict policy. The reverse cannot
// happen, since the strict policy implies four of the five conditions.
func PasswordStrength(password string) int {
	score := 0

	if len(password) >= 8 {
		score++
	}
	if len(password) >= 12 {
		score++
	}
	if lowercaseRegex.MatchString(password) && uppercaseRegex.MatchString(password) {
		score++
	}
	if digitRegex.MatchString(password) {
		score++
	}
	if specialCharRegex.MatchString(password) {
		score++
	}

	if score > 4 {
		score = 4
	}
	return score
}
