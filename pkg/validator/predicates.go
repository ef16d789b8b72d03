package validator

import (
	"net/mail"
	"net/url"
	"strings"
)

// Standalone format predicates. Each is a pure, total function of its input
// and is usable without the rule or schema machinery, e.g. for per-keystroke
// feedback where the message is rendered elsewhere. The rule constructors in
// format_rules.go delegate to these, so both entry points always agree.

// IsValidEmail reports whether value is a plausible email address. It parses
// with net/mail and then applies the stricter checks typical web forms need:
// a non-empty local part and a dotted domain with no empty labels.
func IsValidEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 {
		return false
	}

	localPart := parts[0]
	domain := parts[1]

	if localPart == "" {
		return false
	}

	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}

	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// IsValidPhone reports whether value is a valid international phone number.
// Spaces and dashes are stripped before matching the E.164-style pattern.
func IsValidPhone(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	cleaned := strings.ReplaceAll(strings.ReplaceAll(value, " ", ""), "-", "")
	if len(cleaned) < 7 {
		return false
	}

	return phoneRegex.MatchString(cleaned)
}

// IsValidURL reports whether value is an absolute URL with a scheme and host.
func IsValidURL(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}

	return u.Scheme != "" && u.Host != ""
}

// IsValidUsername reports whether value is a 3-20 character username made of
// letters, digits, underscores, and hyphens.
func IsValidUsername(value string) bool {
	if len(value) < 3 || len(value) > 20 {
		return false
	}
	return usernameRegex.MatchString(value)
}

// IsValidPassword reports whether value satisfies the strict password policy:
// at least 8 characters containing an uppercase letter, a lowercase letter, a
// digit, and a special character from the fixed set.
func IsValidPassword(value string) bool {
	if len(value) < 8 {
		return false
	}

	return uppercaseRegex.MatchString(value) &&
		lowercaseRegex.MatchString(value) &&
		digitRegex.MatchString(value) &&
		specialCharRegex.MatchString(value)
}
