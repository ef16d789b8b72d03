package validator

import "regexp"

// Central pattern catalog. All rule constructors and standalone predicates
// share these compiled expressions, so the same input always gets the same
// verdict regardless of which entry point checked it.
var (
	// International phone numbers, E.164 style with optional plus prefix.
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	// Usernames: letters, digits, underscores, and hyphens.
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

	// Person names: letters, spaces, apostrophes, and hyphens.
	nameRegex = regexp.MustCompile(`^[a-zA-Z' -]+$`)

	// Password character classes. The special set is fixed; the strength
	// scorer and the strict password check both rely on the same set.
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?~` + "`" + `]`)
)
