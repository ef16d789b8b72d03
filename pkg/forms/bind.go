package forms

import (
	"net/url"
	"strconv"
	"strings"
)

// Explicit decoders from submitted form data into the typed form structs.
// Field names match the wire names the schemas report errors against. Unknown
// form fields are simply never read, which keeps input handling open-world.

// RegistrationFromValues decodes a registration submission.
func RegistrationFromValues(v url.Values) Registration {
	return Registration{
		FirstName:       strings.TrimSpace(v.Get("firstName")),
		LastName:        strings.TrimSpace(v.Get("lastName")),
		Username:        strings.TrimSpace(v.Get("username")),
		Email:           strings.TrimSpace(v.Get("email")),
		Password:        v.Get("password"),
		ConfirmPassword: v.Get("confirmPassword"),
		Phone:           strings.TrimSpace(v.Get("phone")),
		AcceptTerms:     boolValue(v, "acceptTerms"),
	}
}

// LoginFromValues decodes a sign-in submission.
func LoginFromValues(v url.Values) Login {
	return Login{
		Email:    strings.TrimSpace(v.Get("email")),
		Password: v.Get("password"),
		Remember: boolValue(v, "remember"),
	}
}

// ContactFromValues decodes a contact form submission.
func ContactFromValues(v url.Values) Contact {
	return Contact{
		Name:    strings.TrimSpace(v.Get("name")),
		Email:   strings.TrimSpace(v.Get("email")),
		Subject: strings.TrimSpace(v.Get("subject")),
		Message: strings.TrimSpace(v.Get("message")),
	}
}

// ProfileUpdateFromValues decodes a profile edit submission.
func ProfileUpdateFromValues(v url.Values) ProfileUpdate {
	return ProfileUpdate{
		FirstName: strings.TrimSpace(v.Get("firstName")),
		LastName:  strings.TrimSpace(v.Get("lastName")),
		Phone:     strings.TrimSpace(v.Get("phone")),
		Website:   strings.TrimSpace(v.Get("website")),
		Bio:       strings.TrimSpace(v.Get("bio")),
	}
}

// PasswordChangeFromValues decodes a password rotation submission.
func PasswordChangeFromValues(v url.Values) PasswordChange {
	return PasswordChange{
		CurrentPassword:    v.Get("currentPassword"),
		NewPassword:        v.Get("newPassword"),
		ConfirmNewPassword: v.Get("confirmNewPassword"),
	}
}

// SearchFromValues decodes a search query. Absent pagination parameters get
// usable defaults; malformed numbers decode to values the schema rejects.
func SearchFromValues(v url.Values) Search {
	return Search{
		Query:  strings.TrimSpace(v.Get("query")),
		Page:   intValue(v, "page", 1),
		Limit:  intValue(v, "limit", 20),
		SortBy: stringValue(v, "sortBy", "relevance"),
	}
}

func boolValue(v url.Values, key string) bool {
	switch strings.ToLower(v.Get(key)) {
	case "1", "true", "on", "yes":
		return true
	default:
		return false
	}
}

func intValue(v url.Values, key string, def int) int {
	raw := v.Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

func stringValue(v url.Values, key, def string) string {
	if raw := v.Get(key); raw != "" {
		return raw
	}
	return def
}
