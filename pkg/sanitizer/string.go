package sanitizer

import (
	"path/filepath"
	"strings"
	"unicode"
)

// RemoveNullBytes removes null bytes that could cause issues downstream.
func RemoveNullBytes(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

// RemoveControlChars removes control characters except tab, newline, and
// carriage return.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// LimitLength truncates input to at most maxLength runes.
func LimitLength(s string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}

	return string(runes[:maxLength])
}

// TrimInput trims surrounding whitespace and strips null bytes and control
// characters. The usual first step before validating free-text input.
func TrimInput(s string) string {
	return Apply(s, RemoveNullBytes, RemoveControlChars, strings.TrimSpace)
}

// SanitizeFilename strips any path components and dangerous characters from
// a filename to prevent path traversal. Returns "unnamed" for empty or
// special directory references.
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = RemoveNullBytes(filename)

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}

	return filename
}
