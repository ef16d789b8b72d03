package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

func TestRemoveNullBytes(t *testing.T) {
	assert.Equal(t, "hello", sanitizer.RemoveNullBytes("he\x00llo\x00"))
	assert.Equal(t, "clean", sanitizer.RemoveNullBytes("clean"))
}

func TestRemoveControlChars(t *testing.T) {
	t.Run("strips control characters", func(t *testing.T) {
		assert.Equal(t, "ab", sanitizer.RemoveControlChars("a\x01\x02b"))
	})

	t.Run("keeps tab, newline, carriage return", func(t *testing.T) {
		input := "line1\nline2\tcol\r\n"
		assert.Equal(t, input, sanitizer.RemoveControlChars(input))
	})
}

func TestLimitLength(t *testing.T) {
	t.Run("truncates by runes, not bytes", func(t *testing.T) {
		assert.Equal(t, "hél", sanitizer.LimitLength("héllo", 3))
	})

	t.Run("returns short input unchanged", func(t *testing.T) {
		assert.Equal(t, "hi", sanitizer.LimitLength("hi", 10))
	})

	t.Run("non-positive limit yields empty string", func(t *testing.T) {
		assert.Equal(t, "", sanitizer.LimitLength("anything", 0))
	})
}

func TestTrimInput(t *testing.T) {
	assert.Equal(t, "hello", sanitizer.TrimInput("  he\x00llo \x01 "))
}

func TestSanitizeFilename(t *testing.T) {
	t.Run("strips path traversal", func(t *testing.T) {
		assert.Equal(t, "passwd", sanitizer.SanitizeFilename("../../../etc/passwd"))
	})

	t.Run("strips windows paths", func(t *testing.T) {
		assert.Equal(t, "file.txt", sanitizer.SanitizeFilename(`C:\Windows\file.txt`))
	})

	t.Run("falls back for special references", func(t *testing.T) {
		assert.Equal(t, "unnamed", sanitizer.SanitizeFilename(""))
		assert.Equal(t, "unnamed", sanitizer.SanitizeFilename(".."))
	})
}

func TestApplyCompose(t *testing.T) {
	t.Run("Apply runs transforms in order", func(t *testing.T) {
		got := sanitizer.Apply("  Hello  ", strings.TrimSpace, strings.ToLower)
		assert.Equal(t, "hello", got)
	})

	t.Run("Compose builds a reusable pipeline", func(t *testing.T) {
		clean := sanitizer.Compose(strings.TrimSpace, strings.ToUpper)
		assert.Equal(t, "ONE", clean(" one "))
		assert.Equal(t, "TWO", clean("two"))
	})
}
