package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

func TestEscapeHTML(t *testing.T) {
	t.Run("escapes all six characters", func(t *testing.T) {
		assert.Equal(t,
			"&amp;&lt;&gt;&quot;&#x27;&#x2F;",
			sanitizer.EscapeHTML(`&<>"'/`),
		)
	})

	t.Run("leaves other characters untouched", func(t *testing.T) {
		input := "plain text with unicode: héllo wörld 123"
		assert.Equal(t, input, sanitizer.EscapeHTML(input))
	})

	t.Run("escapes script tags into inert text", func(t *testing.T) {
		assert.Equal(t,
			"&lt;script&gt;alert(&#x27;xss&#x27;)&lt;&#x2F;script&gt;",
			sanitizer.EscapeHTML("<script>alert('xss')</script>"),
		)
	})

	t.Run("is idempotent only on entity-free input", func(t *testing.T) {
		clean := "nothing to escape here"
		assert.Equal(t, sanitizer.EscapeHTML(clean), sanitizer.EscapeHTML(sanitizer.EscapeHTML(clean)))
	})

	t.Run("double-escapes input that already contains an ampersand", func(t *testing.T) {
		once := sanitizer.EscapeHTML("&amp;")
		assert.Equal(t, "&amp;amp;", once)

		twice := sanitizer.EscapeHTML(once)
		assert.NotEqual(t, once, twice)
		assert.Equal(t, "&amp;amp;amp;", twice)
	})
}
