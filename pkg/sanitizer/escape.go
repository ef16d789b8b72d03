package sanitizer

import "strings"

// htmlEscaper maps the six characters that matter for HTML injection to
// their entities. strings.Replacer performs a single left-to-right pass and
// never rescans its own output, so EscapeHTML is intentionally NOT
// idempotent: "&amp;" in the input becomes "&amp;amp;". Escape once, at the
// output boundary.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// EscapeHTML replaces & < > " ' / with their HTML entities, leaving every
// other character untouched.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
