package shared

import "strings"

// htmlEscaper replaces the HTML-significant characters before a value is stored.
// strings.Replacer never rescans its own output, so an '&' introduced by one
// escape is left alone by the rest.
var htmlEscaper = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// Sanitize escapes < > " ' / and trims surrounding whitespace.
func Sanitize(input string) string {
	return strings.TrimSpace(htmlEscaper.Replace(input))
}
