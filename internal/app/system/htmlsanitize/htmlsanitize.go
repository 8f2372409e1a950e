// internal/app/system/htmlsanitize/htmlsanitize.go
//
// Package htmlsanitize cleans user-submitted text before it is embedded in
// generated HTML, such as the contact notification email.
package htmlsanitize

import (
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// policy allows common formatting (paragraphs, emphasis, lists, tables,
// links, images) and strips scripts, event handlers, iframes, and forms.
var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("style").OnElements("table", "tr", "td", "th")
	p.AllowAttrs("class").OnElements("table")
	return p
}

// Sanitize returns s with disallowed markup removed.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}

// SanitizeToHTML sanitizes s and marks the result safe for templates.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}

// IsPlainText reports whether s contains no angle brackets at all.
func IsPlainText(s string) bool {
	return !strings.ContainsAny(s, "<>")
}

// PlainTextToHTML escapes s for HTML embedding and converts newlines to <br>.
func PlainTextToHTML(s string) template.HTML {
	esc := template.HTMLEscapeString(s)
	esc = strings.ReplaceAll(esc, "\n", "<br>\n")
	return template.HTML(esc)
}

// PrepareForDisplay renders s safely: plain text is escaped with newline
// conversion, anything containing markup is sanitized instead.
func PrepareForDisplay(s string) template.HTML {
	if IsPlainText(s) {
		return PlainTextToHTML(s)
	}
	return SanitizeToHTML(s)
}
