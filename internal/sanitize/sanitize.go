package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Two sanitizer modes guard everything user-submitted: the rich-text
// job description keeps a small allow-list of formatting tags, every
// other field is stripped to plain text. Script/style/iframe/object/
// embed bodies are dropped entirely, never echoed back as text.

var richPolicy = newRichPolicy()

var plainPolicy = newPlainPolicy()

func newRichPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"p", "br",
		"strong", "b", "em", "i", "u",
		"ul", "ol", "li",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"blockquote",
	)
	p.AllowAttrs("class").OnElements("div", "span")
	p.AllowElements("div", "span")
	p.SkipElementsContent("script", "style", "iframe", "object", "embed")
	return p
}

func newPlainPolicy() *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	p.SkipElementsContent("script", "style", "iframe", "object", "embed")
	return p
}

// Rich sanitizes HTML for the job description, keeping only the
// formatting tags the editor can produce.
func Rich(html string) string {
	return richPolicy.Sanitize(html)
}

// Plain strips all markup unconditionally.
func Plain(text string) string {
	return plainPolicy.Sanitize(text)
}

// PlainTrimmed strips markup and surrounding whitespace.
func PlainTrimmed(text string) string {
	return strings.TrimSpace(Plain(text))
}
