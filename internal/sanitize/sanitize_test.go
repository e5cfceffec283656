package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRichStripsScriptWithBody(t *testing.T) {
	got := Rich(`<p>Build APIs</p><script>alert(1)</script>`)
	assert.Equal(t, "<p>Build APIs</p>", got)
}

func TestRichKeepsFormattingTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strong", "<strong>hiring</strong>", "<strong>hiring</strong>"},
		{"list", "<ul><li>Go</li><li>SQL</li></ul>", "<ul><li>Go</li><li>SQL</li></ul>"},
		{"heading", "<h2>About the role</h2>", "<h2>About the role</h2>"},
		{"blockquote", "<blockquote>quote</blockquote>", "<blockquote>quote</blockquote>"},
		{"div class survives", `<div class="intro">text</div>`, `<div class="intro">text</div>`},
		{"div other attrs dropped", `<div id="x" class="intro">text</div>`, `<div class="intro">text</div>`},
		{"unknown tag stripped, text kept", `<table><tr><td>cell</td></tr></table>`, "cell"},
		{"anchor stripped", `<a href="https://evil.test">link</a>`, "link"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rich(tt.input))
		})
	}
}

func TestRichDropsDangerousBodies(t *testing.T) {
	for _, tag := range []string{"script", "style", "iframe", "object", "embed"} {
		got := Rich("<" + tag + ">payload</" + tag + ">")
		assert.Empty(t, got, "body of %s must not leak", tag)
	}
}

func TestPlainStripsAllMarkup(t *testing.T) {
	got := Plain(`<b>Senior</b> Engineer <script>alert(1)</script>`)
	assert.Equal(t, "Senior Engineer ", got)
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"Backend Engineer",
		"<p>Build APIs</p><script>alert(1)</script>",
		"Salary range 80k-120k",
	}
	for _, in := range inputs {
		once := Plain(in)
		assert.Equal(t, once, Plain(once), "plain sanitize must be idempotent for %q", in)

		richOnce := Rich(in)
		assert.Equal(t, richOnce, Rich(richOnce), "rich sanitize must be idempotent for %q", in)
	}
}
