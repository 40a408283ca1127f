package pipeline

import "github.com/microcosm-cc/bluemonday"

// NewSanitizer returns a bluemonday policy for untrusted Markdown. It extends
// the user-generated-content policy with the markup this pipeline emits:
// class attributes (highlighting, Mermaid, math, TOC), figures and task list
// checkboxes.
func NewSanitizer() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	p.AllowElements("figure", "figcaption", "mark")
	p.AllowAttrs("type", "checked", "disabled").OnElements("input")
	return p
}
