package pipeline

import (
	"fmt"
	"html"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
)

// DefaultHighlightClass is the CSS class added to highlighted <pre> elements.
const DefaultHighlightClass = "highlight"

// highlightPreWrapper writes chroma's <pre> with an extra CSS class so
// stylesheets can target highlighted blocks by a stable name.
type highlightPreWrapper struct {
	class string
}

// NewHighlightPreWrapper returns a chroma PreWrapper adding class to <pre>.
func NewHighlightPreWrapper(class string) chromahtml.PreWrapper {
	if class == "" {
		class = DefaultHighlightClass
	}
	return highlightPreWrapper{class: html.EscapeString(class)}
}

// Start implements chromahtml.PreWrapper.
func (p highlightPreWrapper) Start(code bool, styleAttr string) string {
	attr := p.classAttr(styleAttr)
	if code {
		return "<pre" + attr + "><code>"
	}
	return "<pre" + attr + ">"
}

// End implements chromahtml.PreWrapper.
func (p highlightPreWrapper) End(code bool) string {
	if code {
		return "</code></pre>"
	}
	return "</pre>"
}

// classAttr merges the class into chroma's attribute, which is either
// ` class="chroma"` (class mode) or ` style="..."` (inline style mode).
func (p highlightPreWrapper) classAttr(styleAttr string) string {
	const classPrefix = ` class="`
	if strings.HasPrefix(styleAttr, classPrefix) {
		return classPrefix + p.class + " " + styleAttr[len(classPrefix):]
	}
	return fmt.Sprintf(` class="%s"`, p.class) + styleAttr
}
