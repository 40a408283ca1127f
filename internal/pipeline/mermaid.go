package pipeline

import "github.com/yuin/goldmark/util"

// MermaidHandler emits ```mermaid blocks as <pre class="mermaid"> elements
// for mermaid.js to render in the browser.
type MermaidHandler struct {
	Class string // defaults to "mermaid"
}

// Language implements FenceHandler.
func (h MermaidHandler) Language() string {
	return "mermaid"
}

// RenderFence implements FenceHandler.
func (h MermaidHandler) RenderFence(w util.BufWriter, content []byte) error {
	class := h.Class
	if class == "" {
		class = "mermaid"
	}
	_, _ = w.WriteString(`<pre class="`)
	_, _ = w.Write(util.EscapeHTML([]byte(class)))
	_, _ = w.WriteString(`">`)
	_, _ = w.Write(util.EscapeHTML(content))
	_, err := w.WriteString("</pre>\n")
	return err
}

var _ FenceHandler = MermaidHandler{}
