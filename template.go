package md2html

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// pageData fills the page template. Title and URLs are escaped by the
// template; CSS and Body are inserted as is.
type pageData struct {
	Lang       string
	Title      string
	CSS        string
	Body       string
	Mermaid    bool
	MermaidURL string
	Math       bool
	MathJaxURL string
	MathClass  string
}

// parsePageTemplate parses the page template source.
func parsePageTemplate(source string) (*template.Template, error) {
	tmpl, err := template.New(PageTemplate).Option("missingkey=error").Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return tmpl, nil
}

// renderPage executes the page template.
func renderPage(tmpl *template.Template, data pageData) (string, error) {
	data.CSS = sanitizeCSS(data.CSS)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}

// sanitizeCSS escapes "</" so the CSS cannot close the <style> element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// pageTitle picks the explicit title, then the front-matter title, then the default.
func pageTitle(explicit string, meta map[string]any) string {
	if explicit != "" {
		return explicit
	}
	if title, ok := meta["title"]; ok && title != nil {
		if s := strings.TrimSpace(fmt.Sprint(title)); s != "" {
			return s
		}
	}
	return DefaultTitle
}
