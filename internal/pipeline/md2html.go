package pipeline

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

// Rendered is the output of one conversion.
type Rendered struct {
	Body string         // HTML fragment
	Meta map[string]any // front matter, nil when absent or meta is disabled
}

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(content string) (*Rendered, error)
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
type GoldmarkConverter struct {
	md           goldmark.Markdown
	preprocessor MarkdownPreprocessor
}

// NewGoldmarkConverter creates a GoldmarkConverter from goldmark options
// assembled by the caller (extensions, parser and renderer options).
func NewGoldmarkConverter(opts ...goldmark.Option) *GoldmarkConverter {
	return &GoldmarkConverter{
		md:           goldmark.New(opts...),
		preprocessor: &CommonMarkPreprocessor{},
	}
}

// ToHTML converts Markdown content to an HTML fragment.
// Each call gets a fresh parser context, so footnote numbering, heading ids
// and metadata never carry over between documents.
func (c *GoldmarkConverter) ToHTML(content string) (*Rendered, error) {
	content = c.preprocessor.PreprocessMarkdown(content)

	pc := parser.NewContext()
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(content), &buf, parser.WithContext(pc)); err != nil {
		return nil, fmt.Errorf("goldmark convert: %w", err)
	}

	return &Rendered{Body: buf.String(), Meta: meta.Get(pc)}, nil
}

// Compile-time interface checks.
var (
	_ HTMLConverter        = (*GoldmarkConverter)(nil)
	_ MarkdownPreprocessor = (*CommonMarkPreprocessor)(nil)
)
