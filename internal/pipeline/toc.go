package pipeline

import (
	"bytes"
	"html"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// DefaultTOCMarker is the paragraph text replaced by the table of contents.
const DefaultTOCMarker = "[TOC]"

// TOCExtension replaces marker paragraphs with a nested list of links to the
// document headings. Headings need ids, so parser.WithAutoHeadingID must be on.
type TOCExtension struct {
	Marker   string // defaults to DefaultTOCMarker
	Title    string // optional heading shown above the list
	MinDepth int    // lowest heading level listed (1-6)
	MaxDepth int    // highest heading level listed (1-6)
	Numbered bool   // prefix entries with hierarchical numbers ("1.2.")
}

// Extend implements goldmark.Extender.
func (e *TOCExtension) Extend(m goldmark.Markdown) {
	cfg := *e
	if cfg.Marker == "" {
		cfg.Marker = DefaultTOCMarker
	}
	if cfg.MinDepth < 1 {
		cfg.MinDepth = 1
	}
	if cfg.MaxDepth < 1 || cfg.MaxDepth > 6 {
		cfg.MaxDepth = 6
	}
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&tocTransformer{cfg: cfg}, 200),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&tocRenderer{}, 200),
	))
}

// KindTOC is the node kind of a rendered table of contents.
var KindTOC = ast.NewNodeKind("TOC")

// TOC holds the entries collected for one marker.
type TOC struct {
	ast.BaseBlock
	Title   string
	Entries []TOCEntry
}

// TOCEntry is one heading listed in a TOC.
type TOCEntry struct {
	Depth  int    // normalized nesting depth, starting at 1
	ID     string // heading anchor id
	Text   string // plain heading text
	Number string // "1.2." when numbering is on
}

// Kind implements ast.Node.
func (n *TOC) Kind() ast.NodeKind {
	return KindTOC
}

// Dump implements ast.Node.
func (n *TOC) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Entries": strconv.Itoa(len(n.Entries)),
	}, nil)
}

type tocTransformer struct {
	cfg TOCExtension
}

func (t *tocTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()

	var markers []*ast.Paragraph
	var headings []*ast.Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Paragraph:
			if string(bytes.TrimSpace(linesValue(node, source))) == t.cfg.Marker {
				markers = append(markers, node)
			}
			return ast.WalkSkipChildren, nil
		case *ast.Heading:
			headings = append(headings, node)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if len(markers) == 0 {
		return
	}

	entries := t.collectEntries(headings, source)
	for _, p := range markers {
		toc := &TOC{Title: t.cfg.Title, Entries: entries}
		parent := p.Parent()
		parent.ReplaceChild(parent, p, toc)
	}
}

func (t *tocTransformer) collectEntries(headings []*ast.Heading, source []byte) []TOCEntry {
	state := newDepthState()
	var entries []TOCEntry
	for _, h := range headings {
		if h.Level < t.cfg.MinDepth || h.Level > t.cfg.MaxDepth {
			continue
		}
		id, ok := h.AttributeString("id")
		if !ok {
			continue
		}
		idBytes, ok := id.([]byte)
		if !ok {
			continue
		}
		number, depth := state.next(h.Level)
		entry := TOCEntry{
			Depth: depth,
			ID:    string(idBytes),
			Text:  plainText(h, source),
		}
		if t.cfg.Numbered {
			entry.Number = number
		}
		entries = append(entries, entry)
	}
	return entries
}

// depthState tracks hierarchical numbering for TOC entries.
// A heading's depth is one more than the number of open ancestors with a
// lower level, so skipped levels collapse (H1 -> H3 nests the H3 directly
// under the H1) and equal levels always share a depth.
type depthState struct {
	counters [6]int // counters[0] = depth 1 count, etc.
	open     []int  // levels of the headings enclosing the next one
}

func newDepthState() *depthState {
	return &depthState{}
}

// next returns the number string and effective depth for a heading level.
func (s *depthState) next(level int) (numStr string, effectiveDepth int) {
	for len(s.open) > 0 && s.open[len(s.open)-1] >= level {
		s.open = s.open[:len(s.open)-1]
	}
	s.open = append(s.open, level)
	effectiveDepth = len(s.open)

	for i := effectiveDepth; i < len(s.counters); i++ {
		s.counters[i] = 0
	}
	s.counters[effectiveDepth-1]++

	parts := make([]string, 0, effectiveDepth)
	for i := 0; i < effectiveDepth; i++ {
		parts = append(parts, strconv.Itoa(s.counters[i]))
	}
	return strings.Join(parts, ".") + ".", effectiveDepth
}

type tocRenderer struct{}

func (r *tocRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindTOC, r.render)
}

func (r *tocRenderer) render(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	_, err := w.WriteString(renderTOC(node.(*TOC)))
	return ast.WalkSkipChildren, err
}

// renderTOC writes the entries as nested <ul> lists.
func renderTOC(toc *TOC) string {
	var buf strings.Builder
	buf.WriteString(`<div class="toc">`)
	if toc.Title != "" {
		buf.WriteString(`<span class="toctitle">`)
		buf.WriteString(html.EscapeString(toc.Title))
		buf.WriteString(`</span>`)
	}

	depth := 0
	for _, e := range toc.Entries {
		if e.Depth > depth {
			for depth < e.Depth {
				buf.WriteString("<ul>\n")
				depth++
			}
		} else {
			buf.WriteString("</li>\n")
			for depth > e.Depth {
				buf.WriteString("</ul>\n</li>\n")
				depth--
			}
		}
		buf.WriteString(`<li><a href="#`)
		buf.WriteString(html.EscapeString(e.ID))
		buf.WriteString(`">`)
		if e.Number != "" {
			buf.WriteString(e.Number)
			buf.WriteString(" ")
		}
		buf.WriteString(html.EscapeString(e.Text))
		buf.WriteString(`</a>`)
	}
	for depth > 0 {
		buf.WriteString("</li>\n</ul>\n")
		depth--
	}

	buf.WriteString("</div>\n")
	return buf.String()
}

// plainText returns the text content of a node without markup.
func plainText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(buf.String())
}
