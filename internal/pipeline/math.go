package pipeline

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// DefaultMathClass is the class MathJax is configured to process.
const DefaultMathClass = "arithmatex"

// MathHandler emits ```math blocks as display math wrapped in \[ \] for MathJax.
type MathHandler struct {
	Class string // defaults to DefaultMathClass
}

// Language implements FenceHandler.
func (h MathHandler) Language() string {
	return "math"
}

// RenderFence implements FenceHandler.
func (h MathHandler) RenderFence(w util.BufWriter, content []byte) error {
	_, _ = w.WriteString(`<div class="`)
	_, _ = w.Write(util.EscapeHTML([]byte(mathClass(h.Class))))
	_, _ = w.WriteString(`">\[`)
	_, _ = w.Write(util.EscapeHTML(bytes.TrimSpace(content)))
	_, err := w.WriteString("\\]</div>\n")
	return err
}

var _ FenceHandler = MathHandler{}

// KindMathInline is the node kind of $...$ and $$...$$ spans.
var KindMathInline = ast.NewNodeKind("MathInline")

// MathInline is a math span whose content is passed through untouched.
type MathInline struct {
	ast.BaseInline
	Value   text.Segment
	Display bool // $$...$$
}

// Kind implements ast.Node.
func (n *MathInline) Kind() ast.NodeKind {
	return KindMathInline
}

// Dump implements ast.Node.
func (n *MathInline) Dump(source []byte, level int) {
	display := "false"
	if n.Display {
		display = "true"
	}
	ast.DumpHelper(n, source, level, map[string]string{
		"Value":   string(n.Value.Value(source)),
		"Display": display,
	}, nil)
}

// MathInlineExtension adds $...$ (inline) and $$...$$ (display) math spans.
type MathInlineExtension struct {
	Class string
}

// Extend implements goldmark.Extender.
func (e *MathInlineExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&mathInlineParser{}, 150),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&mathInlineRenderer{class: mathClass(e.Class)}, 150),
	))
}

type mathInlineParser struct{}

func (p *mathInlineParser) Trigger() []byte {
	return []byte{'$'}
}

// Parse follows the pandoc rules for single-dollar math: the opening $ must be
// followed by a non-space, the closing $ preceded by a non-space and not
// followed by a digit. This keeps "$5 and $6" as text.
func (p *mathInlineParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, segment := block.PeekLine()
	delim := 1
	if len(line) > 1 && line[1] == '$' {
		delim = 2
	}

	end := bytes.Index(line[delim:], line[:delim])
	if end <= 0 {
		return nil
	}
	content := line[delim : delim+end]

	if delim == 1 {
		if util.IsSpace(content[0]) || util.IsSpace(content[len(content)-1]) {
			return nil
		}
		if after := delim + end + delim; after < len(line) && line[after] >= '0' && line[after] <= '9' {
			return nil
		}
	}

	node := &MathInline{Display: delim == 2}
	node.Value = text.NewSegment(segment.Start+delim, segment.Start+delim+end)
	block.Advance(delim + end + delim)
	return node
}

type mathInlineRenderer struct {
	class string
}

func (r *mathInlineRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindMathInline, r.render)
}

func (r *mathInlineRenderer) render(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*MathInline)
	open, closing := `\(`, `\)`
	if n.Display {
		open, closing = `\[`, `\]`
	}
	_, _ = w.WriteString(`<span class="`)
	_, _ = w.Write(util.EscapeHTML([]byte(r.class)))
	_, _ = w.WriteString(`">`)
	_, _ = w.WriteString(open)
	_, _ = w.Write(util.EscapeHTML(n.Value.Value(source)))
	_, _ = w.WriteString(closing)
	_, _ = w.WriteString("</span>")
	return ast.WalkSkipChildren, nil
}

// KindMathBlock is the node kind of $$ delimited display blocks.
var KindMathBlock = ast.NewNodeKind("MathBlock")

// MathBlock is display math written between two lines holding only $$.
type MathBlock struct {
	ast.BaseBlock
}

// Kind implements ast.Node.
func (n *MathBlock) Kind() ast.NodeKind {
	return KindMathBlock
}

// IsRaw implements ast.Node; the content is never parsed as Markdown.
func (n *MathBlock) IsRaw() bool {
	return true
}

// Dump implements ast.Node.
func (n *MathBlock) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// MathBlockExtension adds display math blocks:
//
//	$$
//	E = mc^2
//	$$
//
// They render like ```math fences. A block left open runs to the end of its
// container.
type MathBlockExtension struct {
	Class string
}

// Extend implements goldmark.Extender.
func (e *MathBlockExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithBlockParsers(
		util.Prioritized(&mathBlockParser{}, 701),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&mathBlockRenderer{handler: MathHandler{Class: e.Class}}, 150),
	))
}

type mathBlockParser struct{}

func (p *mathBlockParser) Trigger() []byte {
	return []byte{'$'}
}

func (p *mathBlockParser) Open(_ ast.Node, reader text.Reader, _ parser.Context) (ast.Node, parser.State) {
	line, _ := reader.PeekLine()
	if !isMathDelimiterLine(line) {
		return nil, parser.NoChildren
	}
	reader.AdvanceToEOL()
	return &MathBlock{}, parser.NoChildren
}

func (p *mathBlockParser) Continue(node ast.Node, reader text.Reader, _ parser.Context) parser.State {
	line, segment := reader.PeekLine()
	if isMathDelimiterLine(line) {
		reader.AdvanceToEOL()
		return parser.Close
	}
	node.Lines().Append(segment)
	reader.AdvanceToEOL()
	return parser.Continue | parser.NoChildren
}

func (p *mathBlockParser) Close(ast.Node, text.Reader, parser.Context) {}

func (p *mathBlockParser) CanInterruptParagraph() bool {
	return true
}

func (p *mathBlockParser) CanAcceptIndentedLine() bool {
	return false
}

// isMathDelimiterLine reports whether line holds "$$" and nothing else but
// up to three spaces of indentation and trailing whitespace.
func isMathDelimiterLine(line []byte) bool {
	trimmed := util.TrimRightSpace(line)
	indent := len(trimmed) - len(util.TrimLeftSpace(trimmed))
	return indent <= 3 && string(trimmed[indent:]) == "$$"
}

type mathBlockRenderer struct {
	handler MathHandler
}

func (r *mathBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindMathBlock, r.render)
}

func (r *mathBlockRenderer) render(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	var content bytes.Buffer
	lines := node.Lines()
	for i := range lines.Len() {
		seg := lines.At(i)
		content.Write(seg.Value(source))
	}
	if err := r.handler.RenderFence(w, content.Bytes()); err != nil {
		return ast.WalkStop, err
	}
	return ast.WalkSkipChildren, nil
}

func mathClass(class string) string {
	if class == "" {
		return DefaultMathClass
	}
	return class
}
