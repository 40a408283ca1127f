package pipeline

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// FenceHandler turns fenced code blocks tagged with a reserved language
// identifier into passthrough markup for client-side rendering. Claimed blocks
// bypass syntax highlighting.
type FenceHandler interface {
	// Language is the info-string identifier the handler claims, e.g. "mermaid".
	// Matching is case-insensitive.
	Language() string

	// RenderFence writes the markup for the raw block content.
	RenderFence(w util.BufWriter, content []byte) error
}

// KindPassthroughBlock is the node kind of fenced blocks claimed by a FenceHandler.
var KindPassthroughBlock = ast.NewNodeKind("PassthroughBlock")

// PassthroughBlock replaces a claimed fenced code block in the AST.
type PassthroughBlock struct {
	ast.BaseBlock
	Handler FenceHandler
}

// Kind implements ast.Node.
func (n *PassthroughBlock) Kind() ast.NodeKind {
	return KindPassthroughBlock
}

// IsRaw implements ast.Node.
func (n *PassthroughBlock) IsRaw() bool {
	return true
}

// Dump implements ast.Node.
func (n *PassthroughBlock) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Language": n.Handler.Language()}, nil)
}

// FenceExtension registers a set of FenceHandlers with goldmark.
type FenceExtension struct {
	handlers map[string]FenceHandler
}

// NewFenceExtension creates a FenceExtension. A later handler claiming the
// same language replaces an earlier one.
func NewFenceExtension(handlers ...FenceHandler) *FenceExtension {
	e := &FenceExtension{handlers: make(map[string]FenceHandler, len(handlers))}
	for _, h := range handlers {
		e.handlers[normalizeLanguage([]byte(h.Language()))] = h
	}
	return e
}

// Len returns the number of registered handlers.
func (e *FenceExtension) Len() int {
	return len(e.handlers)
}

// Extend implements goldmark.Extender.
func (e *FenceExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&fenceTransformer{handlers: e.handlers}, 100),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&fenceRenderer{}, 100),
	))
}

type fenceTransformer struct {
	handlers map[string]FenceHandler
}

func (t *fenceTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	if len(t.handlers) == 0 {
		return
	}
	source := reader.Source()

	type claim struct {
		block   *ast.FencedCodeBlock
		handler FenceHandler
	}
	var claims []claim

	// Collect first; replacing while walking would invalidate the traversal.
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		if h, found := t.handlers[normalizeLanguage(fcb.Language(source))]; found {
			claims = append(claims, claim{block: fcb, handler: h})
		}
		return ast.WalkSkipChildren, nil
	})

	for _, c := range claims {
		block := &PassthroughBlock{Handler: c.handler}
		block.SetLines(c.block.Lines())
		parent := c.block.Parent()
		parent.ReplaceChild(parent, c.block, block)
	}
}

type fenceRenderer struct{}

func (r *fenceRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindPassthroughBlock, r.render)
}

func (r *fenceRenderer) render(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*PassthroughBlock)
	if err := n.Handler.RenderFence(w, linesValue(n, source)); err != nil {
		return ast.WalkStop, err
	}
	return ast.WalkSkipChildren, nil
}

// linesValue concatenates the raw source lines of a block node.
func linesValue(n ast.Node, source []byte) []byte {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.Bytes()
}

func normalizeLanguage(lang []byte) string {
	return strings.ToLower(strings.TrimSpace(string(lang)))
}
