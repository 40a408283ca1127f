package pipeline

import (
	figureast "github.com/mangoumbrella/goldmark-figure/ast"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// FigureImageLinkExtension wraps the image of each captioned figure in a link
// to the image source. It must be registered together with the figure
// extension, which creates the figure nodes during block parsing.
type FigureImageLinkExtension struct{}

// Extend implements goldmark.Extender.
func (e *FigureImageLinkExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&figureImageLinkTransformer{}, 100),
	))
}

type figureImageLinkTransformer struct{}

func (t *figureImageLinkTransformer) Transform(doc *ast.Document, _ text.Reader, _ parser.Context) {
	var images []*ast.Image
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != figureast.KindFigureImage {
			return ast.WalkContinue, nil
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if img, ok := c.(*ast.Image); ok {
				images = append(images, img)
			}
		}
		return ast.WalkSkipChildren, nil
	})

	for _, img := range images {
		link := ast.NewLink()
		link.Destination = img.Destination
		parent := img.Parent()
		parent.ReplaceChild(parent, img, link)
		link.AppendChild(link, img)
	}
}
