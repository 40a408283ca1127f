package pipeline

import (
	"bufio"
	"bytes"
	"io"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
)

// render converts src with goldmark plus the given extensions.
func render(t *testing.T, src string, exts ...goldmark.Extender) string {
	t.Helper()

	var buf bytes.Buffer
	if err := newTestMarkdown(exts...).Convert([]byte(src), &buf); err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	return buf.String()
}

func newTestMarkdown(exts ...goldmark.Extender) goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
}

func newBufWriter(w io.Writer) *bufio.Writer {
	return bufio.NewWriter(w)
}
