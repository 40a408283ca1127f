package md2html

import (
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// HighlightCSS generates the highlight stylesheet for a chroma style
// ("monokai", "github", "onedark", ...). The rules target the class names
// emitted by the highlight extension.
// Returns ErrStyleNotFound for unknown style names.
func HighlightCSS(style string) (string, error) {
	s, ok := styles.Registry[strings.ToLower(strings.TrimSpace(style))]
	if !ok {
		return "", fmt.Errorf("%w: highlight style %q", ErrStyleNotFound, style)
	}

	formatter := chromahtml.New(
		chromahtml.WithClasses(true),
		chromahtml.WithLineNumbers(true),
	)
	var buf strings.Builder
	if err := formatter.WriteCSS(&buf, s); err != nil {
		return "", fmt.Errorf("generating highlight CSS for %q: %w", style, err)
	}
	return buf.String(), nil
}

// HighlightStyles returns the names accepted by HighlightCSS.
func HighlightStyles() []string {
	return styles.Names()
}
