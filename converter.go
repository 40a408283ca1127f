package md2html

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/template"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// StreamOptions controls page assembly for one conversion.
type StreamOptions struct {
	// Standalone embeds the theme and highlight stylesheets. When false the
	// <style> element is empty and the other fields are ignored.
	Standalone bool

	// ThemeCSSPath replaces the bundled theme stylesheet.
	ThemeCSSPath string

	// HighlightCSSPath replaces the bundled highlight stylesheet.
	HighlightCSSPath string

	// HighlightStyle generates the highlight stylesheet from a chroma style
	// instead of using the bundled one. HighlightCSSPath takes precedence.
	HighlightStyle string
}

// Result is the output of Convert.
type Result struct {
	HTML string         // complete page
	Body string         // converted fragment
	Meta map[string]any // front matter, nil when absent
}

// Converter converts Markdown to HTML pages with a fixed extension set.
// Create with NewConverter. A Converter is safe for sequential and
// concurrent use; each conversion starts from a clean parser state.
type Converter struct {
	cfg        converterConfig
	extensions []string
	configs    ExtensionConfig
	html       pipeline.HTMLConverter
	loader     AssetLoader
	page       *template.Template
	sanitizer  *bluemonday.Policy
	mermaid    bool
	math       bool
	mathClass  string
}

// NewConverter creates a Converter with the default extensions and options.
// Returns ErrUnknownExtension or ErrInvalidOption for bad extension settings
// and ErrInvalidAssetPath if the asset directory is unusable.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			mermaidURL: DefaultMermaidURL,
			mathJaxURL: DefaultMathJaxURL,
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	enabled, err := resolveExtensions(c.cfg.additions, c.cfg.removals)
	if err != nil {
		return nil, err
	}
	configs, err := mergeExtensionConfigs(DefaultExtensionConfigs(), c.cfg.overrides)
	if err != nil {
		return nil, err
	}
	engine, err := buildEngine(enabled, configs, c.cfg.fenceHandlers)
	if err != nil {
		return nil, err
	}

	c.extensions = enabled
	c.configs = configs
	c.html = pipeline.NewGoldmarkConverter(engine.goldmarkOptions()...)
	c.mermaid = engine.mermaid
	c.math = engine.math
	c.mathClass = engine.mathClass

	if err := c.initAssets(); err != nil {
		return nil, err
	}
	if c.cfg.sanitize {
		c.sanitizer = pipeline.NewSanitizer()
	}
	return c, nil
}

// initAssets selects the asset loader and parses the page template.
func (c *Converter) initAssets() error {
	switch {
	case c.cfg.assetLoader != nil:
		c.loader = c.cfg.assetLoader
	default:
		loader, err := NewAssetLoader(c.cfg.assetPath)
		if err != nil {
			return err
		}
		c.loader = loader
	}

	source, err := c.loader.LoadTemplate(PageTemplate)
	if err != nil {
		return fmt.Errorf("loading page template: %w", err)
	}
	c.page, err = parsePageTemplate(source)
	return err
}

// Extensions returns the enabled extension identifiers in registration order.
func (c *Converter) Extensions() []string {
	out := make([]string, len(c.extensions))
	copy(out, c.extensions)
	return out
}

// ExtensionConfigs returns a copy of the effective option records.
func (c *Converter) ExtensionConfigs() ExtensionConfig {
	return c.configs.clone()
}

// ParseContent converts Markdown to an HTML fragment. Malformed Markdown
// never fails; an error means the renderer itself failed.
func (c *Converter) ParseContent(text string) (string, error) {
	rendered, err := c.render(text)
	if err != nil {
		return "", err
	}
	return rendered.Body, nil
}

// Convert converts Markdown to a complete page in memory.
func (c *Converter) Convert(text string, opts StreamOptions) (*Result, error) {
	rendered, err := c.render(text)
	if err != nil {
		return nil, err
	}

	css, err := c.resolveCSS(opts)
	if err != nil {
		return nil, err
	}

	page, err := renderPage(c.page, pageData{
		Lang:       defaultLang,
		Title:      pageTitle(c.cfg.title, rendered.Meta),
		CSS:        css,
		Body:       rendered.Body,
		Mermaid:    c.mermaid,
		MermaidURL: c.cfg.mermaidURL,
		Math:       c.math,
		MathJaxURL: c.cfg.mathJaxURL,
		MathClass:  c.mathClass,
	})
	if err != nil {
		return nil, err
	}

	return &Result{HTML: page, Body: rendered.Body, Meta: rendered.Meta}, nil
}

// ConvertStreamToStream reads Markdown from input, writes the page to output
// when output is non-nil and returns the page. Both streams are closed on
// every path; a close error is reported when nothing failed before it.
func (c *Converter) ConvertStreamToStream(input io.ReadCloser, output io.WriteCloser, opts StreamOptions) (html string, err error) {
	if output != nil {
		defer func() {
			if closeErr := output.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("%w: closing output: %v", ErrWriteOutput, closeErr)
			}
		}()
	}
	if input == nil {
		return "", fmt.Errorf("%w: nil input stream", ErrInvalidArgument)
	}
	defer func() {
		if closeErr := input.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: closing input: %v", ErrReadInput, closeErr)
		}
	}()

	data, err := io.ReadAll(input)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: input is not valid UTF-8", ErrReadInput)
	}

	result, err := c.Convert(string(data), opts)
	if err != nil {
		return "", err
	}

	if output != nil {
		if _, err := io.WriteString(output, result.HTML); err != nil {
			return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}
	return result.HTML, nil
}

// ConvertFromFile converts the file at inputPath and writes the page to
// outputPath (created or truncated, mode 0644). Either path may be "-" for
// standard input or standard output. The output is only opened once the page
// is rendered, so a failed conversion leaves an existing file untouched, and
// an output naming the input file is rejected.
func (c *Converter) ConvertFromFile(inputPath, outputPath string, opts StreamOptions) (err error) {
	if inputPath == "" || outputPath == "" {
		return fmt.Errorf("%w: input and output paths are required", ErrInvalidArgument)
	}
	if fileutil.SamePath(inputPath, outputPath) {
		return fmt.Errorf("%w: output %q would overwrite the input", ErrInvalidArgument, outputPath)
	}

	input, err := fileutil.OpenInput(inputPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %w: %v", ErrReadInput, os.ErrNotExist, err)
		}
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	page, err := c.ConvertStreamToStream(input, nil, opts)
	if err != nil {
		return err
	}

	output, err := fileutil.CreateOutput(outputPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	defer func() {
		if closeErr := output.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: closing output: %v", ErrWriteOutput, closeErr)
		}
	}()
	if _, err = io.WriteString(output, page); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// render converts Markdown and applies the sanitizer when enabled.
func (c *Converter) render(text string) (*pipeline.Rendered, error) {
	rendered, err := c.html.ToHTML(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHTMLConversion, err)
	}
	if c.sanitizer != nil {
		rendered.Body = c.sanitizer.Sanitize(rendered.Body)
	}
	return rendered, nil
}

// resolveCSS returns theme followed by highlight CSS, or "" when not standalone.
func (c *Converter) resolveCSS(opts StreamOptions) (string, error) {
	if !opts.Standalone {
		return "", nil
	}

	theme, err := c.loadCSS(opts.ThemeCSSPath, ThemeStyle)
	if err != nil {
		return "", err
	}

	var highlight string
	if opts.HighlightCSSPath == "" && opts.HighlightStyle != "" {
		highlight, err = HighlightCSS(opts.HighlightStyle)
	} else {
		highlight, err = c.loadCSS(opts.HighlightCSSPath, HighlightStyle)
	}
	if err != nil {
		return "", err
	}

	return theme + highlight, nil
}

// loadCSS reads path when set, otherwise the named bundled style.
func (c *Converter) loadCSS(path, style string) (string, error) {
	if path == "" {
		return c.loader.LoadStyle(style)
	}
	css, err := ReadFileContent(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadCSS, err)
	}
	return css, nil
}
