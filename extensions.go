package md2html

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	figure "github.com/mangoumbrella/goldmark-figure"
	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"go.abhg.dev/goldmark/anchor"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// Extension identifiers.
const (
	ExtMeta       = "meta"
	ExtTables     = "tables"
	ExtFootnotes  = "footnotes"
	ExtFencedCode = "fenced_code"
	ExtHighlight  = "highlight"
	ExtTOC        = "toc"
	ExtCaptions   = "captions"
	ExtMermaid    = "mermaid"
	ExtMath       = "math"

	// Opt-in extensions.
	ExtStrikethrough  = "strikethrough"
	ExtTaskList       = "tasklist"
	ExtLinkify        = "linkify"
	ExtDefinitionList = "definitionlist"
	ExtTypographer    = "typographer"
	ExtEmoji          = "emoji"
)

// Highlight line number layouts.
const (
	LineNumbersInline = "inline"
	LineNumbersTable  = "table"
)

// defaultPermalinkSymbol is used when the toc permalink option is true.
const defaultPermalinkSymbol = "¶"

// DefaultExtensions returns the extensions enabled on every Converter unless
// removed with WithoutExtensions. The slice is a fresh copy. fenced_code is
// part of CommonMark and cannot be removed.
func DefaultExtensions() []string {
	return []string{
		ExtMeta,
		ExtTables,
		ExtFootnotes,
		ExtFencedCode,
		ExtHighlight,
		ExtTOC,
		ExtCaptions,
		ExtMermaid,
		ExtMath,
	}
}

// AvailableExtensions returns every known extension identifier, sorted.
func AvailableExtensions() []string {
	return slices.Sorted(maps.Keys(registry))
}

// Options is the option record of one extension.
// Values are strings, booleans or integers of any width.
type Options map[string]any

// ExtensionConfig maps extension identifiers to their option records.
type ExtensionConfig map[string]Options

// DefaultExtensionConfigs returns the built-in option records.
// Each call returns a new map, so callers may modify the result.
func DefaultExtensionConfigs() ExtensionConfig {
	return ExtensionConfig{
		ExtHighlight: {
			"css_class":      pipeline.DefaultHighlightClass,
			"style":          "onedark",
			"linenums":       true,
			"linenums_style": LineNumbersInline,
			"guess_lang":     false,
			"noclasses":      false,
		},
		ExtTOC: {
			"marker":    pipeline.DefaultTOCMarker,
			"title":     "",
			"toc_depth": "1-6",
			"permalink": false,
			"numbered":  false,
		},
		ExtFootnotes: {
			"id_prefix":     "",
			"backlink_html": "",
		},
		ExtCaptions: {
			"image_link": false,
		},
		ExtMermaid: {
			"class": "mermaid",
		},
		ExtMath: {
			"class":  pipeline.DefaultMathClass,
			"inline": true,
		},
	}
}

func (o Options) clone() Options {
	if o == nil {
		return nil
	}
	return maps.Clone(o)
}

func (c ExtensionConfig) clone() ExtensionConfig {
	out := make(ExtensionConfig, len(c))
	for name, opts := range c {
		out[name] = opts.clone()
	}
	return out
}

// ---------------------------------------------------------------------------
// Registry
// ---------------------------------------------------------------------------

// extensionSpec describes how one identifier maps onto goldmark.
type extensionSpec struct {
	keys     []string // accepted option keys
	build    func(b *engineBuilder, r *optionReader)
	required bool // always parsed; removal is an error
}

func (s extensionSpec) accepts(key string) bool {
	return slices.Contains(s.keys, key)
}

var registry = map[string]extensionSpec{
	ExtMeta: {build: func(b *engineBuilder, _ *optionReader) {
		b.add(meta.Meta)
	}},
	ExtTables: {build: func(b *engineBuilder, _ *optionReader) {
		b.add(extension.Table)
	}},
	ExtFootnotes: {
		keys:  []string{"id_prefix", "backlink_html"},
		build: buildFootnotes,
	},
	// Fenced code blocks are part of CommonMark and always parsed.
	ExtFencedCode: {required: true, build: func(*engineBuilder, *optionReader) {}},
	ExtHighlight: {
		keys:  []string{"css_class", "style", "linenums", "linenums_style", "guess_lang", "noclasses"},
		build: buildHighlight,
	},
	ExtTOC: {
		keys:  []string{"marker", "title", "toc_depth", "permalink", "numbered"},
		build: buildTOC,
	},
	ExtCaptions: {
		keys:  []string{"image_link"},
		build: buildCaptions,
	},
	ExtMermaid: {
		keys: []string{"class"},
		build: func(b *engineBuilder, r *optionReader) {
			b.fences = append(b.fences, pipeline.MermaidHandler{Class: r.string("class")})
			b.mermaid = true
		},
	},
	ExtMath: {
		keys:  []string{"class", "inline"},
		build: buildMath,
	},
	ExtStrikethrough: {build: func(b *engineBuilder, _ *optionReader) {
		b.add(extension.Strikethrough)
	}},
	ExtTaskList: {build: func(b *engineBuilder, _ *optionReader) {
		b.add(extension.TaskList)
	}},
	ExtLinkify: {build: func(b *engineBuilder, _ *optionReader) {
		b.add(extension.Linkify)
	}},
	ExtDefinitionList: {build: func(b *engineBuilder, _ *optionReader) {
		b.add(extension.DefinitionList)
	}},
	ExtTypographer: {build: func(b *engineBuilder, _ *optionReader) {
		b.add(extension.Typographer)
	}},
	ExtEmoji: {build: func(b *engineBuilder, _ *optionReader) {
		b.add(emoji.Emoji)
	}},
}

func buildFootnotes(b *engineBuilder, r *optionReader) {
	var opts []extension.FootnoteOption
	if prefix := r.string("id_prefix"); prefix != "" {
		opts = append(opts, extension.WithFootnoteIDPrefix([]byte(prefix)))
	}
	if backlink := r.string("backlink_html"); backlink != "" {
		opts = append(opts, extension.WithFootnoteBacklinkHTML([]byte(backlink)))
	}
	b.add(extension.NewFootnote(opts...))
}

func buildHighlight(b *engineBuilder, r *optionReader) {
	class := r.string("css_class")
	style := r.string("style")
	lineNumbers := r.bool("linenums")
	layout := r.string("linenums_style")
	guess := r.bool("guess_lang")
	inlineStyles := r.bool("noclasses")

	switch layout {
	case "", LineNumbersInline, LineNumbersTable:
	default:
		r.fail("linenums_style", fmt.Sprintf("%q or %q", LineNumbersInline, LineNumbersTable), layout)
	}

	b.add(highlighting.NewHighlighting(
		highlighting.WithStyle(style),
		highlighting.WithGuessLanguage(guess),
		highlighting.WithFormatOptions(
			chromahtml.WithClasses(!inlineStyles),
			chromahtml.WithLineNumbers(lineNumbers),
			chromahtml.LineNumbersInTable(layout == LineNumbersTable),
			chromahtml.WithPreWrapper(pipeline.NewHighlightPreWrapper(class)),
		),
	))
}

func buildTOC(b *engineBuilder, r *optionReader) {
	minDepth, maxDepth := r.depthRange("toc_depth")
	b.add(&pipeline.TOCExtension{
		Marker:   r.string("marker"),
		Title:    r.string("title"),
		MinDepth: minDepth,
		MaxDepth: maxDepth,
		Numbered: r.bool("numbered"),
	})

	if symbol := r.permalink("permalink"); symbol != "" {
		b.add(&anchor.Extender{
			Texter:   anchor.Text(symbol),
			Position: anchor.After,
		})
	}
}

func buildCaptions(b *engineBuilder, r *optionReader) {
	b.add(figure.Figure)
	if r.bool("image_link") {
		b.add(&pipeline.FigureImageLinkExtension{})
	}
}

func buildMath(b *engineBuilder, r *optionReader) {
	class := r.string("class")
	if class == "" {
		class = pipeline.DefaultMathClass
	}
	b.fences = append(b.fences, pipeline.MathHandler{Class: class})
	b.add(&pipeline.MathBlockExtension{Class: class})
	if r.bool("inline") {
		b.add(&pipeline.MathInlineExtension{Class: class})
	}
	b.math = true
	b.mathClass = class
}

// ---------------------------------------------------------------------------
// Resolution
// ---------------------------------------------------------------------------

// resolveExtensions returns the defaults followed by additions in order,
// de-duplicated, minus removals. Unknown identifiers are rejected.
func resolveExtensions(additions, removals []string) ([]string, error) {
	removed := make(map[string]bool, len(removals))
	for _, name := range removals {
		spec, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, name)
		}
		if spec.required {
			return nil, fmt.Errorf("%w: %q cannot be disabled", ErrInvalidOption, name)
		}
		removed[name] = true
	}

	seen := make(map[string]bool)
	var enabled []string
	for _, name := range append(DefaultExtensions(), additions...) {
		if _, ok := registry[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, name)
		}
		if seen[name] || removed[name] {
			continue
		}
		seen[name] = true
		enabled = append(enabled, name)
	}
	return enabled, nil
}

// mergeExtensionConfigs overlays overrides on a fresh copy of the defaults,
// key by key. Neither argument is modified.
func mergeExtensionConfigs(defaults, overrides ExtensionConfig) (ExtensionConfig, error) {
	merged := defaults.clone()
	for _, name := range slices.Sorted(maps.Keys(overrides)) {
		spec, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, name)
		}
		if merged[name] == nil {
			merged[name] = Options{}
		}
		for _, key := range slices.Sorted(maps.Keys(overrides[name])) {
			if !spec.accepts(key) {
				return nil, fmt.Errorf("%w: %s has no option %q", ErrInvalidOption, name, key)
			}
			merged[name][key] = overrides[name][key]
		}
	}
	return merged, nil
}

// engineBuilder collects the goldmark configuration for a set of extensions.
type engineBuilder struct {
	extenders []goldmark.Extender
	fences    []pipeline.FenceHandler
	mermaid   bool
	math      bool
	mathClass string
}

func (b *engineBuilder) add(ext goldmark.Extender) {
	b.extenders = append(b.extenders, ext)
}

// buildEngine configures every enabled extension. Caller fence handlers are
// registered after the built-in ones, so they win for the same language.
func buildEngine(enabled []string, configs ExtensionConfig, handlers []FenceHandler) (*engineBuilder, error) {
	b := &engineBuilder{}
	for _, name := range enabled {
		r := &optionReader{ext: name, opts: configs[name]}
		registry[name].build(b, r)
		if r.err != nil {
			return nil, r.err
		}
	}
	b.fences = append(b.fences, handlers...)
	return b, nil
}

func (b *engineBuilder) goldmarkOptions() []goldmark.Option {
	exts := slices.Clone(b.extenders)
	if len(b.fences) > 0 {
		exts = append(exts, pipeline.NewFenceExtension(b.fences...))
	}
	return []goldmark.Option{
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	}
}

// ---------------------------------------------------------------------------
// Option values
// ---------------------------------------------------------------------------

// optionReader reads typed values from an option record and keeps the first
// type error.
type optionReader struct {
	ext  string
	opts Options
	err  error
}

func (r *optionReader) fail(key, want string, got any) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: %s.%s must be %s, got %v (%T)", ErrInvalidOption, r.ext, key, want, got, got)
	}
}

func (r *optionReader) string(key string) string {
	v, ok := r.opts[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.fail(key, "a string", v)
	}
	return s
}

func (r *optionReader) bool(key string) bool {
	v, ok := r.opts[key]
	if !ok || v == nil {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		r.fail(key, "a boolean", v)
	}
	return b
}

func (r *optionReader) int(key string) int {
	v, ok := r.opts[key]
	if !ok || v == nil {
		return 0
	}
	n, ok := toInt(v)
	if !ok {
		r.fail(key, "an integer", v)
	}
	return n
}

// depthRange reads a heading range given as an integer (maximum level) or
// as a "min-max" string.
func (r *optionReader) depthRange(key string) (minDepth, maxDepth int) {
	minDepth, maxDepth = 1, 6
	v, ok := r.opts[key]
	if !ok || v == nil {
		return minDepth, maxDepth
	}

	if s, isString := v.(string); isString {
		lo, hi, found := strings.Cut(strings.TrimSpace(s), "-")
		if !found {
			lo, hi = "1", lo
		}
		var errLo, errHi error
		minDepth, errLo = strconv.Atoi(strings.TrimSpace(lo))
		maxDepth, errHi = strconv.Atoi(strings.TrimSpace(hi))
		if errLo != nil || errHi != nil {
			r.fail(key, `an integer or a "min-max" range`, v)
			return 1, 6
		}
	} else {
		maxDepth = r.int(key)
	}

	if minDepth < 1 || maxDepth > 6 || minDepth > maxDepth {
		r.fail(key, "a heading range within 1-6", v)
		return 1, 6
	}
	return minDepth, maxDepth
}

// permalink returns the anchor symbol: "" when off, the default symbol for
// true, or the given string.
func (r *optionReader) permalink(key string) string {
	switch v := r.opts[key].(type) {
	case nil:
		return ""
	case bool:
		if v {
			return defaultPermalinkSymbol
		}
		return ""
	case string:
		return v
	default:
		r.fail(key, "a boolean or a string", v)
		return ""
	}
}

// toInt accepts every integer width decoders produce, and integral floats
// from JSON.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		if n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
