package md2html

import "github.com/alnah/go-md2html/internal/pipeline"

// Default script locations for client-side rendering.
const (
	DefaultMermaidURL = "https://cdn.jsdelivr.net/npm/mermaid@10/dist/mermaid.min.js"
	DefaultMathJaxURL = "https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-mml-chtml.js"
)

// DefaultTitle is the page title when neither WithTitle nor front matter sets one.
const DefaultTitle = "Title"

// defaultLang is the lang attribute of the page.
const defaultLang = "en"

// FenceHandler turns fenced code blocks tagged with its language into
// passthrough markup. Implementations write with the goldmark BufWriter.
type FenceHandler = pipeline.FenceHandler

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds the construction-time settings of a Converter.
type converterConfig struct {
	additions     []string
	removals      []string
	overrides     ExtensionConfig
	assetPath     string
	assetLoader   AssetLoader
	fenceHandlers []FenceHandler
	sanitize      bool
	title         string
	mermaidURL    string
	mathJaxURL    string
}

// WithExtensions enables extensions in addition to the defaults.
func WithExtensions(names ...string) Option {
	return func(c *Converter) {
		c.cfg.additions = append(c.cfg.additions, names...)
	}
}

// WithoutExtensions disables extensions, including defaults.
func WithoutExtensions(names ...string) Option {
	return func(c *Converter) {
		c.cfg.removals = append(c.cfg.removals, names...)
	}
}

// WithExtensionConfig overrides option values of one extension.
// Keys not given keep their default values; repeated calls merge.
func WithExtensionConfig(name string, opts Options) Option {
	return func(c *Converter) {
		if c.cfg.overrides == nil {
			c.cfg.overrides = ExtensionConfig{}
		}
		if c.cfg.overrides[name] == nil {
			c.cfg.overrides[name] = Options{}
		}
		for k, v := range opts {
			c.cfg.overrides[name][k] = v
		}
	}
}

// WithAssetPath sets a directory whose styles/ and templates/ override the
// bundled assets.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithAssetLoader sets a custom asset loader. It takes precedence over WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.cfg.assetLoader = loader
	}
}

// WithFenceHandler registers a handler for fenced blocks of its language.
// A handler for "mermaid" or "math" replaces the built-in one.
func WithFenceHandler(h FenceHandler) Option {
	return func(c *Converter) {
		c.cfg.fenceHandlers = append(c.cfg.fenceHandlers, h)
	}
}

// WithSanitize strips unsafe HTML (scripts, event handlers) from converted
// bodies. Use it for untrusted Markdown.
func WithSanitize(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.sanitize = enabled
	}
}

// WithTitle sets the page title, overriding front matter.
func WithTitle(title string) Option {
	return func(c *Converter) {
		c.cfg.title = title
	}
}

// WithScriptURLs sets the Mermaid and MathJax script locations.
// Empty values keep the defaults.
func WithScriptURLs(mermaidURL, mathJaxURL string) Option {
	return func(c *Converter) {
		if mermaidURL != "" {
			c.cfg.mermaidURL = mermaidURL
		}
		if mathJaxURL != "" {
			c.cfg.mathJaxURL = mathJaxURL
		}
	}
}
