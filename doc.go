// Package md2html converts Markdown documents to HTML pages.
//
// # Quick Start
//
// Create a converter and convert a file:
//
//	conv, err := md2html.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = conv.ConvertFromFile("README.md", "README.html", md2html.StreamOptions{
//	    Standalone: true,
//	})
//
// Use ParseContent for a bare HTML fragment, Convert for the page together
// with front-matter metadata, and ConvertStreamToStream for arbitrary
// readers and writers.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (BOM removal, line ending normalization)
//  2. Markdown to HTML conversion via Goldmark with the enabled extensions
//  3. Optional sanitizing of the HTML fragment (bluemonday)
//  4. Theme and highlight CSS resolution (bundled or from files)
//  5. Page template rendering
//
// # Extensions
//
// The default extension set is meta, tables, footnotes, fenced_code,
// highlight, toc, captions, mermaid and math. Extensions are configured by
// name with option records merged over the defaults:
//
//	conv, err := md2html.NewConverter(
//	    md2html.WithExtensions(md2html.ExtEmoji),
//	    md2html.WithoutExtensions(md2html.ExtMath),
//	    md2html.WithExtensionConfig(md2html.ExtHighlight, md2html.Options{
//	        "style":    "dracula",
//	        "linenums": false,
//	    }),
//	)
//
// Fenced blocks tagged mermaid or math are passed through for client-side
// rendering. Register a FenceHandler with WithFenceHandler to claim other
// languages.
//
// # Custom Assets
//
// Override the bundled stylesheets and page template with WithAssetPath:
//
//	assets/
//	├── styles/
//	│   ├── theme.css
//	│   └── highlight.css
//	└── templates/
//	    └── page.html
//
// Missing files fall back to the bundled defaults.
package md2html
