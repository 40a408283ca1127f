package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html -i <input> -o <output> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a markdown file to an HTML page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -i, --input <path>          Markdown file, or - for stdin (required)")
	fmt.Fprintln(w, "  -o, --output <path>         HTML file, or - for stdout (required)")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "      --title <s>             Page title (overrides front matter)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --standalone <bool>     Embed stylesheets: true, false (default true)")
	fmt.Fprintln(w, "      --theme_css <path>      Theme stylesheet")
	fmt.Fprintln(w, "      --highlight_css <path>  Highlight stylesheet")
	fmt.Fprintln(w, "      --highlight-style <s>   Generate highlight CSS from a chroma style")
	fmt.Fprintln(w, "      --asset-path <dir>      Custom asset directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Extensions:")
	fmt.Fprintln(w, "  -e, --extension <name>      Enable an extension (repeatable)")
	fmt.Fprintln(w, "      --disable-extension <s> Disable an extension (repeatable)")
	fmt.Fprintln(w, "      --sanitize              Strip unsafe HTML from the body")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show detailed timing")
	fmt.Fprintln(w, "  -h, --help                  Show this help")
	fmt.Fprintln(w, "      --version               Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2HTML_CONFIG, MD2HTML_ASSET_PATH, MD2HTML_HIGHLIGHT_STYLE,")
	fmt.Fprintln(w, "  MD2HTML_MERMAID_URL, MD2HTML_MATHJAX_URL")
}
