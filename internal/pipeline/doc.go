// Package pipeline implements the Markdown-to-HTML conversion stages built on
// goldmark.
//
// This package handles:
//   - Markdown preprocessing (line ending normalization, BOM removal)
//   - Markdown to HTML conversion via Goldmark, including front-matter metadata
//   - Passthrough of reserved fenced blocks (Mermaid diagrams, display math)
//     through the pluggable FenceHandler interface
//   - Inline math passthrough for MathJax
//   - [TOC] marker replacement with a nested table of contents
//   - The chroma <pre> wrapper that tags highlighted code with a CSS class
//   - Optional HTML sanitizing of the converted body
//
// Extension selection and option parsing live in the root md2html package;
// page templating happens there as well.
package pipeline
