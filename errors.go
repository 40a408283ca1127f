package md2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrHTMLConversion  = errors.New("HTML conversion failed")

	// Extension configuration errors.
	ErrUnknownExtension = errors.New("unknown extension")
	ErrInvalidOption    = errors.New("invalid extension option")

	// Stream errors.
	ErrReadInput   = errors.New("failed to read input")
	ErrReadCSS     = errors.New("failed to read CSS")
	ErrWriteOutput = errors.New("failed to write output")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrTemplateRender   = errors.New("page template rendering failed")
)
