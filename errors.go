package md2html

import "errors"

// Sentinel errors for filter operations.
var (
	ErrReadInput      = errors.New("failed to read markdown input")
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrWriteOutput    = errors.New("failed to write HTML output")
)
