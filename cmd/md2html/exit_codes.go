package main

import (
	"errors"
	"syscall"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/hints"
)

// Exit codes for the md2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess    = 0 // HTML written
	ExitGeneral    = 1 // General/unexpected error
	ExitUsage      = 2 // Invalid flags or arguments
	ExitIO         = 3 // Reading stdin or writing stdout failed
	ExitConversion = 4 // Converter rejected the document
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, md2html.ErrReadInput), errors.Is(err, md2html.ErrWriteOutput):
		return ExitIO
	case errors.Is(err, md2html.ErrHTMLConversion):
		return ExitConversion
	case errors.Is(err, ErrUnexpectedArgs):
		return ExitUsage
	default:
		return ExitGeneral
	}
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	if errors.Is(err, syscall.EPIPE) {
		return hints.ForBrokenPipe()
	}
	return ""
}
