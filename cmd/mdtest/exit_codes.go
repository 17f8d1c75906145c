package main

import (
	"context"
	"errors"
	"os"

	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/engine"
	"github.com/alnah/go-md2html/internal/hints"
	"github.com/alnah/go-md2html/internal/suite"
)

// Exit codes for the mdtest CLI.
// Failing cases are reported, not signaled: a completed run exits 0.
const (
	ExitSuccess     = 0 // Run completed
	ExitGeneral     = 1 // General error, or the requested engine is unavailable
	ExitUsage       = 2 // Invalid flags or config
	ExitIO          = 3 // Tests dir missing, case unreadable, output unwritable
	ExitInterrupted = 130
)

// Sentinel errors for mdtest commands.
var (
	ErrEngineUnavailable = errors.New("engine not available")
	ErrInvalidFlag       = errors.New("invalid flag value")
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, context.Canceled) {
		return ExitInterrupted
	}

	if errors.Is(err, suite.ErrTestsDirNotFound) ||
		errors.Is(err, suite.ErrMissingOutput) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, ErrInvalidFlag) {
		return ExitUsage
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(config.DefaultName))
	case errors.Is(err, suite.ErrTestsDirNotFound):
		return hints.ForTestsDir()
	case errors.Is(err, engine.ErrEngineTimeout):
		return hints.ForTimeout()
	}
	return ""
}
