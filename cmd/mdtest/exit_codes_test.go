package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/engine"
	"github.com/alnah/go-md2html/internal/suite"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"interrupted", fmt.Errorf("running: %w", context.Canceled), ExitInterrupted},
		{"tests dir", fmt.Errorf("%w: tests", suite.ErrTestsDirNotFound), ExitIO},
		{"missing output", fmt.Errorf("%w: a.out", suite.ErrMissingOutput), ExitIO},
		{"config not found", fmt.Errorf("%w: x", config.ErrConfigNotFound), ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"invalid config", config.ErrInvalidConfig, ExitUsage},
		{"invalid flag", ErrInvalidFlag, ExitUsage},
		{"engine unavailable", fmt.Errorf("%w: pandoc", ErrEngineUnavailable), ExitGeneral},
		{"other", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantHint bool
	}{
		{"config not found", config.ErrConfigNotFound, true},
		{"tests dir", suite.ErrTestsDirNotFound, true},
		{"engine timeout", fmt.Errorf("case a: %w", engine.ErrEngineTimeout), true},
		{"other", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := hintFor(tt.err)
			if tt.wantHint != strings.Contains(got, "hint:") {
				t.Errorf("hintFor(%v) = %q, wantHint %v", tt.err, got, tt.wantHint)
			}
		})
	}
}
