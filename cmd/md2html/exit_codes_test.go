package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"
	"testing"

	md2html "github.com/alnah/go-md2html"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"read input", md2html.ErrReadInput, ExitIO},
		{"write output", md2html.ErrWriteOutput, ExitIO},
		{"wrapped write", fmt.Errorf("%w: %w", md2html.ErrWriteOutput, syscall.EPIPE), ExitIO},
		{"conversion", md2html.ErrHTMLConversion, ExitConversion},
		{"unexpected args", ErrUnexpectedArgs, ExitUsage},
		{"unknown error", errors.New("something unexpected"), ExitGeneral},
		{"bare io error", io.ErrUnexpectedEOF, ExitGeneral},
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

func TestExitCodes_UnixConventions(t *testing.T) {
	t.Parallel()

	codes := []int{ExitSuccess, ExitGeneral, ExitUsage, ExitIO, ExitConversion}
	seen := map[int]bool{}
	for _, c := range codes {
		if c >= 126 {
			t.Errorf("exit code %d collides with shell-reserved range", c)
		}
		if seen[c] {
			t.Errorf("exit code %d used twice", c)
		}
		seen[c] = true
	}
	if ExitSuccess != 0 {
		t.Error("ExitSuccess must be 0")
	}
}

func TestHintFor(t *testing.T) {
	t.Parallel()

	if h := hintFor(fmt.Errorf("%w: %w", md2html.ErrWriteOutput, syscall.EPIPE)); !strings.Contains(h, "hint:") {
		t.Errorf("hintFor(EPIPE) = %q, want hint", h)
	}
	if h := hintFor(md2html.ErrReadInput); h != "" {
		t.Errorf("hintFor(read) = %q, want empty", h)
	}
}
