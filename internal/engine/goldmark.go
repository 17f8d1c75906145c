package engine

import (
	"context"

	md2html "github.com/alnah/go-md2html"
)

// Goldmark renders in-process with the same converter the md2html binary uses.
type Goldmark struct {
	conv *md2html.Converter
}

// NewGoldmark returns the in-process goldmark engine.
func NewGoldmark() *Goldmark {
	return &Goldmark{conv: md2html.NewConverter()}
}

// Name implements Engine.
func (g *Goldmark) Name() string { return "goldmark" }

// Available implements Engine. The in-process converter is always present.
func (g *Goldmark) Available(context.Context) bool { return true }

// Output implements Engine.
func (g *Goldmark) Output(ctx context.Context, input string) (string, error) {
	return g.conv.ToHTML(ctx, input)
}
