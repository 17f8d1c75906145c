package md2html

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
)

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	Convert(src []byte) ([]byte, error)
}

// Converter converts Markdown to HTML using goldmark's default rule set.
// A Converter holds no per-document state and may be reused.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter creates a Converter with no extensions and no custom options.
func NewConverter() *Converter {
	return &Converter{md: goldmark.New()}
}

// Convert renders src as an HTML fragment, byte for byte as goldmark emits it.
func (c *Converter) Convert(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return buf.Bytes(), nil
}

// ToHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *Converter) ToHTML(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html []byte
		err  error
	}

	done := make(chan result, 1)

	go func() {
		html, err := c.Convert([]byte(content))
		done <- result{html: html, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return string(r.html), r.err
	}
}
