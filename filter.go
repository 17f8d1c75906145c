package md2html

import (
	"context"
	"fmt"
	"io"
)

// Filter reads a whole Markdown document, converts it, and writes the HTML.
type Filter struct {
	conv HTMLConverter
}

// NewFilter creates a Filter backed by conv.
func NewFilter(conv HTMLConverter) *Filter {
	return &Filter{conv: conv}
}

// Run reads r until EOF, converts the accumulated document and writes the
// result to w in one call. Nothing reaches w unless reading and conversion
// both succeed.
//
// ctx is only consulted between stages; a blocked read is not interrupted.
func (f *Filter) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	html, err := f.conv.Convert(src)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	n, err := w.Write(html)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	if n != len(html) {
		return fmt.Errorf("%w: %w", ErrWriteOutput, io.ErrShortWrite)
	}
	return nil
}
