package suite

import (
	"fmt"
	"io"
)

// WriteAll renders cases as one Markdown document: a heading per case, its
// input, a rule, then the expected output.
func WriteAll(w io.Writer, cases []Case) error {
	for _, c := range cases {
		if _, err := fmt.Fprintf(w, "# %s\n\n%s\n\n---\n\n%s\n\n", c.Path, c.Input, c.Output); err != nil {
			return err
		}
	}
	return nil
}

// WriteInputs renders inputs as one Markdown document, a heading per file.
func WriteInputs(w io.Writer, inputs []Input) error {
	for _, in := range inputs {
		if _, err := fmt.Fprintf(w, "# %s\n\n%s\n\n", in.Path, in.Content); err != nil {
			return err
		}
	}
	return nil
}
