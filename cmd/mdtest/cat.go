package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alnah/go-md2html/internal/suite"
)

const (
	defaultCatAllOutput   = "all.tmp.md"
	defaultCatInputOutput = "inputs.tmp.md"
)

func newCatAllCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "cat-all",
		Short: "Concatenate every case with its expected output into one file",
		Long: `Concatenate the reference cases, then each engine's own cases, as
"# path", the input, a "---" rule and the expected HTML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := suite.New(a.cfg.TestsDir)
			if err != nil {
				return err
			}
			cases, err := s.Cases()
			if err != nil {
				return err
			}
			extra, err := s.AllEngineCases()
			if err != nil {
				return err
			}
			cases = append(cases, extra...)

			return a.writeTo(cmd, output, func(w io.Writer) error {
				return suite.WriteAll(w, cases)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", defaultCatAllOutput, `output file ("-" for stdout)`)
	return cmd
}

func newCatInputCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "cat-input",
		Short: "Concatenate every non-empty Markdown input into one file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := suite.New(a.cfg.TestsDir)
			if err != nil {
				return err
			}
			inputs, err := s.Inputs()
			if err != nil {
				return err
			}

			return a.writeTo(cmd, output, func(w io.Writer) error {
				return suite.WriteInputs(w, inputs)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", defaultCatInputOutput, `output file ("-" for stdout)`)
	return cmd
}

// writeTo runs write against path, or the command's stdout for "-".
func (a *app) writeTo(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "-" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(path) // #nosec G304 -- output path is user-provided
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	a.logf("wrote %s", path)
	return nil
}
