package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sort"

	"github.com/spf13/cobra"

	"github.com/alnah/go-md2html/internal/engine"
	"github.com/alnah/go-md2html/internal/hints"
	"github.com/alnah/go-md2html/internal/report"
	"github.com/alnah/go-md2html/internal/runner"
	"github.com/alnah/go-md2html/internal/suite"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run [engine]",
		Short: "Run the suite against engines",
		Long: `Without an argument, run every enabled and available engine and print
one summary row per engine, first over the reference cases and then over
each engine's own cases under extensions/<engine>.

With an engine name, run that engine alone and print every failure in full.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := suite.New(a.cfg.TestsDir)
			if err != nil {
				return err
			}
			reg, err := a.engines()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			color := a.colorEnabled()
			p := report.New(out, report.Options{Color: color, Highlight: color})

			if len(args) == 1 {
				return a.runDetail(cmd.Context(), s, reg, p, args[0])
			}
			return a.runSummary(cmd.Context(), s, reg, p)
		},
	}
}

// engineNames merges the registered engines with the engine directories of
// the suite, sorted.
func engineNames(s *suite.Suite, reg *engine.Registry) ([]string, error) {
	ids, err := s.EngineIDs()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var names []string
	for _, n := range append(reg.Names(), ids...) {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (a *app) runSummary(ctx context.Context, s *suite.Suite, reg *engine.Registry, p *report.Printer) error {
	names, err := engineNames(s, reg)
	if err != nil {
		return err
	}

	var available, unavailable []string
	for _, n := range names {
		if a.cfg.IsDisabled(n) {
			continue
		}
		if reg.Available(ctx, n) {
			available = append(available, n)
		} else {
			unavailable = append(unavailable, n)
		}
	}
	a.logf("engines available: %v", available)

	p.Preamble(a.cfg.RunAllDisable, unavailable)
	if len(available) == 0 {
		p.NoEngines()
		return nil
	}

	cases, err := s.Cases()
	if err != nil {
		return err
	}
	engineIDs, err := s.EngineIDs()
	if err != nil {
		return err
	}

	width := 0
	for _, n := range available {
		width = max(width, len(n))
	}

	for _, n := range available {
		if err := a.summarize(ctx, reg, p, n, cases, width); err != nil {
			return err
		}
	}

	p.Extensions()
	for _, n := range available {
		var own []suite.Case
		if slices.Contains(engineIDs, n) {
			if own, err = s.EngineCases(n); err != nil {
				return err
			}
		}
		if err := a.summarize(ctx, reg, p, n, own, width); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) summarize(ctx context.Context, reg *engine.Registry, p *report.Printer, name string, cases []suite.Case, width int) error {
	eng, err := reg.Get(name)
	if err != nil {
		return err
	}

	p.SummaryStart(name, width)
	res, err := runner.Run(ctx, cases, eng, runner.Options{
		Workers:   a.cfg.Workers,
		OnOutcome: p.SummaryMark,
	})
	if err != nil {
		return err
	}
	p.SummaryEnd(res)
	return nil
}

func (a *app) runDetail(ctx context.Context, s *suite.Suite, reg *engine.Registry, p *report.Printer, name string) error {
	if !reg.Available(ctx, name) {
		notAvailable(a.env.Stdout)
		if name == "gfm" {
			fmt.Fprintf(a.env.Stderr, "mdtest: %s%s\n", name, hints.ForGFMToken(a.env.Getenv, a.cfg.GFMOAuthToken != ""))
		} else {
			fmt.Fprintf(a.env.Stderr, "mdtest: %s%s\n", name, hints.ForEngineNotFound(name, reg.Names()))
		}
		return fmt.Errorf("%w: %s", ErrEngineUnavailable, name)
	}
	eng, err := reg.Get(name)
	if err != nil {
		return err
	}

	cases, err := s.Cases()
	if err != nil {
		return err
	}
	ids, err := s.EngineIDs()
	if err != nil {
		return err
	}
	if slices.Contains(ids, name) {
		own, err := s.EngineCases(name)
		if err != nil {
			return err
		}
		cases = append(cases, own...)
	}
	a.logf("running %d cases on %s", len(cases), name)

	res, err := runner.Run(ctx, cases, eng, runner.Options{
		Workers:   a.cfg.Workers,
		OnOutcome: p.Detail,
	})
	if err != nil {
		return err
	}
	p.Stats(res)
	return nil
}

func notAvailable(w io.Writer) {
	fmt.Fprintln(w, "Engine not available.")
}
