// Package runner feeds conformance cases to an engine and compares the
// normalized output with the expected HTML.
package runner

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-md2html/internal/engine"
	"github.com/alnah/go-md2html/internal/normalize"
	"github.com/alnah/go-md2html/internal/suite"
)

// engineErrorPrefix marks an engine failure recorded in place of its output.
const engineErrorPrefix = "ENGINE ERROR: "

// Outcome is the verdict for one case.
type Outcome struct {
	Case     suite.Case
	Output   string // normalized engine output
	Expected string // normalized expected output
	OK       bool
}

// Result summarizes one run.
type Result struct {
	Elapsed  time.Duration
	Total    int
	Errors   int
	Outcomes []Outcome
}

// Percent is the truncated share of failed cases, 0 for an empty run.
func (r Result) Percent() int {
	if r.Total == 0 {
		return 0
	}
	return r.Errors * 100 / r.Total
}

// Options tune a run.
type Options struct {
	// Workers bounds concurrent cases; 0 uses GOMAXPROCS.
	Workers int
	// OnOutcome is called for each case in input order, as soon as that case
	// and all earlier ones are done.
	OnOutcome func(Outcome)
}

// Run evaluates cases against eng. Engine failures do not stop the run: the
// error text stands in for the output and the case fails. The returned error
// is ctx's, if it ended first.
func Run(ctx context.Context, cases []suite.Case, eng engine.Engine, opts Options) (Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	start := time.Now()

	slots := make([]chan Outcome, len(cases))
	for i := range slots {
		slots[i] = make(chan Outcome, 1)
	}

	var g errgroup.Group
	g.SetLimit(workers)
	go func() {
		for i, c := range cases {
			g.Go(func() error {
				slots[i] <- Evaluate(ctx, eng, c)
				return nil
			})
		}
	}()

	res := Result{Outcomes: make([]Outcome, 0, len(cases))}
	for _, slot := range slots {
		o := <-slot
		res.Total++
		if !o.OK {
			res.Errors++
		}
		res.Outcomes = append(res.Outcomes, o)
		if opts.OnOutcome != nil {
			opts.OnOutcome(o)
		}
	}
	_ = g.Wait()

	res.Elapsed = time.Since(start)
	return res, ctx.Err()
}

// Evaluate renders one case and compares DOM-normalized HTML.
func Evaluate(ctx context.Context, eng engine.Engine, c suite.Case) Outcome {
	out, err := eng.Output(ctx, c.Input)
	if err != nil {
		out = engineErrorPrefix + err.Error()
	}

	return Outcome{
		Case:     c,
		Output:   normalized(out),
		Expected: normalized(c.Output),
		OK:       normalize.Equal(out, c.Output),
	}
}

func normalized(s string) string {
	n, err := normalize.DOM(s)
	if err != nil {
		return s
	}
	return n
}
