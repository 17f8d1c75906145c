// Package report prints conformance runs in the suite's traditional layout:
// one status mark per case in summary mode, full blocks per failure in
// detail mode.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-md2html/internal/runner"
)

const (
	ruleWidth     = 70
	halfRuleWidth = 35
)

// Options select terminal decorations.
type Options struct {
	Color     bool // colored marks
	Highlight bool // syntax-highlight HTML in failure blocks
}

// Printer writes reports to w.
type Printer struct {
	w         io.Writer
	highlight bool
	fail      lipgloss.Style
	pass      lipgloss.Style
}

// New returns a Printer on w.
func New(w io.Writer, opts Options) *Printer {
	r := lipgloss.NewRenderer(w)
	p := &Printer{
		w:         w,
		highlight: opts.Highlight,
		fail:      r.NewStyle(),
		pass:      r.NewStyle(),
	}
	if opts.Color {
		p.fail = p.fail.Foreground(lipgloss.Color("9")).Bold(true)
		p.pass = p.pass.Foreground(lipgloss.Color("10"))
	}
	return p
}

// Preamble lists engines skipped by configuration or missing on this machine,
// followed by a blank line when anything was listed.
func (p *Printer) Preamble(disabled, unavailable []string) {
	listed := false
	if len(disabled) > 0 {
		fmt.Fprintf(p.w, "Engines disabled by configuration: %s\n", strings.Join(disabled, ", "))
		listed = true
	}
	if len(unavailable) > 0 {
		fmt.Fprintf(p.w, "Enabled engines not available:     %s\n", strings.Join(unavailable, ", "))
		listed = true
	}
	if listed {
		fmt.Fprintln(p.w)
	}
}

// NoEngines explains that nothing could run.
func (p *Printer) NoEngines() {
	fmt.Fprintln(p.w, "No engines are enabled. Install or enable some from config_local.yaml")
}

// Extensions heads the engine-specific section of a summary.
func (p *Printer) Extensions() {
	fmt.Fprint(p.w, "\nExtensions:\n\n")
}

// SummaryStart opens an engine's summary row, name padded to width.
func (p *Printer) SummaryStart(name string, width int) {
	fmt.Fprintf(p.w, "%-*s |", width, name)
}

// SummaryMark prints a blank for a pass and F for a failure.
func (p *Printer) SummaryMark(o runner.Outcome) {
	if o.OK {
		fmt.Fprint(p.w, " ")
		return
	}
	fmt.Fprint(p.w, p.fail.Render("F"))
}

// SummaryEnd closes the row with timing and counts.
func (p *Printer) SummaryEnd(r runner.Result) {
	fmt.Fprintf(p.w, "| %6.2fs %4d %4d %3d%%\n", r.Elapsed.Seconds(), r.Total, r.Errors, r.Percent())
}

// Detail prints a dot for a pass and a full comparison for a failure.
func (p *Printer) Detail(o runner.Outcome) {
	if o.OK {
		fmt.Fprint(p.w, p.pass.Render("."))
		return
	}

	rule := strings.Repeat("=", ruleWidth)
	half := strings.Repeat("-", halfRuleWidth)

	fmt.Fprintln(p.w)
	fmt.Fprintf(p.w, "# %s\n", o.Case.Path)
	fmt.Fprintln(p.w, rule)
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, o.Case.Input)
	fmt.Fprintln(p.w)
	fmt.Fprintf(p.w, "%s output:\n\n", half)
	p.html(o.Output)
	fmt.Fprintln(p.w)
	fmt.Fprintf(p.w, "%s expected:\n\n", half)
	p.html(o.Expected)
	fmt.Fprintln(p.w)
	fmt.Fprintf(p.w, "%s diff (-expected +output):\n\n", half)
	fmt.Fprint(p.w, cmp.Diff(strings.Split(o.Expected, "\n"), strings.Split(o.Output, "\n")))
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, rule)
	fmt.Fprintln(p.w)
}

// Stats prints the closing statistics of a detail run.
func (p *Printer) Stats(r runner.Result) {
	labels := []string{"wall time", "total tests", "errors", "error percent"}
	width := 0
	for _, l := range labels {
		width = max(width, len(l))
	}
	width += 2

	fmt.Fprintln(p.w)
	fmt.Fprintf(p.w, "%-*s%.2fs\n", width, labels[0], r.Elapsed.Seconds())
	fmt.Fprintf(p.w, "%-*s%d\n", width, labels[1], r.Total)
	fmt.Fprintf(p.w, "%-*s%d\n", width, labels[2], r.Errors)
	fmt.Fprintf(p.w, "%-*s%d%%\n", width, labels[3], r.Percent())
}

func (p *Printer) html(s string) {
	if p.highlight {
		if err := quick.Highlight(p.w, s, "html", "terminal256", "monokai"); err == nil {
			fmt.Fprintln(p.w)
			return
		}
	}
	fmt.Fprintln(p.w, s)
}
