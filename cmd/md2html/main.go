// Command md2html reads Markdown on stdin and writes HTML on stdout.
//
// Usage:
//
//	md2html < README.md > README.html
//
// Conversion uses goldmark's default CommonMark rules. Diagnostics go to
// stderr; stdout only ever carries the HTML.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	md2html "github.com/alnah/go-md2html"
)

// Version is set at build time via ldflags.
var Version = "dev"

const usage = `Usage: md2html < input.md > output.html

Reads Markdown from stdin until EOF and writes HTML to stdout.
Conversion takes no options. The flags below only print information
and exit without reading stdin.

Flags:
`

// ErrUnexpectedArgs indicates positional arguments were given.
var ErrUnexpectedArgs = errors.New("md2html takes no arguments")

func main() {
	watchBrokenPipe()
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain runs the filter and returns the process exit code.
func runMain(args []string, env *Environment) int {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	showVersion := fs.BoolP("version", "V", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprint(env.Stderr, usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	if *showVersion {
		fmt.Fprintf(env.Stdout, "go-md2html %s\n", Version)
		return ExitSuccess
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(env.Stderr, "%v: got %q\n", ErrUnexpectedArgs, fs.Args())
		fs.Usage()
		return ExitUsage
	}

	filter := md2html.NewFilter(md2html.NewConverter())
	if err := filter.Run(context.Background(), env.Stdin, env.Stdout); err != nil {
		fmt.Fprintf(env.Stderr, "md2html: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}
