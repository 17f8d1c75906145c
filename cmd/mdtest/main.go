// Command mdtest runs Markdown renderers against a directory of reference
// cases and reports how closely each matches.
//
// Usage:
//
//	mdtest run            summary over every enabled, installed engine
//	mdtest run pandoc     detailed report for one engine
//	mdtest cat-all        concatenate every case into all.tmp.md
//	mdtest cat-input      concatenate every input into inputs.tmp.md
package main

import (
	"context"
	"fmt"
	"os"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args[1:], DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain executes the command tree and returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	root := newRootCmd(env)
	root.SetArgs(args)
	root.SetOut(env.Stdout)
	root.SetErr(env.Stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(env.Stderr, "mdtest: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}
