package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/alnah/go-md2html/internal/process"
)

// maxStderrInError caps how much of a failing engine's stderr is quoted.
const maxStderrInError = 512

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// Command runs an external renderer that reads Markdown on stdin and writes
// HTML on stdout.
type Command struct {
	name    string
	bin     string
	args    []string
	timeout time.Duration
}

// NewCommand returns an engine named name that runs bin with args.
// A zero timeout means no limit beyond ctx.
func NewCommand(name, bin string, timeout time.Duration, args ...string) *Command {
	return &Command{name: name, bin: bin, args: args, timeout: timeout}
}

// Name implements Engine.
func (c *Command) Name() string { return c.name }

// Available implements Engine: the binary must resolve on PATH.
func (c *Command) Available(context.Context) bool {
	_, err := lookPath(c.bin)
	return err == nil
}

// Output implements Engine. On timeout the engine's whole process group is
// killed.
func (c *Command) Output(ctx context.Context, input string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.bin, c.args...) // #nosec G204 -- engine binaries come from the registry
	cmd.Stdin = strings.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	process.Isolate(cmd)
	cmd.Cancel = func() error {
		process.KillProcessGroup(cmd.Process.Pid)
		return nil
	}
	cmd.WaitDelay = time.Second

	err := cmd.Run()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", fmt.Errorf("%w: %s after %s", ErrEngineTimeout, c.name, c.timeout)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v%s", ErrEngineFailed, c.name, err, quoteStderr(stderr.String()))
	}
	return stdout.String(), nil
}

func quoteStderr(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if len(s) > maxStderrInError {
		s = s[:maxStderrInError] + "..."
	}
	return ": " + s
}
