//go:build !windows

// Package process manages the lifetime of engine subprocesses.
package process

import (
	"os/exec"
	"syscall"
)

// Isolate starts cmd in its own process group so KillProcessGroup reaches
// every child the engine spawns (shell wrappers, interpreters).
func Isolate(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setpgid = true
}

// KillProcessGroup kills a process and all its children by sending SIGKILL
// to the process group (negative PID).
func KillProcessGroup(pid int) {
	// Best-effort; exec.Cmd.Wait still reaps the leader.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
