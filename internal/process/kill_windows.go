//go:build windows

// Package process manages the lifetime of engine subprocesses.
package process

import (
	"os/exec"
	"strconv"
)

// Isolate is a no-op on Windows; taskkill /T walks the tree instead.
func Isolate(*exec.Cmd) {}

// KillProcessGroup kills a process and all its children using taskkill.
// /F = force kill, /T = terminate child processes (tree kill).
func KillProcessGroup(pid int) {
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
