//go:build !windows

package main

import (
	"os"
	"os/signal"
	"syscall"
)

// watchBrokenPipe routes SIGPIPE to a channel so a write to a closed stdout
// fails with EPIPE and exits through the normal error path instead of the
// runtime's signal exit.
func watchBrokenPipe() {
	signal.Notify(make(chan os.Signal, 1), syscall.SIGPIPE)
}
