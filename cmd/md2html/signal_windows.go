//go:build windows

package main

// watchBrokenPipe is a no-op: Windows reports closed pipes as write errors.
func watchBrokenPipe() {}
