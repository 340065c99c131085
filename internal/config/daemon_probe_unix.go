//go:build !windows

package config

import (
	"os"
	"syscall"
)

// processAlive reports whether the PID belongs to a live process.
// Signal 0 only probes for existence.
func processAlive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}
