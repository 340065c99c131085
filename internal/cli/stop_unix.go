//go:build !windows

package cli

import (
	"fmt"
	"os"
	"syscall"
)

// stopDaemon asks a running daemon to exit via SIGTERM.
func stopDaemon(pid int) error {
	process, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("failed to find daemon process %d: %w", pid, err)
	}
	if err := process.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("failed to stop daemon: %w", err)
	}
	return nil
}
