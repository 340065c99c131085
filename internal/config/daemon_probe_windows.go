//go:build windows

package config

import "golang.org/x/sys/windows"

// processAlive reports whether the PID belongs to a live process.
// Signals cannot probe another process on Windows, so open it and check the
// exit code instead.
func processAlive(pid int) bool {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(pid))
	if err != nil {
		return false
	}
	defer windows.CloseHandle(h)

	var code uint32
	if err := windows.GetExitCodeProcess(h, &code); err != nil {
		return false
	}
	// STILL_ACTIVE is an alias for STATUS_PENDING (0x103); x/sys only
	// exports the latter.
	return code == uint32(windows.STATUS_PENDING)
}
