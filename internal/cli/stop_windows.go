//go:build windows

package cli

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/frostbar-io/frostbar/internal/shell"
)

const wmClose = 0x0010

var (
	user32                = windows.NewLazySystemDLL("user32.dll")
	procFindWindow        = user32.NewProc("FindWindowW")
	procSendNotifyMessage = user32.NewProc("SendNotifyMessageW")
)

// stopDaemon asks a running daemon to exit by closing its hidden
// notification window. Signals cannot be delivered to another process on
// Windows.
func stopDaemon(pid int) error {
	class, err := windows.UTF16PtrFromString(shell.ClassNotifyWindow)
	if err != nil {
		return err
	}

	hwnd, _, _ := procFindWindow.Call(uintptr(unsafe.Pointer(class)), 0)
	if hwnd == 0 {
		return fmt.Errorf("daemon notification window not found (PID %d)", pid)
	}

	ret, _, callErr := procSendNotifyMessage.Call(hwnd, wmClose, 0, 0)
	if ret == 0 {
		return fmt.Errorf("failed to stop daemon: %w", callErr)
	}
	return nil
}
