//go:build windows

package shell

import (
	"fmt"
	"syscall"
	"unsafe"

	ole "github.com/go-ole/go-ole"
)

var (
	clsidVirtualDesktopManager = ole.NewGUID("{AA509086-5CA9-4C25-8F95-589D3C07B48A}")
	iidVirtualDesktopManager   = ole.NewGUID("{A5CD92FF-29BE-454C-8D04-D82879FB3F1B}")
)

// virtualDesktopManager wraps the documented IVirtualDesktopManager COM
// interface, used to test virtual desktop membership of a window.
type virtualDesktopManager struct {
	unknown *ole.IUnknown
}

type virtualDesktopManagerVtbl struct {
	queryInterface                  uintptr
	addRef                          uintptr
	release                         uintptr
	isWindowOnCurrentVirtualDesktop uintptr
	getWindowDesktopId              uintptr
	moveWindowToDesktop             uintptr
}

func newVirtualDesktopManager() (*virtualDesktopManager, error) {
	unknown, err := ole.CreateInstance(clsidVirtualDesktopManager, iidVirtualDesktopManager)
	if err != nil {
		return nil, fmt.Errorf("CoCreateInstance(VirtualDesktopManager): %w", err)
	}
	return &virtualDesktopManager{unknown: unknown}, nil
}

func (v *virtualDesktopManager) vtbl() *virtualDesktopManagerVtbl {
	return (*virtualDesktopManagerVtbl)(unsafe.Pointer(v.unknown.RawVTable))
}

func (v *virtualDesktopManager) isWindowOnCurrentDesktop(hwnd uintptr) (bool, error) {
	var onCurrent int32
	hr, _, _ := syscall.SyscallN(
		v.vtbl().isWindowOnCurrentVirtualDesktop,
		uintptr(unsafe.Pointer(v.unknown)),
		hwnd,
		uintptr(unsafe.Pointer(&onCurrent)))
	if hr != 0 {
		return false, ole.NewError(hr)
	}
	return onCurrent != 0, nil
}

func (v *virtualDesktopManager) release() {
	if v.unknown != nil {
		v.unknown.Release()
		v.unknown = nil
	}
}
