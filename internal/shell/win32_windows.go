//go:build windows

package shell

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"syscall"
	"unsafe"

	ole "github.com/go-ole/go-ole"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	dwmapi = windows.NewLazySystemDLL("dwmapi.dll")
	ntdll  = windows.NewLazySystemDLL("ntdll.dll")

	procFindWindow                    = user32.NewProc("FindWindowW")
	procFindWindowEx                  = user32.NewProc("FindWindowExW")
	procEnumWindows                   = user32.NewProc("EnumWindows")
	procIsWindowVisible               = user32.NewProc("IsWindowVisible")
	procGetWindowPlacement            = user32.NewProc("GetWindowPlacement")
	procGetClassName                  = user32.NewProc("GetClassNameW")
	procGetWindowText                 = user32.NewProc("GetWindowTextW")
	procGetWindowThreadProcessId      = user32.NewProc("GetWindowThreadProcessId")
	procSendNotifyMessage             = user32.NewProc("SendNotifyMessageW")
	procShowWindow                    = user32.NewProc("ShowWindow")
	procMonitorFromWindow             = user32.NewProc("MonitorFromWindow")
	procSetWindowCompositionAttribute = user32.NewProc("SetWindowCompositionAttribute")
	procSetWinEventHook               = user32.NewProc("SetWinEventHook")
	procUnhookWinEvent                = user32.NewProc("UnhookWinEvent")
	procGetMessage                    = user32.NewProc("GetMessageW")
	procTranslateMessage              = user32.NewProc("TranslateMessage")
	procDispatchMessage               = user32.NewProc("DispatchMessageW")
	procDefWindowProc                 = user32.NewProc("DefWindowProcW")
	procRegisterClassEx               = user32.NewProc("RegisterClassExW")
	procCreateWindowEx                = user32.NewProc("CreateWindowExW")
	procRegisterWindowMessage         = user32.NewProc("RegisterWindowMessageW")
	procPostThreadMessage             = user32.NewProc("PostThreadMessageW")
	procGetCurrentThreadId            = windows.NewLazySystemDLL("kernel32.dll").NewProc("GetCurrentThreadId")

	procDwmGetWindowAttribute = dwmapi.NewProc("DwmGetWindowAttribute")

	procRtlGetNtVersionNumbers = ntdll.NewProc("RtlGetNtVersionNumbers")
)

const (
	swShowMaximized = 3
	swShowNormal    = 1
	swHide          = 0

	dwmwaCloaked = 14

	wmClose         = 0x0010
	wmDisplayChange = 0x007E
	wmThemeChanged  = 0x031A
	wmLButtonUp     = 0x0202
	wmQuit          = 0x0012

	eventSystemPeekStart = 0x0021
	eventSystemPeekEnd   = 0x0022
	winEventOutOfContext = 0x0000

	wcaAccentPolicy = 19

	monitorDefaultToPrimary = 1

	// First Windows 10 build that ships the fluent (acrylic) accent.
	minFluentBuild = 17063
)

type accentPolicy struct {
	AccentState uint32
	Flags       uint32
	Color       uint32
	AnimationID uint32
}

type winCompatData struct {
	Attrib uintptr
	Data   unsafe.Pointer
	Size   uintptr
}

type windowPlacement struct {
	Length         uint32
	Flags          uint32
	ShowCmd        uint32
	MinPosition    [2]int32
	MaxPosition    [2]int32
	NormalPosition [4]int32
}

type msg struct {
	HWnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      [2]int32
}

type wndClassEx struct {
	Size       uint32
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   windows.Handle
	Icon       uintptr
	Cursor     uintptr
	Background uintptr
	MenuName   *uint16
	ClassName  *uint16
	IconSm     uintptr
}

// win32Shell is the production Shell backed by user32/dwmapi.
type win32Shell struct {
	events     chan Event
	fluent     bool
	swcaOK     bool
	desktops   *virtualDesktopManager
	hookThread uint32
	taskbarMsg uint32
	closeOnce  bool

	// enumCB is created once; NewCallback trampolines are never released
	// and the enumeration runs for the life of the process.
	enumCB    uintptr
	enumVisit func(Window) bool
}

// New opens the platform shell backend.
func New() (Shell, error) {
	s := &win32Shell{
		events: make(chan Event, 16),
		fluent: osBuild() >= minFluentBuild,
		swcaOK: procSetWindowCompositionAttribute.Find() == nil,
	}
	if !s.swcaOK {
		log.Warn("SetWindowCompositionAttribute unavailable, compositing disabled")
	}
	s.enumCB = syscall.NewCallback(func(hwnd, lparam uintptr) uintptr {
		if s.enumVisit(&win32Window{hwnd: hwnd, sh: s}) {
			return 1
		}
		return 0
	})

	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		log.Warnf("COM initialization failed: %v", err)
	} else if vdm, err := newVirtualDesktopManager(); err != nil {
		log.Warnf("virtual desktop manager unavailable: %v", err)
	} else {
		s.desktops = vdm
	}

	ready := make(chan struct{})
	go s.runEventLoop(ready)
	<-ready

	return s, nil
}

func osBuild() uint32 {
	if procRtlGetNtVersionNumbers.Find() != nil {
		return 0
	}
	var major, minor, build uint32
	procRtlGetNtVersionNumbers.Call(
		uintptr(unsafe.Pointer(&major)),
		uintptr(unsafe.Pointer(&minor)),
		uintptr(unsafe.Pointer(&build)))
	return build & 0x0FFFFFFF
}

func (s *win32Shell) push(ev Event) {
	select {
	case s.events <- ev:
	default:
	}
}

// runEventLoop owns the thread that receives the peek event hook and the
// hidden notification window's broadcasts. Out-of-context win event hooks
// only fire on a thread that pumps messages.
func (s *win32Shell) runEventLoop(ready chan<- struct{}) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	tid, _, _ := procGetCurrentThreadId.Call()
	s.hookThread = uint32(tid)

	peekCallback := syscall.NewCallback(func(hook, event, hwnd, object, child, thread, time uintptr) uintptr {
		switch uint32(event) {
		case eventSystemPeekStart:
			s.push(Event{Type: EventPeekStarted})
		case eventSystemPeekEnd:
			s.push(Event{Type: EventPeekStopped})
		}
		return 0
	})
	hook, _, _ := procSetWinEventHook.Call(
		eventSystemPeekStart, eventSystemPeekEnd,
		0, peekCallback, 0, 0, winEventOutOfContext)
	if hook == 0 {
		log.Warn("peek event hook registration failed")
	}
	defer procUnhookWinEvent.Call(hook)

	s.createNotifyWindow()
	close(ready)

	var m msg
	for {
		ret, _, _ := procGetMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		if int32(ret) <= 0 {
			return
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessage.Call(uintptr(unsafe.Pointer(&m)))
	}
}

// createNotifyWindow registers a hidden top-level window so the thread
// receives WM_DISPLAYCHANGE and TaskbarCreated broadcasts.
func (s *win32Shell) createNotifyWindow() {
	name, _ := windows.UTF16PtrFromString("TaskbarCreated")
	taskbarMsg, _, _ := procRegisterWindowMessage.Call(uintptr(unsafe.Pointer(name)))
	s.taskbarMsg = uint32(taskbarMsg)

	wndProc := syscall.NewCallback(func(hwnd uintptr, message uint32, wparam, lparam uintptr) uintptr {
		switch {
		case message == wmDisplayChange:
			s.push(Event{Type: EventDisplayChanged})
			return 0
		case message == wmClose:
			// frostbar daemon stop closes this window; signals cannot
			// reach another process here.
			s.push(Event{Type: EventStopRequested})
			return 0
		case s.taskbarMsg != 0 && message == s.taskbarMsg:
			s.push(Event{Type: EventTaskbarCreated})
			return 0
		}
		ret, _, _ := procDefWindowProc.Call(hwnd, uintptr(message), wparam, lparam)
		return ret
	})

	className, _ := windows.UTF16PtrFromString(ClassNotifyWindow)
	wc := wndClassEx{
		Size:      uint32(unsafe.Sizeof(wndClassEx{})),
		WndProc:   wndProc,
		ClassName: className,
	}
	atom, _, err := procRegisterClassEx.Call(uintptr(unsafe.Pointer(&wc)))
	if atom == 0 {
		log.Warnf("notification window class registration failed: %v", err)
		return
	}

	hwnd, _, err := procCreateWindowEx.Call(
		0,
		uintptr(unsafe.Pointer(className)),
		0,
		0, // WS_OVERLAPPED, never shown
		0, 0, 0, 0,
		0, 0, 0, 0)
	if hwnd == 0 {
		log.Warnf("notification window creation failed: %v", err)
	}
}

// win32Window implements Window over an HWND. Attributes are queried on
// demand; the engine touches cheap ones first.
type win32Window struct {
	hwnd uintptr
	sh   *win32Shell
}

func (w *win32Window) ID() WindowID { return WindowID(w.hwnd) }

func (w *win32Window) Class() string {
	var buf [256]uint16
	n, _, _ := procGetClassName.Call(w.hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf[:n])
}

func (w *win32Window) Title() string {
	var buf [512]uint16
	n, _, _ := procGetWindowText.Call(w.hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf[:n])
}

func (w *win32Window) Filename() string {
	var pid uint32
	procGetWindowThreadProcessId.Call(w.hwnd, uintptr(unsafe.Pointer(&pid)))
	if pid == 0 {
		return ""
	}

	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return ""
	}
	defer windows.CloseHandle(h)

	buf := make([]uint16, windows.MAX_LONG_PATH)
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(h, 0, &buf[0], &size); err != nil {
		return ""
	}
	return filepath.Base(windows.UTF16ToString(buf[:size]))
}

func (w *win32Window) Visible() bool {
	ret, _, _ := procIsWindowVisible.Call(w.hwnd)
	return ret != 0
}

func (w *win32Window) Maximized() bool {
	wp := windowPlacement{Length: uint32(unsafe.Sizeof(windowPlacement{}))}
	ret, _, _ := procGetWindowPlacement.Call(w.hwnd, uintptr(unsafe.Pointer(&wp)))
	return ret != 0 && wp.ShowCmd == swShowMaximized
}

func (w *win32Window) Cloaked() bool {
	var cloaked uint32
	hr, _, _ := procDwmGetWindowAttribute.Call(
		w.hwnd, dwmwaCloaked,
		uintptr(unsafe.Pointer(&cloaked)), unsafe.Sizeof(cloaked))
	return hr == 0 && cloaked != 0
}

func (w *win32Window) OnCurrentDesktop() bool {
	if w.sh.desktops == nil {
		// No virtual desktop manager, assume current. Cloaked already
		// filters windows parked on inactive desktops.
		return true
	}
	on, err := w.sh.desktops.isWindowOnCurrentDesktop(w.hwnd)
	if err != nil {
		return true
	}
	return on
}

func (w *win32Window) Monitor() MonitorID {
	m, _, _ := procMonitorFromWindow.Call(w.hwnd, monitorDefaultToPrimary)
	return MonitorID(m)
}

// Windows enumerates top-level windows. Only called from the engine tick
// loop, so the single visit slot is never contended.
func (s *win32Shell) Windows(visit func(Window) bool) error {
	s.enumVisit = visit
	defer func() { s.enumVisit = nil }()

	ret, _, err := procEnumWindows.Call(s.enumCB, 0)
	if ret == 0 {
		return fmt.Errorf("EnumWindows: %w", err)
	}
	return nil
}

func (s *win32Shell) FindWindow(class, title string) (Window, bool) {
	classPtr, _ := windows.UTF16PtrFromString(class)
	var titleArg uintptr
	if title != "" {
		titlePtr, _ := windows.UTF16PtrFromString(title)
		titleArg = uintptr(unsafe.Pointer(titlePtr))
	}
	hwnd, _, _ := procFindWindow.Call(uintptr(unsafe.Pointer(classPtr)), titleArg)
	if hwnd == 0 {
		return nil, false
	}
	return &win32Window{hwnd: hwnd, sh: s}, true
}

func (s *win32Shell) FindChild(parent, after WindowID, class string) (Window, bool) {
	classPtr, _ := windows.UTF16PtrFromString(class)
	hwnd, _, _ := procFindWindowEx.Call(
		uintptr(parent), uintptr(after),
		uintptr(unsafe.Pointer(classPtr)), 0)
	if hwnd == 0 {
		return nil, false
	}
	return &win32Window{hwnd: hwnd, sh: s}, true
}

func (s *win32Shell) SetAccent(id WindowID, accent Accent, color uint32) error {
	if !s.swcaOK {
		return errors.New("SetWindowCompositionAttribute not available")
	}

	policy := accentPolicy{
		AccentState: uint32(accent),
		Flags:       2,
		Color:       color,
	}
	data := winCompatData{
		Attrib: wcaAccentPolicy,
		Data:   unsafe.Pointer(&policy),
		Size:   unsafe.Sizeof(policy),
	}

	ret, _, err := procSetWindowCompositionAttribute.Call(
		uintptr(id), uintptr(unsafe.Pointer(&data)))
	if ret == 0 {
		return fmt.Errorf("SetWindowCompositionAttribute: %w", err)
	}
	return nil
}

func (s *win32Shell) ReloadTheme(id WindowID) error {
	ret, _, err := procSendNotifyMessage.Call(uintptr(id), wmThemeChanged, 0, 0)
	if ret == 0 {
		return fmt.Errorf("WM_THEMECHANGED: %w", err)
	}
	return nil
}

func (s *win32Shell) ShowControl(id WindowID, visible bool) error {
	cmd := uintptr(swHide)
	if visible {
		cmd = swShowNormal
	}
	procShowWindow.Call(uintptr(id), cmd)
	return nil
}

func (s *win32Shell) ReleaseButton(id WindowID) error {
	ret, _, err := procSendNotifyMessage.Call(uintptr(id), wmLButtonUp, 0, 0)
	if ret == 0 {
		return fmt.Errorf("WM_LBUTTONUP: %w", err)
	}
	return nil
}

func (s *win32Shell) FluentAvailable() bool { return s.fluent }

func (s *win32Shell) Events() <-chan Event { return s.events }

func (s *win32Shell) Close() error {
	if s.closeOnce {
		return nil
	}
	s.closeOnce = true
	if s.hookThread != 0 {
		procPostThreadMessage.Call(uintptr(s.hookThread), wmQuit, 0, 0)
	}
	if s.desktops != nil {
		s.desktops.release()
	}
	return nil
}
