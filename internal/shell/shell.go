// Package shell abstracts the OS shell surfaces the engine observes and
// composites: top-level windows, taskbars, the start menu, and the
// show-desktop button.
package shell

// WindowID is an opaque, equality-comparable window identity. It is only
// meaningful to the Shell implementation that produced it.
type WindowID uintptr

// MonitorID is an opaque monitor identity.
type MonitorID uintptr

// Accent is the compositing mode sent to the shell for a surface.
type Accent uint32

const (
	AccentDisabled            Accent = 0
	AccentGradient            Accent = 1 // opaque tint
	AccentTransparentGradient Accent = 2 // translucent tint
	AccentBlurBehind          Accent = 3
	AccentFluent              Accent = 4 // needs a non-zero alpha to render

	// AccentStock is a sentinel: instead of a composition attribute the
	// surface gets a theme-reload notification and paints its stock look.
	AccentStock Accent = 150
)

// Well-known shell surface classes and titles.
const (
	ClassPrimaryTaskbar   = "Shell_TrayWnd"
	ClassSecondaryTaskbar = "Shell_SecondaryTrayWnd"
	ClassTrayNotify       = "TrayNotifyWnd"
	ClassPeekButton       = "TrayShowDesktopButtonWClass"
	ClassOverflowButton   = "Button"
	ClassCoreWindow       = "Windows.UI.Core.CoreWindow"
	TitleStartMenu        = "Start"

	// ClassNotifyWindow is the daemon's hidden notification window. Closing
	// it from another process requests a clean shutdown.
	ClassNotifyWindow = "FrostbarNotifyWindow"
)

// Window is a read-only view of a top-level window.
type Window interface {
	ID() WindowID
	Class() string
	Title() string
	// Filename is the base name of the owning process executable.
	Filename() string
	Visible() bool
	Maximized() bool
	// Cloaked reports whether the compositor marks the window as not
	// actually visible, e.g. on an inactive virtual desktop.
	Cloaked() bool
	OnCurrentDesktop() bool
	Monitor() MonitorID
}

// EventType identifies a shell notification.
type EventType int

const (
	EventDisplayChanged EventType = iota // display topology changed
	EventTaskbarCreated                  // shell (re)started, taskbar handles are stale
	EventPeekStarted
	EventPeekStopped
	EventStopRequested // another process asked the daemon to exit
)

// Event is a shell notification delivered on the Events channel.
type Event struct {
	Type EventType
}

// Shell is the OS collaborator consumed by the engine. Implementations must
// not block in any method; every call is made from the engine's tick loop.
type Shell interface {
	// Windows visits every top-level window until visit returns false.
	Windows(visit func(Window) bool) error

	// FindWindow locates a top-level surface by class, and title when
	// title is non-empty.
	FindWindow(class, title string) (Window, bool)

	// FindChild locates a child of parent by class, resuming the search
	// after the given sibling (zero to start from the first child).
	// A zero parent searches top-level windows.
	FindChild(parent, after WindowID, class string) (Window, bool)

	// SetAccent sends compositing parameters for a surface. The color is
	// packed 0xAABBGGRR as the compositing backend expects.
	SetAccent(id WindowID, accent Accent, color uint32) error

	// ReloadTheme asks a surface to reload its theme, restoring the
	// stock appearance.
	ReloadTheme(id WindowID) error

	// ShowControl sets a control's visibility.
	ShowControl(id WindowID, visible bool) error

	// ReleaseButton simulates a button-release interaction on a control.
	ReleaseButton(id WindowID) error

	// FluentAvailable reports whether the platform supports the fluent
	// accent.
	FluentAvailable() bool

	// Events returns the shell notification channel. Implementations
	// drop notifications rather than block when the channel is full.
	Events() <-chan Event

	Close() error
}
