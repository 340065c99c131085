package shell

import "sync"

// FakeWindow is a scripted window for the Fake shell.
type FakeWindow struct {
	Handle     WindowID
	ClassName  string
	Text       string
	ExeName    string
	IsVisible  bool
	Maximised  bool
	IsCloaked  bool
	OffDesktop bool
	Display    MonitorID
	Parent     WindowID
}

func (w *FakeWindow) ID() WindowID           { return w.Handle }
func (w *FakeWindow) Class() string          { return w.ClassName }
func (w *FakeWindow) Title() string          { return w.Text }
func (w *FakeWindow) Filename() string       { return w.ExeName }
func (w *FakeWindow) Visible() bool          { return w.IsVisible }
func (w *FakeWindow) Maximized() bool        { return w.Maximised }
func (w *FakeWindow) Cloaked() bool          { return w.IsCloaked }
func (w *FakeWindow) OnCurrentDesktop() bool { return !w.OffDesktop }
func (w *FakeWindow) Monitor() MonitorID     { return w.Display }

// AccentCall records one SetAccent dispatch.
type AccentCall struct {
	ID     WindowID
	Accent Accent
	Color  uint32
}

// ShowCall records one ShowControl dispatch.
type ShowCall struct {
	ID      WindowID
	Visible bool
}

// Fake is an in-memory Shell for tests and dry runs. Scripted windows stand
// in for the desktop; every compositing call is recorded for inspection.
type Fake struct {
	mu sync.Mutex

	// TopLevel are the windows returned by Windows and searched by
	// FindWindow and by FindChild with a zero parent. Surfaces such as
	// taskbars belong here too.
	TopLevel []*FakeWindow
	// Children are child controls, searched by FindChild.
	Children []*FakeWindow

	Fluent bool

	AccentCalls  []AccentCall
	ThemeReloads []WindowID
	ShowCalls    []ShowCall
	Releases     []WindowID

	events chan Event
}

// NewFake creates an empty fake shell with fluent support enabled.
func NewFake() *Fake {
	return &Fake{
		Fluent: true,
		events: make(chan Event, 16),
	}
}

// AddWindow appends a top-level window.
func (f *Fake) AddWindow(w *FakeWindow) *FakeWindow {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.TopLevel = append(f.TopLevel, w)
	return w
}

// AddChild appends a child control under the given parent.
func (f *Fake) AddChild(w *FakeWindow) *FakeWindow {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Children = append(f.Children, w)
	return w
}

// RemoveWindow drops a top-level window by ID.
func (f *Fake) RemoveWindow(id WindowID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.TopLevel[:0]
	for _, w := range f.TopLevel {
		if w.Handle != id {
			kept = append(kept, w)
		}
	}
	f.TopLevel = kept
}

// PushEvent delivers a shell notification, dropping it if the channel is full.
func (f *Fake) PushEvent(ev Event) {
	select {
	case f.events <- ev:
	default:
	}
}

func (f *Fake) Windows(visit func(Window) bool) error {
	f.mu.Lock()
	windows := make([]*FakeWindow, len(f.TopLevel))
	copy(windows, f.TopLevel)
	f.mu.Unlock()

	for _, w := range windows {
		if !visit(w) {
			break
		}
	}
	return nil
}

func (f *Fake) FindWindow(class, title string) (Window, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, w := range f.TopLevel {
		if w.ClassName == class && (title == "" || w.Text == title) {
			return w, true
		}
	}
	return nil, false
}

func (f *Fake) FindChild(parent, after WindowID, class string) (Window, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pool := f.Children
	if parent == 0 {
		pool = f.TopLevel
	}

	skipping := after != 0
	for _, w := range pool {
		if skipping {
			if w.Handle == after {
				skipping = false
			}
			continue
		}
		if w.Parent == parent && w.ClassName == class {
			return w, true
		}
	}
	return nil, false
}

func (f *Fake) SetAccent(id WindowID, accent Accent, color uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.AccentCalls = append(f.AccentCalls, AccentCall{ID: id, Accent: accent, Color: color})
	return nil
}

func (f *Fake) ReloadTheme(id WindowID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ThemeReloads = append(f.ThemeReloads, id)
	return nil
}

func (f *Fake) ShowControl(id WindowID, visible bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ShowCalls = append(f.ShowCalls, ShowCall{ID: id, Visible: visible})
	return nil
}

func (f *Fake) ReleaseButton(id WindowID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Releases = append(f.Releases, id)
	return nil
}

func (f *Fake) FluentAvailable() bool { return f.Fluent }

func (f *Fake) Events() <-chan Event { return f.events }

func (f *Fake) Close() error { return nil }
