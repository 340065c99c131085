package engine

import (
	log "github.com/sirupsen/logrus"

	"github.com/frostbar-io/frostbar/internal/shell"
)

// TaskbarState is the classified state of one taskbar surface.
type TaskbarState int

const (
	// StateNormal applies the configured baseline appearance.
	StateNormal TaskbarState = iota
	// StateWindowMaximised applies the configured dynamic appearance.
	StateWindowMaximised
	// StateStartMenuOpen restores the stock appearance.
	StateStartMenuOpen
)

func (s TaskbarState) String() string {
	switch s {
	case StateWindowMaximised:
		return "window-maximised"
	case StateStartMenuOpen:
		return "start-menu-open"
	default:
		return "normal"
	}
}

// Taskbar is one taskbar surface tracked per monitor. The registry owns it;
// other components hold only transient references during a tick.
type Taskbar struct {
	Monitor shell.MonitorID
	ID      shell.WindowID
	State   TaskbarState
}

// Registry tracks one taskbar per monitor. It is rebuilt wholesale whenever
// the display topology changes or the shell restarts, so stale handles are
// never retained.
type Registry struct {
	sh       shell.Shell
	primary  shell.WindowID
	taskbars map[shell.MonitorID]*Taskbar
}

// NewRegistry creates an empty registry; call Refresh to populate it.
func NewRegistry(sh shell.Shell) *Registry {
	return &Registry{
		sh:       sh,
		taskbars: make(map[shell.MonitorID]*Taskbar),
	}
}

// Refresh rebuilds the monitor map from the primary taskbar and every
// secondary taskbar currently present.
func (r *Registry) Refresh(verbose bool) {
	if verbose {
		log.Debug("refreshing taskbar handles")
	}

	// Older handles are invalid after a shell restart, start from scratch.
	r.taskbars = make(map[shell.MonitorID]*Taskbar)
	r.primary = 0

	primary, ok := r.sh.FindWindow(shell.ClassPrimaryTaskbar, "")
	if !ok {
		log.Warn("primary taskbar not found")
		return
	}
	r.primary = primary.ID()
	r.taskbars[primary.Monitor()] = &Taskbar{
		Monitor: primary.Monitor(),
		ID:      primary.ID(),
		State:   StateNormal,
	}

	var after shell.WindowID
	for {
		secondary, ok := r.sh.FindChild(0, after, shell.ClassSecondaryTaskbar)
		if !ok {
			break
		}
		r.taskbars[secondary.Monitor()] = &Taskbar{
			Monitor: secondary.Monitor(),
			ID:      secondary.ID(),
			State:   StateNormal,
		}
		after = secondary.ID()
	}
}

// Primary returns the primary taskbar's identity, zero when absent.
func (r *Registry) Primary() shell.WindowID { return r.primary }

// At returns the taskbar hosted on the given monitor.
func (r *Registry) At(m shell.MonitorID) (*Taskbar, bool) {
	tb, ok := r.taskbars[m]
	return tb, ok
}

// Each visits every tracked taskbar.
func (r *Registry) Each(visit func(*Taskbar)) {
	for _, tb := range r.taskbars {
		visit(tb)
	}
}

// Len returns the number of tracked taskbars.
func (r *Registry) Len() int { return len(r.taskbars) }
