package engine

import (
	log "github.com/sirupsen/logrus"

	"github.com/frostbar-io/frostbar/internal/models"
	"github.com/frostbar-io/frostbar/internal/shell"
)

// runClassification derives every taskbar's state from the current desktop
// in one pass. All states are reset to Normal first, so nothing survives
// from the previous pass. Promotion order within a pass: maximized window,
// then start menu (which overrides it), then the peek override (which
// overrides everything).
func (e *Engine) runClassification() {
	s := e.settings

	e.shouldShowPeek = s.Peek == models.PeekEnabled
	e.registry.Each(func(tb *Taskbar) { tb.State = StateNormal })

	if s.Dynamic.Workspace || s.Peek == models.PeekDynamic {
		if err := e.sh.Windows(e.classifyWindow); err != nil {
			log.Warnf("window enumeration failed: %v", err)
		}
	}

	e.peek.Set(e.shouldShowPeek, e.registry.Primary())

	if s.Dynamic.StartMenu {
		if start, ok := e.sh.FindWindow(shell.ClassCoreWindow, shell.TitleStartMenu); ok &&
			start.Visible() && !start.Cloaked() {
			if tb, ok := e.registry.At(start.Monitor()); ok {
				tb.State = StateStartMenuOpen
			}
		}
	}

	// An active peek already reveals the desktop; dynamic blur on top of it
	// just flickers. Force everything back to normal for its duration.
	if s.Dynamic.Workspace && s.Dynamic.NormalOnPeek && e.peekActive {
		e.registry.Each(func(tb *Taskbar) { tb.State = StateNormal })
	}
}

// classifyWindow is the enumeration callback. A window only counts when it
// is visible, maximized, not cloaked, not blacklisted, and on the active
// virtual desktop. Cloaking alone does not reliably cover inactive desktops,
// so both are checked, the desktop membership last.
func (e *Engine) classifyWindow(w shell.Window) bool {
	if !w.Visible() || !w.Maximized() || w.Cloaked() ||
		e.filter.Match(w) || !w.OnCurrentDesktop() {
		return true
	}

	tb, ok := e.registry.At(w.Monitor())
	if !ok {
		// Monitor without a tracked taskbar, nothing to promote.
		return true
	}

	if e.settings.Dynamic.Workspace {
		tb.State = StateWindowMaximised
	}
	if e.settings.Peek == models.PeekDynamic && tb.ID == e.registry.Primary() {
		e.shouldShowPeek = true
	}
	return true
}
