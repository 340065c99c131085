package engine

import (
	log "github.com/sirupsen/logrus"

	"github.com/frostbar-io/frostbar/internal/shell"
)

// PeekController shows and hides the show-desktop button with hysteresis:
// nothing is dispatched while both the desired visibility and the primary
// taskbar identity are unchanged. Tracking the identity matters after a
// shell restart, when the same visibility must be re-applied to new handles.
type PeekController struct {
	sh          shell.Shell
	lastVisible bool
	lastTaskbar shell.WindowID
}

// NewPeekController creates a controller that will apply on first use.
func NewPeekController(sh shell.Shell) *PeekController {
	return &PeekController{sh: sh, lastVisible: true}
}

// Set reconciles the peek button's visibility on the given primary taskbar.
func (p *PeekController) Set(visible bool, primary shell.WindowID) {
	if visible == p.lastVisible && primary == p.lastTaskbar {
		return
	}
	if primary == 0 {
		return
	}

	tray, ok := p.sh.FindChild(primary, 0, shell.ClassTrayNotify)
	if !ok {
		// Memo untouched, retried on the next reconcile.
		log.Warn("tray notification area not found")
		return
	}
	peekButton, ok := p.sh.FindChild(tray.ID(), 0, shell.ClassPeekButton)
	if !ok {
		log.Warn("show desktop button not found")
		return
	}

	if err := p.sh.ShowControl(peekButton.ID(), visible); err != nil {
		log.Warnf("setting peek button visibility failed: %v", err)
		return
	}

	// The shell does not repaint the notification area on its own.
	// Nudging the overflow control with two release interactions forces an
	// immediate, nearly imperceptible redraw.
	if overflow, ok := p.sh.FindChild(tray.ID(), 0, shell.ClassOverflowButton); ok {
		if err := p.sh.ReleaseButton(overflow.ID()); err == nil {
			_ = p.sh.ReleaseButton(overflow.ID())
		}
	}

	p.lastVisible = visible
	p.lastTaskbar = primary
}
