package engine

import (
	log "github.com/sirupsen/logrus"

	"github.com/frostbar-io/frostbar/internal/models"
	"github.com/frostbar-io/frostbar/internal/shell"
)

// Params are resolved compositing parameters for one taskbar state.
// Color is packed 0xAARRGGBB; the applicator reorders it for the backend.
type Params struct {
	Accent shell.Accent
	Color  uint32
}

// accentOf maps a configured accent name to the shell accent value.
func accentOf(a models.Accent) shell.Accent {
	switch a {
	case models.AccentOpaque:
		return shell.AccentGradient
	case models.AccentClear:
		return shell.AccentTransparentGradient
	case models.AccentBlur:
		return shell.AccentBlurBehind
	case models.AccentFluent:
		return shell.AccentFluent
	default:
		return shell.AccentStock
	}
}

// colorOf parses a configured color, falling back to transparent black on a
// malformed value. Settings normalization logs malformed colors at load.
func colorOf(s string) uint32 {
	c, err := models.ParseColor(s)
	if err != nil {
		return 0
	}
	return c
}

// ParamsFor maps a taskbar state to compositing parameters. Pure and total;
// dispatch side effects live in Applicator.Apply.
func ParamsFor(state TaskbarState, s *models.Settings) Params {
	switch state {
	case StateStartMenuOpen:
		return Params{Accent: shell.AccentStock}
	case StateWindowMaximised:
		return Params{
			Accent: accentOf(s.Dynamic.Appearance.Accent),
			Color:  colorOf(s.Dynamic.Appearance.Color),
		}
	default:
		return Params{
			Accent: accentOf(s.Taskbar.Accent),
			Color:  colorOf(s.Taskbar.Color),
		}
	}
}

// Applicator issues compositing calls, suppressing the redundant ones.
//
// The stock accent is applied through a theme-reload broadcast, which is
// expensive for the shell process, so it is memoized per window and only
// sent once per transition into the stock state.
type Applicator struct {
	sh     shell.Shell
	normal map[shell.WindowID]bool
}

// NewApplicator creates an applicator with an empty memo.
func NewApplicator(sh shell.Shell) *Applicator {
	return &Applicator{
		sh:     sh,
		normal: make(map[shell.WindowID]bool),
	}
}

// Reset drops the per-window memo. Called when the registry is rebuilt so
// recycled handles do not inherit stale entries.
func (a *Applicator) Reset() {
	a.normal = make(map[shell.WindowID]bool)
}

// Apply dispatches the given parameters to a surface.
func (a *Applicator) Apply(id shell.WindowID, p Params) {
	if p.Accent == shell.AccentStock {
		if !a.normal[id] {
			if err := a.sh.ReloadTheme(id); err != nil {
				log.Warnf("theme reload for %#x failed: %v", uintptr(id), err)
			}
			a.normal[id] = true
		}
		return
	}

	color := p.Color
	// Fluent refuses a completely transparent material.
	if p.Accent == shell.AccentFluent && color>>24 == 0 {
		color = 0x01000000 | (color & 0x00FFFFFF)
	}

	if err := a.sh.SetAccent(id, p.Accent, toBGR(color)); err != nil {
		log.Warnf("compositing call for %#x failed: %v", uintptr(id), err)
		return
	}
	a.normal[id] = false
}

// toBGR swaps the red and blue channels; the compositing backend expects
// 0xAABBGGRR.
func toBGR(c uint32) uint32 {
	return (c & 0xFF00FF00) | ((c & 0x00FF0000) >> 16) | ((c & 0x000000FF) << 16)
}
