// Package engine implements the detection-and-application core: cheap
// polling, per-tick window classification, and memoized compositing calls.
package engine

import (
	log "github.com/sirupsen/logrus"

	"github.com/frostbar-io/frostbar/internal/models"
	"github.com/frostbar-io/frostbar/internal/shell"
)

// RulesLoader provides a fresh blacklist rule set on demand.
type RulesLoader func() (*models.BlacklistRules, error)

// Engine runs the detection and compositing loop for every taskbar.
//
// All state is owned by the tick loop. External callers mutate it through
// the command queue, which is drained at the next tick boundary, so a
// settings or rule swap never races a running classification pass.
type Engine struct {
	sh       shell.Shell
	settings *models.Settings
	filter   *Filter
	registry *Registry
	blur     *Applicator
	peek     *PeekController

	loadRules RulesLoader
	onStop    func()

	counter        int
	shouldShowPeek bool
	peekActive     bool

	pending chan func()
}

// New assembles an engine and performs the initial taskbar discovery.
// The counter starts at the classification threshold so the first tick runs
// a full pass immediately.
func New(sh shell.Shell, settings *models.Settings, rules models.BlacklistRules) *Engine {
	e := &Engine{
		sh:       sh,
		settings: settings,
		filter:   NewFilter(settings.Polling.CacheHitMax),
		registry: NewRegistry(sh),
		blur:     NewApplicator(sh),
		peek:     NewPeekController(sh),
		counter:  settings.Polling.ClassifyEvery,
		pending:  make(chan func(), 16),
	}
	e.filter.SetLimits(settings.Polling.CacheHitMax, settings.Verbose)
	e.filter.SetRules(rules)
	e.registry.Refresh(settings.Verbose)
	return e
}

// SetRulesLoader wires the collaborator that re-reads the blacklist file.
func (e *Engine) SetRulesLoader(load RulesLoader) {
	e.loadRules = load
}

// OnStopRequest wires the callback invoked when the shell delivers an
// external stop request.
func (e *Engine) OnStopRequest(fn func()) {
	e.onStop = fn
}

// Tick advances the engine one scheduler step: drain shell notifications and
// queued commands, run the full classification every Nth tick, and re-apply
// compositing parameters to every taskbar regardless. The unconditional
// re-application keeps surfaces consistent when something external, like a
// manual appearance change, altered them between full passes.
func (e *Engine) Tick() {
	e.drainShellEvents()
	e.drainPending()

	if e.counter >= e.settings.Polling.ClassifyEvery {
		e.runClassification()
		e.counter = 0
	}

	e.registry.Each(func(tb *Taskbar) {
		e.blur.Apply(tb.ID, ParamsFor(tb.State, e.settings))
	})
	e.counter++
}

// RefreshTaskbars rebuilds the taskbar registry at the next tick boundary.
func (e *Engine) RefreshTaskbars() {
	e.enqueue(func() { e.refreshTaskbars() })
}

// ReloadBlacklist re-reads the blacklist rules at the next tick boundary and
// flushes the match cache.
func (e *Engine) ReloadBlacklist() {
	e.enqueue(func() {
		if e.loadRules == nil {
			return
		}
		rules, err := e.loadRules()
		if err != nil {
			log.Errorf("reloading blacklist failed: %v", err)
			return
		}
		e.filter.SetRules(*rules)
		e.filter.Clear()
		log.Infof("blacklist reloaded: %d class, %d title, %d exe rules",
			len(rules.Classes), len(rules.Titles), len(rules.Filenames))
	})
}

// ClearBlacklistCache forces a cache flush on the next blacklist lookup.
// Safe to call from any goroutine.
func (e *Engine) ClearBlacklistCache() {
	e.filter.Clear()
}

// UpdateSettings swaps the active settings at the next tick boundary.
func (e *Engine) UpdateSettings(s *models.Settings) {
	e.enqueue(func() {
		e.settings = s
		e.filter.SetLimits(s.Polling.CacheHitMax, s.Verbose)
	})
}

// ApplyShutdownState restores every taskbar to its stock appearance and
// shows the peek button. Called once after the tick loop has stopped.
func (e *Engine) ApplyShutdownState() {
	e.peek.Set(true, e.registry.Primary())
	e.registry.Each(func(tb *Taskbar) {
		e.blur.Apply(tb.ID, Params{Accent: shell.AccentStock})
	})
}

func (e *Engine) refreshTaskbars() {
	e.registry.Refresh(e.settings.Verbose)
	// Handles may have been recycled; the compositing memo is stale.
	e.blur.Reset()
}

func (e *Engine) enqueue(cmd func()) {
	select {
	case e.pending <- cmd:
	default:
		log.Warn("engine command queue full, dropping command")
	}
}

func (e *Engine) drainPending() {
	for {
		select {
		case cmd := <-e.pending:
			cmd()
		default:
			return
		}
	}
}

func (e *Engine) drainShellEvents() {
	for {
		select {
		case ev := <-e.sh.Events():
			switch ev.Type {
			case shell.EventDisplayChanged, shell.EventTaskbarCreated:
				e.refreshTaskbars()
			case shell.EventPeekStarted:
				e.peekActive = true
			case shell.EventPeekStopped:
				e.peekActive = false
			case shell.EventStopRequested:
				if e.onStop != nil {
					e.onStop()
				}
			}
		default:
			return
		}
	}
}
