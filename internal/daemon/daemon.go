// Package daemon assembles the engine, config watcher, and shell backend
// into the running service.
package daemon

import (
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/frostbar-io/frostbar/internal/config"
	"github.com/frostbar-io/frostbar/internal/daemon/editor"
	"github.com/frostbar-io/frostbar/internal/daemon/watcher"
	"github.com/frostbar-io/frostbar/internal/engine"
	"github.com/frostbar-io/frostbar/internal/models"
	"github.com/frostbar-io/frostbar/internal/shell"
)

// Daemon owns the engine tick loop and the config file watcher. It also
// implements tray.EngineState, so the tray menu drives it directly.
type Daemon struct {
	sh    shell.Shell
	eng   *engine.Engine
	watch *watcher.Watcher

	mu       sync.Mutex
	settings *models.Settings // last applied settings, copied out for the tray

	done    chan struct{}
	stopped chan struct{}

	saveOnExit bool
	onShutdown func()
}

// New loads configuration and assembles a daemon over the given shell.
func New(sh shell.Shell) (*Daemon, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	for _, note := range settings.Normalize(sh.FluentAvailable()) {
		log.Warn(note)
	}
	applyLogLevel(settings)

	rules, err := config.LoadBlacklist()
	if err != nil {
		return nil, fmt.Errorf("loading blacklist: %w", err)
	}

	watch, err := watcher.New()
	if err != nil {
		return nil, fmt.Errorf("creating config watcher: %w", err)
	}

	d := &Daemon{
		sh:         sh,
		watch:      watch,
		settings:   settings,
		done:       make(chan struct{}),
		stopped:    make(chan struct{}),
		saveOnExit: true,
	}
	d.eng = engine.New(sh, settings, *rules)
	d.eng.SetRulesLoader(config.LoadBlacklist)
	d.eng.OnStopRequest(func() { d.RequestShutdown(true) })
	return d, nil
}

// OnShutdown registers the callback invoked when a shutdown is requested,
// e.g. to quit the tray loop.
func (d *Daemon) OnShutdown(fn func()) {
	d.onShutdown = fn
}

// Start launches the config watcher and the engine tick loop.
func (d *Daemon) Start() error {
	if err := d.watch.Start(); err != nil {
		return fmt.Errorf("starting config watcher: %w", err)
	}
	go d.handleConfigEvents()
	go d.run()
	return nil
}

// Stop ends the tick loop, restores the taskbar, and saves settings unless
// the shutdown asked to skip it.
func (d *Daemon) Stop() {
	close(d.done)
	<-d.stopped

	// The loop is quiescent now, direct engine calls are safe.
	d.eng.ApplyShutdownState()

	d.mu.Lock()
	settings := d.settings
	save := d.saveOnExit
	d.mu.Unlock()

	if save {
		if err := config.SaveSettings(settings); err != nil {
			log.Errorf("saving settings on exit: %v", err)
		}
	}

	d.watch.Stop()
	if err := d.sh.Close(); err != nil {
		log.Warnf("closing shell backend: %v", err)
	}
}

// run is the cooperative tick loop. The exit request is only observed
// between ticks, never mid-classification.
func (d *Daemon) run() {
	defer close(d.stopped)
	for {
		d.eng.Tick()
		select {
		case <-d.done:
			return
		case <-time.After(d.interval()):
		}
	}
}

func (d *Daemon) interval() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return time.Duration(d.settings.Polling.IntervalMS) * time.Millisecond
}

func (d *Daemon) handleConfigEvents() {
	for ev := range d.watch.Events() {
		switch ev.Type {
		case watcher.EventSettingsChanged:
			log.Info("settings file changed, reloading")
			d.ReloadSettings()
		case watcher.EventBlacklistChanged:
			log.Info("blacklist file changed, reloading")
			d.eng.ReloadBlacklist()
		}
	}
}

// applySettings normalizes, stores, and pushes new settings to the engine.
func (d *Daemon) applySettings(settings *models.Settings) {
	for _, note := range settings.Normalize(d.sh.FluentAvailable()) {
		log.Warn(note)
	}
	applyLogLevel(settings)

	d.mu.Lock()
	d.settings = settings
	d.mu.Unlock()

	d.eng.UpdateSettings(settings)
}

func applyLogLevel(s *models.Settings) {
	if s.Verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// Settings returns a copy of the active settings.
func (d *Daemon) Settings() models.Settings {
	d.mu.Lock()
	defer d.mu.Unlock()
	return *d.settings
}

// ApplySettings mutates a copy of the settings, persists it, and applies it.
func (d *Daemon) ApplySettings(mutate func(*models.Settings)) {
	d.mu.Lock()
	updated := *d.settings
	d.mu.Unlock()

	mutate(&updated)
	if err := config.SaveSettings(&updated); err != nil {
		log.Errorf("saving settings: %v", err)
	}
	d.applySettings(&updated)
}

// ReloadSettings re-reads the settings file and applies it.
func (d *Daemon) ReloadSettings() {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Errorf("reloading settings: %v", err)
		return
	}
	d.applySettings(settings)
}

// EditSettings opens the settings file in the user's editor; the edited
// file is applied when the editor exits.
func (d *Daemon) EditSettings() {
	d.mu.Lock()
	if err := config.SaveSettings(d.settings); err != nil {
		log.Errorf("saving settings before edit: %v", err)
	}
	d.mu.Unlock()

	path, err := config.GlobalSettingsFile()
	if err != nil {
		log.Errorf("resolving settings path: %v", err)
		return
	}
	editor.OpenAndThen(path, d.ReloadSettings)
}

// ResetSettings restores stock settings and applies them.
func (d *Daemon) ResetSettings() {
	settings, err := config.RestoreStockSettings()
	if err != nil {
		log.Errorf("restoring stock settings: %v", err)
		return
	}
	d.applySettings(settings)
}

// ReloadBlacklist re-reads the blacklist at the next tick boundary.
func (d *Daemon) ReloadBlacklist() {
	d.eng.ReloadBlacklist()
}

// EditBlacklist opens the blacklist in the user's editor; the engine
// reloads it when the editor exits.
func (d *Daemon) EditBlacklist() {
	path, err := config.GlobalBlacklistFile()
	if err != nil {
		log.Errorf("resolving blacklist path: %v", err)
		return
	}
	editor.OpenAndThen(path, d.eng.ReloadBlacklist)
}

// ResetBlacklist restores the stock blacklist and reloads it.
func (d *Daemon) ResetBlacklist() {
	if err := config.RestoreStockBlacklist(); err != nil {
		log.Errorf("restoring stock blacklist: %v", err)
		return
	}
	d.eng.ReloadBlacklist()
}

// ClearBlacklistCache forces a cache flush on the next lookup.
func (d *Daemon) ClearBlacklistCache() {
	d.eng.ClearBlacklistCache()
}

// RefreshTaskbars rebuilds taskbar handles at the next tick boundary.
func (d *Daemon) RefreshTaskbars() {
	d.eng.RefreshTaskbars()
}

// FluentAvailable reports whether the fluent accent can be offered.
func (d *Daemon) FluentAvailable() bool {
	return d.sh.FluentAvailable()
}

// RequestShutdown asks the daemon to stop.
func (d *Daemon) RequestShutdown(save bool) {
	d.mu.Lock()
	d.saveOnExit = save
	d.mu.Unlock()

	if d.onShutdown != nil {
		d.onShutdown()
	}
}
