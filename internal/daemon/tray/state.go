// Package tray implements the system tray icon and menu for the daemon.
package tray

import "github.com/frostbar-io/frostbar/internal/models"

// EngineState is the daemon surface the tray menu drives. Mutations are
// applied at the engine's next tick boundary; the tray never touches engine
// state directly.
type EngineState interface {
	// Settings returns a copy of the active settings for display.
	Settings() models.Settings

	// ApplySettings mutates the settings, persists them, and hands the
	// result to the engine.
	ApplySettings(mutate func(*models.Settings))

	ReloadSettings()
	EditSettings()
	ResetSettings()

	ReloadBlacklist()
	EditBlacklist()
	ResetBlacklist()
	ClearBlacklistCache()

	RefreshTaskbars()

	// FluentAvailable reports whether the fluent accent can be offered.
	FluentAvailable() bool

	// RequestShutdown stops the daemon, optionally skipping the settings
	// save on the way out.
	RequestShutdown(save bool)
}
