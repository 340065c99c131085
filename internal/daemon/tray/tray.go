package tray

import (
	"github.com/getlantern/systray"

	"github.com/frostbar-io/frostbar/internal/models"
)

var (
	state   EngineState
	onStart func()
	onExit  func()

	// Taskbar appearance radio group
	taskbarItems map[models.Accent]*systray.MenuItem

	// Maximised-window appearance radio group
	dynamicItems map[models.Accent]*systray.MenuItem

	// Peek mode radio group
	peekItems map[models.PeekMode]*systray.MenuItem

	// Toggles
	dynamicWSItem    *systray.MenuItem
	dynamicStartItem *systray.MenuItem
	normalOnPeekItem *systray.MenuItem
	verboseItem      *systray.MenuItem

	// Actions
	reloadSettingsItem  *systray.MenuItem
	editSettingsItem    *systray.MenuItem
	resetSettingsItem   *systray.MenuItem
	reloadBlacklistItem *systray.MenuItem
	editBlacklistItem   *systray.MenuItem
	resetBlacklistItem  *systray.MenuItem
	clearCacheItem      *systray.MenuItem
	refreshItem         *systray.MenuItem

	quitItem       *systray.MenuItem
	quitNoSaveItem *systray.MenuItem
)

var accentLabels = []struct {
	accent models.Accent
	label  string
}{
	{models.AccentNormal, "Normal"},
	{models.AccentOpaque, "Opaque"},
	{models.AccentClear, "Clear"},
	{models.AccentBlur, "Blur"},
	{models.AccentFluent, "Fluent"},
}

var peekLabels = []struct {
	mode  models.PeekMode
	label string
}{
	{models.PeekEnabled, "Always show"},
	{models.PeekDynamic, "Show when a window is maximised"},
	{models.PeekDisabled, "Always hide"},
}

// Run starts the system tray. This blocks the calling goroutine (must be main).
// onStartFn is called when the tray is ready (launch the engine loop here).
// onExitFn is called when the tray exits (cleanup here).
func Run(s EngineState, onStartFn, onExitFn func()) {
	state = s
	onStart = onStartFn
	onExit = onExitFn
	systray.Run(onReady, onQuit)
}

// Quit signals the tray to exit.
func Quit() {
	systray.Quit()
}

func onReady() {
	systray.SetTemplateIcon(iconData, iconData)
	systray.SetTooltip("Frostbar")

	header := systray.AddMenuItem("Frostbar", "")
	header.Disable()
	systray.AddSeparator()

	taskbarMenu := systray.AddMenuItem("Taskbar appearance", "")
	taskbarItems = addAccentGroup(taskbarMenu, false)

	dynamicMenu := systray.AddMenuItem("Maximised window appearance", "")
	dynamicItems = addAccentGroup(dynamicMenu, true)

	peekMenu := systray.AddMenuItem("Show desktop button", "")
	peekItems = make(map[models.PeekMode]*systray.MenuItem, len(peekLabels))
	for _, entry := range peekLabels {
		peekItems[entry.mode] = peekMenu.AddSubMenuItemCheckbox(entry.label, "", false)
	}

	systray.AddSeparator()

	dynamicWSItem = systray.AddMenuItemCheckbox("Dynamic workspace", "React to maximised windows", false)
	dynamicStartItem = systray.AddMenuItemCheckbox("Dynamic start menu", "React to the start menu", false)
	normalOnPeekItem = systray.AddMenuItemCheckbox("Normal while peeking", "Drop effects while peek is active", false)
	verboseItem = systray.AddMenuItemCheckbox("Verbose logging", "", false)

	systray.AddSeparator()

	reloadSettingsItem = systray.AddMenuItem("Reload settings", "")
	editSettingsItem = systray.AddMenuItem("Edit settings", "")
	resetSettingsItem = systray.AddMenuItem("Reset settings to defaults", "")

	systray.AddSeparator()

	reloadBlacklistItem = systray.AddMenuItem("Reload blacklist", "")
	editBlacklistItem = systray.AddMenuItem("Edit blacklist", "")
	resetBlacklistItem = systray.AddMenuItem("Reset blacklist to defaults", "")
	clearCacheItem = systray.AddMenuItem("Clear blacklist cache", "")

	systray.AddSeparator()

	refreshItem = systray.AddMenuItem("Refresh taskbars", "Rebuild taskbar handles")
	quitNoSaveItem = systray.AddMenuItem("Exit without saving", "")
	quitItem = systray.AddMenuItem("Exit", "Restore the taskbar and quit")

	if onStart != nil {
		onStart()
	}

	refreshChecks()
	go handleClicks()
}

func addAccentGroup(parent *systray.MenuItem, skipNormal bool) map[models.Accent]*systray.MenuItem {
	items := make(map[models.Accent]*systray.MenuItem, len(accentLabels))
	fluent := state != nil && state.FluentAvailable()
	for _, entry := range accentLabels {
		if skipNormal && entry.accent == models.AccentNormal {
			continue
		}
		if entry.accent == models.AccentFluent && !fluent {
			continue
		}
		items[entry.accent] = parent.AddSubMenuItemCheckbox(entry.label, "", false)
	}
	return items
}

// refreshChecks re-derives every checkmark from the current settings.
func refreshChecks() {
	if state == nil {
		return
	}
	s := state.Settings()

	for accent, item := range taskbarItems {
		setChecked(item, s.Taskbar.Accent == accent)
	}
	for accent, item := range dynamicItems {
		setChecked(item, s.Dynamic.Appearance.Accent == accent)
	}
	for mode, item := range peekItems {
		setChecked(item, s.Peek == mode)
	}
	setChecked(dynamicWSItem, s.Dynamic.Workspace)
	setChecked(dynamicStartItem, s.Dynamic.StartMenu)
	setChecked(normalOnPeekItem, s.Dynamic.NormalOnPeek)
	setChecked(verboseItem, s.Verbose)
}

func setChecked(item *systray.MenuItem, checked bool) {
	if checked {
		item.Check()
	} else {
		item.Uncheck()
	}
}

func onQuit() {
	if onExit != nil {
		onExit()
	}
}

func handleClicks() {
	taskbarChecks := accentClickChannels(taskbarItems)
	dynamicChecks := accentClickChannels(dynamicItems)

	for {
		select {
		case accent := <-taskbarChecks:
			state.ApplySettings(func(s *models.Settings) { s.Taskbar.Accent = accent })
			refreshChecks()
		case accent := <-dynamicChecks:
			state.ApplySettings(func(s *models.Settings) { s.Dynamic.Appearance.Accent = accent })
			refreshChecks()

		case <-peekItems[models.PeekEnabled].ClickedCh:
			state.ApplySettings(func(s *models.Settings) { s.Peek = models.PeekEnabled })
			refreshChecks()
		case <-peekItems[models.PeekDynamic].ClickedCh:
			state.ApplySettings(func(s *models.Settings) { s.Peek = models.PeekDynamic })
			refreshChecks()
		case <-peekItems[models.PeekDisabled].ClickedCh:
			state.ApplySettings(func(s *models.Settings) { s.Peek = models.PeekDisabled })
			refreshChecks()

		case <-dynamicWSItem.ClickedCh:
			state.ApplySettings(func(s *models.Settings) { s.Dynamic.Workspace = !s.Dynamic.Workspace })
			refreshChecks()
		case <-dynamicStartItem.ClickedCh:
			state.ApplySettings(func(s *models.Settings) { s.Dynamic.StartMenu = !s.Dynamic.StartMenu })
			refreshChecks()
		case <-normalOnPeekItem.ClickedCh:
			state.ApplySettings(func(s *models.Settings) { s.Dynamic.NormalOnPeek = !s.Dynamic.NormalOnPeek })
			refreshChecks()
		case <-verboseItem.ClickedCh:
			state.ApplySettings(func(s *models.Settings) { s.Verbose = !s.Verbose })
			refreshChecks()

		case <-reloadSettingsItem.ClickedCh:
			state.ReloadSettings()
			refreshChecks()
		case <-editSettingsItem.ClickedCh:
			state.EditSettings()
		case <-resetSettingsItem.ClickedCh:
			state.ResetSettings()
			refreshChecks()

		case <-reloadBlacklistItem.ClickedCh:
			state.ReloadBlacklist()
		case <-editBlacklistItem.ClickedCh:
			state.EditBlacklist()
		case <-resetBlacklistItem.ClickedCh:
			state.ResetBlacklist()
		case <-clearCacheItem.ClickedCh:
			state.ClearBlacklistCache()

		case <-refreshItem.ClickedCh:
			state.RefreshTaskbars()

		case <-quitNoSaveItem.ClickedCh:
			state.RequestShutdown(false)
		case <-quitItem.ClickedCh:
			state.RequestShutdown(true)
		}
	}
}

// accentClickChannels fans the radio group's click channels into one channel
// carrying the selected accent.
func accentClickChannels(items map[models.Accent]*systray.MenuItem) <-chan models.Accent {
	out := make(chan models.Accent)
	for accent, item := range items {
		go func(accent models.Accent, item *systray.MenuItem) {
			for range item.ClickedCh {
				out <- accent
			}
		}(accent, item)
	}
	return out
}
