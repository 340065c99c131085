package config

import (
	log "github.com/sirupsen/logrus"

	"github.com/frostbar-io/frostbar/internal/models"
)

// stockBlacklist is written on first run so users have a template to edit.
const stockBlacklist = `; Dynamic window blacklist.
; Windows matching any rule below are ignored by dynamic appearance modes.
;
; One rule per line, comma separated. The first field picks the rule kind:
;   class       exact window class match
;   title       substring match against the window title
;   exename     executable name match, case insensitive
;
; Examples:
; class,TaskManagerWindow
; title,Picture-in-Picture
; exename,screensaver.exe
`

// EnsureDefaults provisions the config directory on first run: the settings
// file and a stock blacklist are created when missing.
func EnsureDefaults() error {
	if err := EnsureGlobalDir(); err != nil {
		return err
	}

	settingsPath, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	if !FileExists(settingsPath) {
		if err := SaveSettings(models.NewSettings()); err != nil {
			return err
		}
		log.Infof("created default settings at %s", settingsPath)
	}

	blacklistPath, err := GlobalBlacklistFile()
	if err != nil {
		return err
	}
	created, err := WriteFileIfMissing(blacklistPath, []byte(stockBlacklist))
	if err != nil {
		return err
	}
	if created {
		log.Infof("created stock blacklist at %s", blacklistPath)
	}

	return nil
}

// RestoreStockSettings overwrites the settings file with defaults.
func RestoreStockSettings() (*models.Settings, error) {
	settings := models.NewSettings()
	if err := SaveSettings(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// RestoreStockBlacklist overwrites the blacklist file with the stock template.
func RestoreStockBlacklist() error {
	path, err := GlobalBlacklistFile()
	if err != nil {
		return err
	}
	return SaveText(path, stockBlacklist)
}
