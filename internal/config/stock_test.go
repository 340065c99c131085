package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostbar-io/frostbar/internal/models"
)

// useTempHome points the global config directory at a throwaway home.
func useTempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	return home
}

func TestGlobalPaths(t *testing.T) {
	home := useTempHome(t)

	dir, err := GlobalDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, GlobalDirName), dir)

	settings, err := GlobalSettingsFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, SettingsFileName), settings)

	blacklist, err := GlobalBlacklistFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, BlacklistFileName), blacklist)
}

func TestEnsureDefaults(t *testing.T) {
	useTempHome(t)

	require.NoError(t, EnsureDefaults())

	settingsPath, err := GlobalSettingsFile()
	require.NoError(t, err)
	assert.True(t, FileExists(settingsPath))

	blacklistPath, err := GlobalBlacklistFile()
	require.NoError(t, err)
	assert.True(t, FileExists(blacklistPath))

	// The provisioned settings round trip as pure defaults.
	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, models.NewSettings(), s)

	// The stock blacklist template is all comments, no live rules.
	rules, err := LoadBlacklist()
	require.NoError(t, err)
	assert.True(t, rules.Empty())
}

func TestEnsureDefaultsKeepsExistingFiles(t *testing.T) {
	useTempHome(t)

	custom := models.NewSettings()
	custom.Verbose = true
	require.NoError(t, SaveSettings(custom))

	require.NoError(t, EnsureDefaults())

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.True(t, s.Verbose, "existing settings must survive provisioning")
}

func TestRestoreStock(t *testing.T) {
	useTempHome(t)

	custom := models.NewSettings()
	custom.Taskbar.Accent = models.AccentFluent
	require.NoError(t, SaveSettings(custom))
	require.NoError(t, SaveText(mustBlacklistPath(t), "exename,chrome.exe\n"))

	restored, err := RestoreStockSettings()
	require.NoError(t, err)
	assert.Equal(t, models.NewSettings(), restored)

	require.NoError(t, RestoreStockBlacklist())
	rules, err := LoadBlacklist()
	require.NoError(t, err)
	assert.True(t, rules.Empty())
}

func mustBlacklistPath(t *testing.T) string {
	t.Helper()
	path, err := GlobalBlacklistFile()
	require.NoError(t, err)
	return path
}
