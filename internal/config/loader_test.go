package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostbar-io/frostbar/internal/models"
)

func TestSaveAndLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	in := models.NewSettings()
	in.Taskbar.Accent = models.AccentClear
	in.Dynamic.Workspace = false
	require.NoError(t, SaveYAML(path, in))

	var out models.Settings
	require.NoError(t, LoadYAML(path, &out))
	assert.Equal(t, *in, out)
}

func TestLoadYAML_MissingFile(t *testing.T) {
	err := LoadYAML(filepath.Join(t.TempDir(), "absent.yaml"), &models.Settings{})
	assert.Error(t, err)
}

func TestLoadYAMLOrDefault(t *testing.T) {
	dir := t.TempDir()

	s, err := LoadYAMLOrDefault(filepath.Join(dir, "absent.yaml"), models.NewSettings)
	require.NoError(t, err)
	assert.Equal(t, models.NewSettings(), s)

	path := filepath.Join(dir, "present.yaml")
	saved := models.NewSettings()
	saved.Verbose = true
	require.NoError(t, SaveYAML(path, saved))

	s, err = LoadYAMLOrDefault(path, models.NewSettings)
	require.NoError(t, err)
	assert.True(t, s.Verbose)
}

func TestWriteFileIfMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "blacklist.conf")

	created, err := WriteFileIfMissing(path, []byte("class,Foo\n"))
	require.NoError(t, err)
	assert.True(t, created)

	created, err = WriteFileIfMissing(path, []byte("overwritten"))
	require.NoError(t, err)
	assert.False(t, created)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "class,Foo\n", string(data))
}
