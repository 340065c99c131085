package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostbar-io/frostbar/internal/models"
)

func TestDaemonInfoRoundTrip(t *testing.T) {
	useTempHome(t)

	info, err := LoadDaemonInfo()
	require.NoError(t, err)
	assert.Nil(t, info, "no file means no daemon info")

	saved := models.NewDaemonInfo(os.Getpid())
	require.NoError(t, SaveDaemonInfo(saved))

	loaded, err := LoadDaemonInfo()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, saved.PID, loaded.PID)
	assert.Equal(t, saved.InstanceID, loaded.InstanceID)

	require.NoError(t, RemoveDaemonInfo())
	info, err = LoadDaemonInfo()
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestIsDaemonRunning(t *testing.T) {
	useTempHome(t)

	running, _, err := IsDaemonRunning()
	require.NoError(t, err)
	assert.False(t, running)

	// Our own PID is certainly alive.
	require.NoError(t, SaveDaemonInfo(models.NewDaemonInfo(os.Getpid())))
	running, info, err := IsDaemonRunning()
	require.NoError(t, err)
	assert.True(t, running)
	require.NotNil(t, info)
	assert.Equal(t, os.Getpid(), info.PID)
}

func TestProcessAlive(t *testing.T) {
	assert.True(t, processAlive(os.Getpid()))

	// A PID far beyond pid_max cannot belong to a live process.
	assert.False(t, processAlive(1<<30))
}

func TestIsDaemonRunning_StaleFileIsCleaned(t *testing.T) {
	useTempHome(t)

	// A PID far beyond pid_max cannot belong to a live process.
	stale := models.NewDaemonInfo(1 << 30)
	require.NoError(t, SaveDaemonInfo(stale))

	running, _, err := IsDaemonRunning()
	require.NoError(t, err)
	assert.False(t, running)

	info, err := LoadDaemonInfo()
	require.NoError(t, err)
	assert.Nil(t, info, "stale daemon file should be removed")
}
