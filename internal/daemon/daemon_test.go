package daemon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostbar-io/frostbar/internal/config"
	"github.com/frostbar-io/frostbar/internal/models"
	"github.com/frostbar-io/frostbar/internal/shell"
)

func newTestDaemon(t *testing.T) (*Daemon, *shell.Fake) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	require.NoError(t, config.EnsureDefaults())

	f := shell.NewFake()
	f.AddWindow(&shell.FakeWindow{Handle: 0x100, ClassName: shell.ClassPrimaryTaskbar, Display: 1})

	d, err := New(f)
	require.NoError(t, err)
	return d, f
}

func TestDaemonLifecycle(t *testing.T) {
	d, f := newTestDaemon(t)

	require.NoError(t, d.Start())
	time.Sleep(100 * time.Millisecond)
	d.Stop()

	// The loop composited the taskbar while running and restored the stock
	// appearance on the way out.
	assert.NotEmpty(t, f.AccentCalls)
	assert.Contains(t, f.ThemeReloads, shell.WindowID(0x100))
}

func TestDaemonSavesSettingsOnExit(t *testing.T) {
	d, _ := newTestDaemon(t)
	require.NoError(t, d.Start())

	d.ApplySettings(func(s *models.Settings) {
		s.Taskbar.Accent = models.AccentClear
	})
	d.Stop()

	saved, err := config.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, models.AccentClear, saved.Taskbar.Accent)
}

func TestDaemonSettingsReturnsCopy(t *testing.T) {
	d, _ := newTestDaemon(t)

	s := d.Settings()
	s.Verbose = true

	assert.False(t, d.Settings().Verbose, "mutating the copy must not leak back")
}

func TestDaemonApplySettingsNormalizes(t *testing.T) {
	d, f := newTestDaemon(t)
	f.Fluent = false

	d.ApplySettings(func(s *models.Settings) {
		s.Taskbar.Accent = models.AccentFluent
	})

	assert.Equal(t, models.AccentBlur, d.Settings().Taskbar.Accent)
}

func TestDaemonRequestShutdown(t *testing.T) {
	d, _ := newTestDaemon(t)

	fired := make(chan struct{})
	d.OnShutdown(func() { close(fired) })
	d.RequestShutdown(false)

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("shutdown callback not invoked")
	}
}

func TestDaemonStopsOnShellStopRequest(t *testing.T) {
	d, f := newTestDaemon(t)

	fired := make(chan struct{})
	d.OnShutdown(func() { close(fired) })
	require.NoError(t, d.Start())

	// The platform backend delivers this when another process closes the
	// daemon's notification window.
	f.PushEvent(shell.Event{Type: shell.EventStopRequested})

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("stop request was not propagated to the shutdown callback")
	}
	d.Stop()
}

func TestDaemonSkipsSaveWhenAsked(t *testing.T) {
	d, _ := newTestDaemon(t)
	require.NoError(t, d.Start())

	d.ApplySettings(func(s *models.Settings) {
		s.Taskbar.Accent = models.AccentOpaque
	})
	// Roll the file back underneath the daemon, then exit without saving.
	require.NoError(t, config.SaveSettings(models.NewSettings()))
	d.RequestShutdown(false)
	d.Stop()

	saved, err := config.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, models.NewSettings().Taskbar.Accent, saved.Taskbar.Accent)
}
