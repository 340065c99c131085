package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostbar-io/frostbar/internal/config"
)

func startWatcher(t *testing.T) (*Watcher, string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	require.NoError(t, config.EnsureGlobalDir())

	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.Start())
	t.Cleanup(w.Stop)

	dir, err := config.GlobalDir()
	require.NoError(t, err)
	return w, dir
}

func waitForEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case ev := <-w.Events():
		return ev
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for config event")
		return Event{}
	}
}

func TestWatcherReportsSettingsChange(t *testing.T) {
	w, dir := startWatcher(t)

	path := filepath.Join(dir, config.SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0644))

	ev := waitForEvent(t, w)
	assert.Equal(t, EventSettingsChanged, ev.Type)
	assert.Equal(t, path, ev.Path)
}

func TestWatcherReportsBlacklistChange(t *testing.T) {
	w, dir := startWatcher(t)

	path := filepath.Join(dir, config.BlacklistFileName)
	require.NoError(t, os.WriteFile(path, []byte("class,Foo\n"), 0644))

	ev := waitForEvent(t, w)
	assert.Equal(t, EventBlacklistChanged, ev.Type)
}

func TestWatcherDebouncesBursts(t *testing.T) {
	w, dir := startWatcher(t)

	// Editors often write several times in quick succession.
	path := filepath.Join(dir, config.SettingsFileName)
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0644))
		time.Sleep(10 * time.Millisecond)
	}

	waitForEvent(t, w)

	select {
	case ev := <-w.Events():
		t.Fatalf("burst produced a second event: %+v", ev)
	case <-time.After(2 * debounceDelay):
	}
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	w, dir := startWatcher(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	select {
	case ev := <-w.Events():
		t.Fatalf("unrelated file produced an event: %+v", ev)
	case <-time.After(2 * debounceDelay):
	}
}
