// Package watcher handles file system watching for the daemon.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"

	"github.com/frostbar-io/frostbar/internal/config"
)

// EventType represents the type of file system event.
type EventType int

// Event types for configuration changes.
const (
	EventSettingsChanged EventType = iota
	EventBlacklistChanged
)

// Event represents a configuration file change.
type Event struct {
	Type EventType
	Path string
}

const debounceDelay = 250 * time.Millisecond

// Watcher watches the config directory and reports settings and blacklist
// edits, debounced per file so editors that write in several passes produce
// one event.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	eventsChan chan Event
	done       chan struct{}
	debounce   map[string]*time.Timer
	debounceMu sync.Mutex
}

// New creates a new config file watcher.
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		fsWatcher:  fsWatcher,
		eventsChan: make(chan Event, 16),
		done:       make(chan struct{}),
		debounce:   make(map[string]*time.Timer),
	}, nil
}

// Events returns the channel for receiving events.
func (w *Watcher) Events() <-chan Event {
	return w.eventsChan
}

// Start starts watching the global config directory.
func (w *Watcher) Start() error {
	dir, err := config.GlobalDir()
	if err != nil {
		return err
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return err
	}

	go w.processEvents()
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	close(w.done)
	_ = w.fsWatcher.Close()
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.handleChange(event.Name)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Warnf("config watcher error: %v", err)
		}
	}
}

func (w *Watcher) handleChange(path string) {
	var eventType EventType
	switch filepath.Base(path) {
	case config.SettingsFileName:
		eventType = EventSettingsChanged
	case config.BlacklistFileName:
		eventType = EventBlacklistChanged
	default:
		return
	}

	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, ok := w.debounce[path]; ok {
		timer.Stop()
	}
	w.debounce[path] = time.AfterFunc(debounceDelay, func() {
		select {
		case w.eventsChan <- Event{Type: eventType, Path: path}:
		case <-w.done:
		}
	})
}
