package engine

import (
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/frostbar-io/frostbar/internal/models"
	"github.com/frostbar-io/frostbar/internal/shell"
)

// Filter classifies windows as excluded from dynamic-state detection.
//
// Outcomes are memoized per window identity. A global hit counter bounds
// staleness: once it exceeds the configured maximum the whole cache is
// flushed before the next insert, so windows whose title changed over time
// get re-evaluated without per-entry expiry. The mutex lets a reload swap
// the rule set atomically under a concurrently running classification pass.
type Filter struct {
	mu      sync.Mutex
	rules   models.BlacklistRules
	cache   map[shell.WindowID]bool
	hits    int
	hitMax  int
	flush   bool
	verbose bool
}

// NewFilter creates a filter with an empty rule set.
func NewFilter(hitMax int) *Filter {
	return &Filter{
		cache:  make(map[shell.WindowID]bool),
		hitMax: hitMax,
	}
}

// SetRules replaces the rule set. The cache is left alone; pair with Clear
// when matches must be re-evaluated immediately.
func (f *Filter) SetRules(rules models.BlacklistRules) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rules = rules
}

// SetLimits updates the hit ceiling and verbose flag from settings.
func (f *Filter) SetLimits(hitMax int, verbose bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hitMax = hitMax
	f.verbose = verbose
}

// Clear forces a full cache flush on the next lookup.
func (f *Filter) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flush = true
}

// Match reports whether the window is blacklisted.
func (f *Filter) Match(w shell.Window) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.flush && f.hits <= f.hitMax {
		if cached, ok := f.cache[w.ID()]; ok {
			f.hits++
			return cached
		}
	}

	if f.flush || f.hits > f.hitMax {
		if f.verbose {
			log.Debugf("blacklist cache flushed after %d hits", f.hits)
		}
		f.cache = make(map[shell.WindowID]bool)
		f.hits = 0
		f.flush = false
	}

	return f.classify(w)
}

// classify runs the three-stage match, cheapest attribute first, and caches
// the outcome. Caller holds the lock.
func (f *Filter) classify(w shell.Window) bool {
	// Class needs no string manipulation at all, try it first.
	class := w.Class()
	for _, value := range f.rules.Classes {
		if class == value {
			return f.record(w, true)
		}
	}

	// Titles can change after caching; acceptable staleness, the hit
	// ceiling re-evaluates them eventually.
	if len(f.rules.Titles) > 0 {
		title := w.Title()
		for _, value := range f.rules.Titles {
			if strings.Contains(title, value) {
				return f.record(w, true)
			}
		}
	}

	// Resolving the executable name is the most expensive lookup, last.
	if len(f.rules.Filenames) > 0 {
		exe := strings.ToLower(w.Filename())
		for _, value := range f.rules.Filenames {
			if exe == value {
				return f.record(w, true)
			}
		}
	}

	return f.record(w, false)
}

func (f *Filter) record(w shell.Window, match bool) bool {
	f.cache[w.ID()] = match
	if f.verbose {
		prefix := "no "
		if match {
			prefix = ""
		}
		log.Debugf("%sblacklist match for window %#x [%s] [%s] [%s]",
			prefix, uintptr(w.ID()), w.Class(), w.Filename(), w.Title())
	}
	return match
}
