package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Accent names a compositing mode for a taskbar surface.
type Accent string

// Supported accents. Normal means "leave the surface alone": no composition
// attribute is sent and the shell renders its stock appearance.
const (
	AccentNormal Accent = "normal"
	AccentOpaque Accent = "opaque"
	AccentClear  Accent = "clear"
	AccentBlur   Accent = "blur"
	AccentFluent Accent = "fluent"
)

// Valid reports whether a is a known accent name.
func (a Accent) Valid() bool {
	switch a {
	case AccentNormal, AccentOpaque, AccentClear, AccentBlur, AccentFluent:
		return true
	}
	return false
}

// PeekMode controls the show-desktop ("peek") button behaviour.
type PeekMode string

const (
	PeekEnabled  PeekMode = "enabled"  // always shown
	PeekDynamic  PeekMode = "dynamic"  // shown only when a maximized window is on the primary monitor
	PeekDisabled PeekMode = "disabled" // always hidden
)

// Valid reports whether m is a known peek mode.
func (m PeekMode) Valid() bool {
	switch m {
	case PeekEnabled, PeekDynamic, PeekDisabled:
		return true
	}
	return false
}

// AppearanceConfig pairs an accent with a tint color.
// Colors are hex "#AARRGGBB" strings in the settings file.
type AppearanceConfig struct {
	Accent Accent `yaml:"accent"`
	Color  string `yaml:"color"`
}

// DynamicConfig holds the reactive-appearance options.
type DynamicConfig struct {
	Workspace    bool             `yaml:"workspace"`      // react to a maximized window on the monitor
	StartMenu    bool             `yaml:"start_menu"`     // react to the start menu being open
	NormalOnPeek bool             `yaml:"normal_on_peek"` // drop back to normal while peek is active
	Appearance   AppearanceConfig `yaml:"appearance"`
}

// PollingConfig tunes the scheduler loop.
type PollingConfig struct {
	IntervalMS    int `yaml:"interval_ms"`    // sleep between ticks
	ClassifyEvery int `yaml:"classify_every"` // full window classification every N ticks
	CacheHitMax   int `yaml:"cache_hit_max"`  // blacklist cache hits before a flush
}

// Settings represents global application settings.
// This corresponds to ~/.frostbar/settings.yaml.
type Settings struct {
	Version int              `yaml:"version"`
	Taskbar AppearanceConfig `yaml:"taskbar"`
	Dynamic DynamicConfig    `yaml:"dynamic"`
	Peek    PeekMode         `yaml:"peek"`
	Verbose bool             `yaml:"verbose"`
	Polling PollingConfig    `yaml:"polling"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Taskbar: AppearanceConfig{
			Accent: AccentBlur,
			Color:  "#00000000",
		},
		Dynamic: DynamicConfig{
			Workspace:    true,
			StartMenu:    true,
			NormalOnPeek: true,
			Appearance: AppearanceConfig{
				Accent: AccentOpaque,
				Color:  "#FF000000",
			},
		},
		Peek:    PeekEnabled,
		Verbose: false,
		Polling: PollingConfig{
			IntervalMS:    10,
			ClassifyEvery: 10,
			CacheHitMax:   500,
		},
	}
}

// Normalize clamps out-of-range values and downgrades accents the platform
// cannot render. Returns the list of adjustments made, for logging.
func (s *Settings) Normalize(fluentAvailable bool) []string {
	var notes []string

	if !s.Taskbar.Accent.Valid() {
		s.Taskbar.Accent = AccentBlur
		notes = append(notes, "unknown taskbar accent, using blur")
	}
	if !s.Dynamic.Appearance.Accent.Valid() {
		s.Dynamic.Appearance.Accent = AccentOpaque
		notes = append(notes, "unknown dynamic accent, using opaque")
	}
	if !s.Peek.Valid() {
		s.Peek = PeekEnabled
		notes = append(notes, "unknown peek mode, using enabled")
	}

	if !fluentAvailable {
		if s.Taskbar.Accent == AccentFluent {
			s.Taskbar.Accent = AccentBlur
			notes = append(notes, "fluent not available, taskbar accent downgraded to blur")
		}
		if s.Dynamic.Appearance.Accent == AccentFluent {
			s.Dynamic.Appearance.Accent = AccentBlur
			notes = append(notes, "fluent not available, dynamic accent downgraded to blur")
		}
	}

	if s.Polling.IntervalMS < 1 {
		s.Polling.IntervalMS = 10
		notes = append(notes, "polling interval out of range, using 10ms")
	}
	if s.Polling.ClassifyEvery < 1 {
		s.Polling.ClassifyEvery = 10
		notes = append(notes, "classify_every out of range, using 10")
	}
	if s.Polling.CacheHitMax < 0 {
		s.Polling.CacheHitMax = 500
		notes = append(notes, "cache_hit_max out of range, using 500")
	}

	return notes
}

// ParseColor parses a "#AARRGGBB" (or "#RRGGBB", implied opaque) hex color
// into a packed 0xAARRGGBB value.
func ParseColor(s string) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return 0xFF000000 | uint32(v), nil
	case 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return uint32(v), nil
	default:
		return 0, fmt.Errorf("invalid color %q: expected #RRGGBB or #AARRGGBB", s)
	}
}

// FormatColor renders a packed 0xAARRGGBB value as "#AARRGGBB".
func FormatColor(c uint32) string {
	return fmt.Sprintf("#%08X", c)
}
