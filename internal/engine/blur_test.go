package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frostbar-io/frostbar/internal/models"
	"github.com/frostbar-io/frostbar/internal/shell"
)

func TestParamsFor(t *testing.T) {
	s := models.NewSettings()
	s.Taskbar = models.AppearanceConfig{Accent: models.AccentClear, Color: "#20FFFFFF"}
	s.Dynamic.Appearance = models.AppearanceConfig{Accent: models.AccentFluent, Color: "#80101010"}

	tests := []struct {
		name  string
		state TaskbarState
		want  Params
	}{
		{
			name:  "normal uses the baseline appearance",
			state: StateNormal,
			want:  Params{Accent: shell.AccentTransparentGradient, Color: 0x20FFFFFF},
		},
		{
			name:  "maximised uses the dynamic appearance",
			state: StateWindowMaximised,
			want:  Params{Accent: shell.AccentFluent, Color: 0x80101010},
		},
		{
			name:  "start menu maps to stock",
			state: StateStartMenuOpen,
			want:  Params{Accent: shell.AccentStock},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParamsFor(tt.state, s))
		})
	}
}

func TestParamsForAccentMapping(t *testing.T) {
	tests := []struct {
		accent models.Accent
		want   shell.Accent
	}{
		{models.AccentNormal, shell.AccentStock},
		{models.AccentOpaque, shell.AccentGradient},
		{models.AccentClear, shell.AccentTransparentGradient},
		{models.AccentBlur, shell.AccentBlurBehind},
		{models.AccentFluent, shell.AccentFluent},
	}

	for _, tt := range tests {
		s := models.NewSettings()
		s.Taskbar.Accent = tt.accent
		assert.Equal(t, tt.want, ParamsFor(StateNormal, s).Accent, string(tt.accent))
	}
}

func TestParamsForMalformedColor(t *testing.T) {
	s := models.NewSettings()
	s.Taskbar.Color = "not a color"
	assert.Equal(t, uint32(0), ParamsFor(StateNormal, s).Color)
}

func TestToBGR(t *testing.T) {
	assert.Equal(t, uint32(0xAA332211), toBGR(0xAA112233))
	assert.Equal(t, uint32(0xFF000000), toBGR(0xFF000000))
	assert.Equal(t, uint32(0x00FF0000), toBGR(0x000000FF))
}

func TestApplicatorReordersChannels(t *testing.T) {
	f := shell.NewFake()
	a := NewApplicator(f)

	a.Apply(1, Params{Accent: shell.AccentBlurBehind, Color: 0x80112233})

	assert.Equal(t, []shell.AccentCall{
		{ID: 1, Accent: shell.AccentBlurBehind, Color: 0x80332211},
	}, f.AccentCalls)
}

func TestApplicatorFluentOpacityFloor(t *testing.T) {
	f := shell.NewFake()
	a := NewApplicator(f)

	// A fully transparent fluent color is raised to the minimum alpha.
	a.Apply(1, Params{Accent: shell.AccentFluent, Color: 0x00112233})
	// A translucent one passes through untouched.
	a.Apply(1, Params{Accent: shell.AccentFluent, Color: 0x80112233})
	// Other accents keep zero alpha.
	a.Apply(1, Params{Accent: shell.AccentBlurBehind, Color: 0x00112233})

	assert.Equal(t, uint32(0x01332211), f.AccentCalls[0].Color)
	assert.Equal(t, uint32(0x80332211), f.AccentCalls[1].Color)
	assert.Equal(t, uint32(0x00332211), f.AccentCalls[2].Color)
}

func TestApplicatorStockIsMemoized(t *testing.T) {
	f := shell.NewFake()
	a := NewApplicator(f)

	a.Apply(1, Params{Accent: shell.AccentStock})
	a.Apply(1, Params{Accent: shell.AccentStock})
	assert.Equal(t, []shell.WindowID{1}, f.ThemeReloads, "repeat stock applies reload once")

	// Leaving and re-entering the stock state reloads again.
	a.Apply(1, Params{Accent: shell.AccentBlurBehind})
	a.Apply(1, Params{Accent: shell.AccentStock})
	assert.Equal(t, []shell.WindowID{1, 1}, f.ThemeReloads)

	// The memo is per window.
	a.Apply(2, Params{Accent: shell.AccentStock})
	assert.Equal(t, []shell.WindowID{1, 1, 2}, f.ThemeReloads)
}

func TestApplicatorResetDropsMemo(t *testing.T) {
	f := shell.NewFake()
	a := NewApplicator(f)

	a.Apply(1, Params{Accent: shell.AccentStock})
	a.Reset()
	a.Apply(1, Params{Accent: shell.AccentStock})

	assert.Equal(t, []shell.WindowID{1, 1}, f.ThemeReloads)
}
