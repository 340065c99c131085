package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostbar-io/frostbar/internal/shell"
)

func TestRegistryRefresh(t *testing.T) {
	f := shell.NewFake()
	f.AddWindow(&shell.FakeWindow{Handle: 0x100, ClassName: shell.ClassPrimaryTaskbar, Display: 1})
	f.AddWindow(&shell.FakeWindow{Handle: 0x200, ClassName: shell.ClassSecondaryTaskbar, Display: 2})
	f.AddWindow(&shell.FakeWindow{Handle: 0x201, ClassName: shell.ClassSecondaryTaskbar, Display: 3})

	r := NewRegistry(f)
	r.Refresh(false)

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, shell.WindowID(0x100), r.Primary())

	tb, ok := r.At(2)
	require.True(t, ok)
	assert.Equal(t, shell.WindowID(0x200), tb.ID)
	assert.Equal(t, StateNormal, tb.State)

	tb, ok = r.At(3)
	require.True(t, ok)
	assert.Equal(t, shell.WindowID(0x201), tb.ID)
}

func TestRegistryRefresh_NoPrimary(t *testing.T) {
	f := shell.NewFake()
	r := NewRegistry(f)
	r.Refresh(false)

	assert.Equal(t, 0, r.Len())
	assert.Equal(t, shell.WindowID(0), r.Primary())
}

func TestRegistryRefresh_DropsStaleEntries(t *testing.T) {
	f := shell.NewFake()
	f.AddWindow(&shell.FakeWindow{Handle: 0x100, ClassName: shell.ClassPrimaryTaskbar, Display: 1})
	f.AddWindow(&shell.FakeWindow{Handle: 0x200, ClassName: shell.ClassSecondaryTaskbar, Display: 2})

	r := NewRegistry(f)
	r.Refresh(false)
	require.Equal(t, 2, r.Len())

	// A monitor goes away; the rebuild must not keep its taskbar around.
	f.RemoveWindow(0x200)
	r.Refresh(false)

	assert.Equal(t, 1, r.Len())
	_, ok := r.At(2)
	assert.False(t, ok)
}

func TestRegistryRefresh_ResetsState(t *testing.T) {
	f := shell.NewFake()
	f.AddWindow(&shell.FakeWindow{Handle: 0x100, ClassName: shell.ClassPrimaryTaskbar, Display: 1})

	r := NewRegistry(f)
	r.Refresh(false)

	tb, ok := r.At(1)
	require.True(t, ok)
	tb.State = StateWindowMaximised

	r.Refresh(false)
	tb, ok = r.At(1)
	require.True(t, ok)
	assert.Equal(t, StateNormal, tb.State)
}
