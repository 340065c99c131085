package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frostbar-io/frostbar/internal/shell"
)

const (
	testPrimary  shell.WindowID = 0x100
	testTray     shell.WindowID = 0x110
	testPeekBtn  shell.WindowID = 0x111
	testOverflow shell.WindowID = 0x112
)

func newPeekFake() *shell.Fake {
	f := shell.NewFake()
	f.AddWindow(&shell.FakeWindow{Handle: testPrimary, ClassName: shell.ClassPrimaryTaskbar, Display: 1})
	f.AddChild(&shell.FakeWindow{Handle: testTray, ClassName: shell.ClassTrayNotify, Parent: testPrimary})
	f.AddChild(&shell.FakeWindow{Handle: testPeekBtn, ClassName: shell.ClassPeekButton, Parent: testTray})
	f.AddChild(&shell.FakeWindow{Handle: testOverflow, ClassName: shell.ClassOverflowButton, Parent: testTray})
	return f
}

func TestPeekFirstReconcileApplies(t *testing.T) {
	f := newPeekFake()
	p := NewPeekController(f)

	p.Set(true, testPrimary)

	assert.Equal(t, []shell.ShowCall{{ID: testPeekBtn, Visible: true}}, f.ShowCalls)
}

func TestPeekUnchangedStateIsNoOp(t *testing.T) {
	f := newPeekFake()
	p := NewPeekController(f)

	p.Set(true, testPrimary)
	p.Set(true, testPrimary)
	p.Set(true, testPrimary)

	assert.Len(t, f.ShowCalls, 1)
}

func TestPeekVisibilityChangeApplies(t *testing.T) {
	f := newPeekFake()
	p := NewPeekController(f)

	p.Set(true, testPrimary)
	p.Set(false, testPrimary)

	assert.Equal(t, []shell.ShowCall{
		{ID: testPeekBtn, Visible: true},
		{ID: testPeekBtn, Visible: false},
	}, f.ShowCalls)
}

func TestPeekTaskbarIdentityChangeApplies(t *testing.T) {
	f := newPeekFake()
	p := NewPeekController(f)
	p.Set(true, testPrimary)

	// A shell restart recycles the taskbar; same visibility, new handles.
	const newPrimary, newTray, newBtn shell.WindowID = 0x300, 0x310, 0x311
	f.AddWindow(&shell.FakeWindow{Handle: newPrimary, ClassName: shell.ClassPrimaryTaskbar, Display: 1})
	f.AddChild(&shell.FakeWindow{Handle: newTray, ClassName: shell.ClassTrayNotify, Parent: newPrimary})
	f.AddChild(&shell.FakeWindow{Handle: newBtn, ClassName: shell.ClassPeekButton, Parent: newTray})

	p.Set(true, newPrimary)

	assert.Equal(t, []shell.ShowCall{
		{ID: testPeekBtn, Visible: true},
		{ID: newBtn, Visible: true},
	}, f.ShowCalls)
}

func TestPeekNudgesOverflowTwice(t *testing.T) {
	f := newPeekFake()
	p := NewPeekController(f)

	p.Set(false, testPrimary)

	assert.Equal(t, []shell.WindowID{testOverflow, testOverflow}, f.Releases)
}

func TestPeekMissingControlsRetriesNextReconcile(t *testing.T) {
	f := shell.NewFake()
	f.AddWindow(&shell.FakeWindow{Handle: testPrimary, ClassName: shell.ClassPrimaryTaskbar, Display: 1})
	p := NewPeekController(f)

	// No tray children yet, nothing applied and nothing memoized.
	p.Set(false, testPrimary)
	assert.Empty(t, f.ShowCalls)

	f.AddChild(&shell.FakeWindow{Handle: testTray, ClassName: shell.ClassTrayNotify, Parent: testPrimary})
	f.AddChild(&shell.FakeWindow{Handle: testPeekBtn, ClassName: shell.ClassPeekButton, Parent: testTray})

	p.Set(false, testPrimary)
	assert.Equal(t, []shell.ShowCall{{ID: testPeekBtn, Visible: false}}, f.ShowCalls)
}

func TestPeekZeroTaskbarIsIgnored(t *testing.T) {
	f := newPeekFake()
	p := NewPeekController(f)

	p.Set(false, 0)

	assert.Empty(t, f.ShowCalls)
}
