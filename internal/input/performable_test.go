package input

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeCtx struct {
	selection string
	windows   int
	panes     int
}

func (f fakeCtx) HasSelection() bool { return f.selection != "" }
func (f fakeCtx) WindowCount() int   { return f.windows }
func (f fakeCtx) PaneCount() int     { return f.panes }

func TestCanPerform_CopyRequiresSelection(t *testing.T) {
	a := Action{Kind: ActionCopyToClipboard}
	require.False(t, CanPerform(a, fakeCtx{}))
	require.True(t, CanPerform(a, fakeCtx{selection: "hi"}))
}

func TestCanPerform_SwitchWindowRequiresIndexInRange(t *testing.T) {
	a := Action{Kind: ActionSwitchWindow, Index: 3}
	require.False(t, CanPerform(a, fakeCtx{windows: 2}))
	require.True(t, CanPerform(a, fakeCtx{windows: 3}))
}

func TestCanPerform_CycleWindowRequiresAtLeastTwo(t *testing.T) {
	a := Action{Kind: ActionCycleWindow}
	require.False(t, CanPerform(a, fakeCtx{windows: 1}))
	require.True(t, CanPerform(a, fakeCtx{windows: 2}))
}

func TestCanPerform_FocusPaneRequiresAtLeastTwoPanes(t *testing.T) {
	a := Action{Kind: ActionFocusPane}
	require.False(t, CanPerform(a, fakeCtx{panes: 1}))
	require.True(t, CanPerform(a, fakeCtx{panes: 2}))
}

func TestCanPerform_OthersAlwaysPerformable(t *testing.T) {
	require.True(t, CanPerform(Action{Kind: ActionClearScreen}, fakeCtx{}))
	require.True(t, CanPerform(Action{Kind: ActionNone}, fakeCtx{}))
}
