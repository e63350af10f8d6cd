package input

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingDispatcher struct {
	executed []Action
	sent     []KeyEvent
	states   []string
	ctx      fakeCtx
}

func (d *recordingDispatcher) Execute(a Action) { d.executed = append(d.executed, a) }
func (d *recordingDispatcher) SendKey(ev KeyEvent, state string) {
	d.sent = append(d.sent, ev)
	d.states = append(d.states, state)
}
func (d *recordingDispatcher) Context() ActionContext { return d.ctx }

func mustParse(t *testing.T, s string) Keybind {
	t.Helper()
	kb, err := ParseKeybind(s)
	require.NoError(t, err)
	return kb
}

// S6: "performable:ctrl+c=copy_to_clipboard" with no selection. Pressing
// Ctrl+C must not be consumed: it forwards as an outbound key{down},
// and the subsequent keyup also forwards.
func TestKeyboardHandler_S6_UnperformableBindingFallsThrough(t *testing.T) {
	disp := &recordingDispatcher{ctx: fakeCtx{}} // no selection
	kb := mustParse(t, "performable:ctrl+c=copy_to_clipboard")
	h := NewKeyboardHandler([]Keybind{kb}, disp)
	h.Attach()

	ev := KeyEvent{Code: "KeyC", Key: "c", Mods: Modifiers{Ctrl: true}}
	consumed := h.HandleKeyDown(ev)
	require.False(t, consumed)
	require.Empty(t, disp.executed)
	require.Len(t, disp.sent, 1)
	require.Equal(t, "down", disp.states[0])

	h.HandleKeyUp(ev)
	require.Len(t, disp.sent, 2)
	require.Equal(t, "up", disp.states[1])
}

// S7: "ctrl+shift+c=copy_to_clipboard" with a selection present. Pressing
// and releasing Ctrl+Shift+C invokes the clipboard write and produces no
// outbound key frame for either edge.
func TestKeyboardHandler_S7_PerformableBindingConsumesBothEdges(t *testing.T) {
	disp := &recordingDispatcher{ctx: fakeCtx{selection: "hello"}}
	kb := mustParse(t, "ctrl+shift+c=copy_to_clipboard")
	h := NewKeyboardHandler([]Keybind{kb}, disp)
	h.Attach()

	ev := KeyEvent{Code: "KeyC", Key: "c", Mods: Modifiers{Ctrl: true, Shift: true}}
	consumed := h.HandleKeyDown(ev)
	require.True(t, consumed)
	require.Len(t, disp.executed, 1)
	require.Equal(t, ActionCopyToClipboard, disp.executed[0].Kind)
	require.Empty(t, disp.sent)

	h.HandleKeyUp(ev)
	require.Empty(t, disp.sent, "consumed key's keyup must be suppressed")
}

func TestKeyboardHandler_ComposingKeyDownIgnored(t *testing.T) {
	disp := &recordingDispatcher{}
	h := NewKeyboardHandler(nil, disp)
	consumed := h.HandleKeyDown(KeyEvent{Code: "KeyA", Key: "a", IsComposing: true})
	require.False(t, consumed)
	require.Empty(t, disp.sent)
}

func TestKeyboardHandler_PureModifierAlwaysForwardedWithoutMatching(t *testing.T) {
	disp := &recordingDispatcher{}
	kb := mustParse(t, "ctrl=none")
	h := NewKeyboardHandler([]Keybind{kb}, disp)
	h.HandleKeyDown(KeyEvent{Code: "ControlLeft", Key: "Control"})
	require.Len(t, disp.sent, 1)
	require.Empty(t, disp.executed)
}

func TestKeyboardHandler_NoneActionForwardsAsRegularInput(t *testing.T) {
	disp := &recordingDispatcher{}
	kb := mustParse(t, "ctrl+n=none")
	h := NewKeyboardHandler([]Keybind{kb}, disp)
	consumed := h.HandleKeyDown(KeyEvent{Code: "KeyN", Key: "n", Mods: Modifiers{Ctrl: true}})
	require.False(t, consumed)
	require.Len(t, disp.sent, 1)
}

func TestKeyboardHandler_BlurClearsConsumedKeys(t *testing.T) {
	disp := &recordingDispatcher{ctx: fakeCtx{selection: "x"}}
	kb := mustParse(t, "ctrl+c=copy_to_clipboard")
	h := NewKeyboardHandler([]Keybind{kb}, disp)
	ev := KeyEvent{Code: "KeyC", Key: "c", Mods: Modifiers{Ctrl: true}}
	h.HandleKeyDown(ev)
	h.Blur()
	h.HandleKeyUp(ev)
	require.Len(t, disp.sent, 1, "after blur, the stale consumed-key entry is gone so keyup forwards")
}
