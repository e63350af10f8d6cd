package input

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKeybind_PerformablePrefixAndModifiers(t *testing.T) {
	kb, err := ParseKeybind("performable:ctrl+c=copy_to_clipboard")
	require.NoError(t, err)
	require.True(t, kb.Performable)
	require.True(t, kb.Mods.Ctrl)
	require.False(t, kb.Mods.Shift)
	require.Equal(t, "c", kb.Key)
	require.Equal(t, ActionCopyToClipboard, kb.Action.Kind)
}

func TestParseKeybind_MultipleModifiersAllMustBeSet(t *testing.T) {
	kb, err := ParseKeybind("ctrl+shift+c=copy_to_clipboard")
	require.NoError(t, err)
	require.True(t, kb.Mods.Ctrl)
	require.True(t, kb.Mods.Shift)
	require.False(t, kb.Mods.Alt)
	require.False(t, kb.Mods.Meta)
}

func TestParseKeybind_SpecialKeyNameAndAlias(t *testing.T) {
	kb, err := ParseKeybind("ctrl+esc=toggle_fullscreen")
	require.NoError(t, err)
	require.Equal(t, "escape", kb.Key)
}

func TestParseKeybind_UnknownMultiCharTokenAcceptedVerbatim(t *testing.T) {
	kb, err := ParseKeybind("ctrl+MediaPlayPause=none")
	require.NoError(t, err)
	require.Equal(t, "MediaPlayPause", kb.Key)
}

func TestParseKeybind_UnknownModifierErrors(t *testing.T) {
	_, err := ParseKeybind("hyper+c=copy_to_clipboard")
	require.Error(t, err)
}

func TestParseKeybind_MissingEqualsErrors(t *testing.T) {
	_, err := ParseKeybind("ctrl+c")
	require.Error(t, err)
}

func TestParseKeybind_UnknownActionErrors(t *testing.T) {
	_, err := ParseKeybind("ctrl+c=not_a_real_action")
	require.Error(t, err)
}

// S10: parse "text:\x1b[A" produces send_text{text:"\x1B[A"}.
func TestParseKeybind_S10_SendTextEscape(t *testing.T) {
	kb, err := ParseKeybind(`up=send_text:\x1b[A`)
	require.NoError(t, err)
	require.Equal(t, ActionSendText, kb.Action.Kind)
	require.Equal(t, "\x1B[A", kb.Action.Text)
}

func TestParseKeybind_ScrollParam(t *testing.T) {
	kb, err := ParseKeybind("shift+pageup=scroll:up,page")
	require.NoError(t, err)
	require.Equal(t, DirUp, kb.Action.Direction)
	require.Equal(t, ScrollPage, kb.Action.Amount)
}

func TestParseKeybind_SwitchWindowIndex(t *testing.T) {
	kb, err := ParseKeybind("meta+1=switch_window:1")
	require.NoError(t, err)
	require.Equal(t, 1, kb.Action.Index)
}

func TestFormat_RoundTripsNonAliasTokens(t *testing.T) {
	original := "ctrl+shift+c=send_text:\\x1b[A"
	kb, err := ParseKeybind(original)
	require.NoError(t, err)

	again, err := ParseKeybind(Format(kb))
	require.NoError(t, err)
	require.Equal(t, kb.Performable, again.Performable)
	require.Equal(t, kb.Mods, again.Mods)
	require.Equal(t, kb.Key, again.Key)
	require.Equal(t, kb.Action, again.Action)
}

func TestMatches_SingleCharCaseInsensitive(t *testing.T) {
	kb, err := ParseKeybind("ctrl+c=copy_to_clipboard")
	require.NoError(t, err)
	require.True(t, kb.Matches(Modifiers{Ctrl: true}, "C"))
	require.True(t, kb.Matches(Modifiers{Ctrl: true}, "c"))
	require.False(t, kb.Matches(Modifiers{Ctrl: true, Shift: true}, "c"), "modifiers must match exactly")
}

func TestMatches_MultiCharKeyExactCase(t *testing.T) {
	kb, err := ParseKeybind("ctrl+Escape=toggle_fullscreen")
	require.NoError(t, err)
	// canonicalKey resolves "Escape" -> "escape"
	require.True(t, kb.Matches(Modifiers{Ctrl: true}, "escape"))
	require.False(t, kb.Matches(Modifiers{Ctrl: true}, "Escape"))
}

func TestUnescapeLiteral_AllEscapeForms(t *testing.T) {
	out, err := unescapeLiteral(`\\ \n \r \t \0 \x41 \u{1F600}`)
	require.NoError(t, err)
	require.Equal(t, "\\ \n \r \t \x00 A \U0001F600", out)
}

func TestUnescapeLiteral_UnknownEscapeErrors(t *testing.T) {
	_, err := unescapeLiteral(`\q`)
	require.Error(t, err)
}

func TestUnescapeLiteral_UnterminatedEscapeErrors(t *testing.T) {
	_, err := unescapeLiteral(`abc\`)
	require.Error(t, err)
}

func TestUnescapeLiteral_CodepointOverMaxErrors(t *testing.T) {
	_, err := unescapeLiteral(`\u{110000}`)
	require.Error(t, err)
}
