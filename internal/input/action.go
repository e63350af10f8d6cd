// Package input implements the keybind grammar, action dispatch, and
// keyboard/IME/mouse handler state machines (C4): parsing
// "[performable:]mod+...+key=action[:param]" strings, the performable
// predicate that decides whether a binding fires or falls through, and
// the stateful handlers that turn raw key/composition/pointer events
// into either a dispatched Action or an outbound wire message.
package input

// ActionKind enumerates the action variants a keybind can invoke
// (spec §4.4 "Action variants").
type ActionKind string

const (
	ActionCopyToClipboard    ActionKind = "copy_to_clipboard"
	ActionPasteFromClipboard ActionKind = "paste_from_clipboard"
	ActionScroll             ActionKind = "scroll"
	ActionSendText           ActionKind = "send_text"
	ActionClearScreen        ActionKind = "clear_screen"
	ActionResetTerminal      ActionKind = "reset_terminal"
	ActionNewWindow          ActionKind = "new_window"
	ActionCloseWindow        ActionKind = "close_window"
	ActionSwitchWindow       ActionKind = "switch_window"
	ActionCycleWindow        ActionKind = "cycle_window"
	ActionFocusPane          ActionKind = "focus_pane"
	ActionToggleFullscreen   ActionKind = "toggle_fullscreen"
	ActionOpenSettings       ActionKind = "open_settings"
	ActionSelectAll          ActionKind = "select_all"
	ActionClearSelection     ActionKind = "clear_selection"
	ActionNone               ActionKind = "none"
)

// ScrollAmount enumerates the `scroll` action's amount parameter.
type ScrollAmount string

const (
	ScrollLine     ScrollAmount = "line"
	ScrollHalfPage ScrollAmount = "half_page"
	ScrollPage     ScrollAmount = "page"
	ScrollTop      ScrollAmount = "top"
	ScrollBottom   ScrollAmount = "bottom"
)

// Direction is the generic up/down/left/right/next/prev parameter
// shared by `scroll`, `cycle_window`, and `focus_pane`.
type Direction string

const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
	DirNext  Direction = "next"
	DirPrev  Direction = "prev"
)

// Action is a parsed, tagged keybind action. Only the fields relevant
// to Kind are populated.
type Action struct {
	Kind      ActionKind
	Text      string       // send_text
	Direction Direction    // scroll, cycle_window, focus_pane
	Amount    ScrollAmount // scroll
	Index     int          // switch_window, 1-based
}

// ClearScreenSequence / ResetTerminalSequence are the literal bytes the
// clear_screen and reset_terminal actions emit (spec §4.4).
const (
	ClearScreenSequence   = "\x0C"
	ResetTerminalSequence = "\x1Bc"
)

var knownActions = map[ActionKind]bool{
	ActionCopyToClipboard:    true,
	ActionPasteFromClipboard: true,
	ActionScroll:             true,
	ActionSendText:           true,
	ActionClearScreen:        true,
	ActionResetTerminal:      true,
	ActionNewWindow:          true,
	ActionCloseWindow:        true,
	ActionSwitchWindow:       true,
	ActionCycleWindow:        true,
	ActionFocusPane:          true,
	ActionToggleFullscreen:   true,
	ActionOpenSettings:       true,
	ActionSelectAll:          true,
	ActionClearSelection:     true,
	ActionNone:               true,
}
