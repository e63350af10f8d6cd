package wire

import "encoding/json"

// KeyState distinguishes a keydown from a keyup in outbound `key`
// messages.
type KeyState string

const (
	KeyDown KeyState = "down"
	KeyUp   KeyState = "up"
)

// MouseState distinguishes the three outbound mouse event kinds.
type MouseState string

const (
	MouseDown MouseState = "down"
	MouseUp   MouseState = "up"
	MouseMove MouseState = "move"
)

// MouseNoButton is sent when no mouse button is currently pressed
// (spec §4.4 "the lowest pressed button, or 3 when none are pressed").
const MouseNoButton = 3

// HelloOut is the outbound `hello` handshake message.
type HelloOut struct {
	Type     string  `json:"type"`
	ClientID string  `json:"clientId"`
	ThemeFG  *string `json:"themeFg,omitempty"`
	ThemeBG  *string `json:"themeBg,omitempty"`
}

// KeyOut is the outbound `key` message.
type KeyOut struct {
	Type      string   `json:"type"`
	PaneID    string   `json:"paneId"`
	Key       string   `json:"key"`
	Code      string   `json:"code"`
	KeyCode   int      `json:"keyCode"`
	State     KeyState `json:"state"`
	Ctrl      bool     `json:"ctrl"`
	Alt       bool     `json:"alt"`
	Shift     bool     `json:"shift"`
	Meta      bool     `json:"meta"`
	Repeat    bool     `json:"repeat"`
	Timestamp int64    `json:"timestamp"`
}

// TextOut is the outbound `text` message (IME commit / send_text action).
type TextOut struct {
	Type      string `json:"type"`
	PaneID    string `json:"paneId"`
	Data      string `json:"data"`
	Timestamp int64  `json:"timestamp"`
}

// MouseOut is the outbound `mouse` message.
type MouseOut struct {
	Type      string     `json:"type"`
	PaneID    string     `json:"paneId"`
	Button    int        `json:"button"`
	X         int        `json:"x"`
	Y         int        `json:"y"`
	State     MouseState `json:"state"`
	Ctrl      bool       `json:"ctrl"`
	Alt       bool       `json:"alt"`
	Shift     bool       `json:"shift"`
	Meta      bool       `json:"meta"`
	Timestamp int64      `json:"timestamp"`
}

// ResizeOut is the outbound `resize` message.
type ResizeOut struct {
	Type   string `json:"type"`
	PaneID string `json:"paneId"`
	Cols   int    `json:"cols"`
	Rows   int    `json:"rows"`
}

// ScrollOut is the outbound `scroll` message.
type ScrollOut struct {
	Type   string `json:"type"`
	PaneID string `json:"paneId"`
	Delta  int    `json:"delta"`
}

// FocusOut is the outbound `focus` message.
type FocusOut struct {
	Type   string `json:"type"`
	PaneID string `json:"paneId"`
}

// SyncOut is the outbound `sync` resync request of §4.2.
type SyncOut struct {
	Type      string `json:"type"`
	PaneID    string `json:"paneId"`
	Gen       uint32 `json:"gen"`
	MinRowID  uint64 `json:"minRowId"`
}

// NewWindowOut is the outbound `new_window` message.
type NewWindowOut struct {
	Type       string  `json:"type"`
	TemplateID *string `json:"templateId,omitempty"`
}

// CloseWindowOut is the outbound `close_window` message.
type CloseWindowOut struct {
	Type     string `json:"type"`
	WindowID string `json:"windowId"`
}

// ClosePaneOut is the outbound `close_pane` message.
type ClosePaneOut struct {
	Type   string `json:"type"`
	PaneID string `json:"paneId"`
}

// RequestMasterOut is the outbound `request_master` message.
type RequestMasterOut struct {
	Type string `json:"type"`
}

// PingOut is the outbound `ping` message.
type PingOut struct {
	Type string `json:"type"`
}

// CopyOut is the outbound `copy` message.
type CopyOut struct {
	Type   string `json:"type"`
	PaneID string `json:"paneId"`
}

// SelectAllOut is the outbound `select_all` message.
type SelectAllOut struct {
	Type   string `json:"type"`
	PaneID string `json:"paneId"`
}

// ClearSelectionOut is the outbound `clear_selection` message.
type ClearSelectionOut struct {
	Type   string `json:"type"`
	PaneID string `json:"paneId"`
}

// ClipboardPasteOut is the outbound `clipboard_paste` message.
type ClipboardPasteOut struct {
	Type      string `json:"type"`
	PaneID    string `json:"paneId"`
	Clipboard string `json:"clipboard"` // "c" or "p"
}

// ClipboardSetOut is the outbound `clipboard_set` message.
type ClipboardSetOut struct {
	Type      string `json:"type"`
	Clipboard string `json:"clipboard"`
	Data      string `json:"data"`
}

// ClipboardResponseOut is the outbound `clipboard_response` message.
type ClipboardResponseOut struct {
	Type      string `json:"type"`
	PaneID    string `json:"paneId"`
	Clipboard string `json:"clipboard"`
	Data      string `json:"data"`
}

// ResizeLayoutOut is the outbound `resize_layout` message.
type ResizeLayoutOut struct {
	Type     string       `json:"type"`
	WindowID string       `json:"windowId"`
	Nodes    []LayoutNode `json:"nodes"`
}

// SwapPanesOut is the outbound `swap_panes` message.
type SwapPanesOut struct {
	Type     string `json:"type"`
	WindowID string `json:"windowId"`
	A        string `json:"a"`
	B        string `json:"b"`
}

// SetWindowLayoutOut is the outbound `set_window_layout` message.
type SetWindowLayoutOut struct {
	Type       string `json:"type"`
	WindowID   string `json:"windowId"`
	TemplateID string `json:"templateId"`
}

// ImagePasteOut is the outbound `image_paste` message.
type ImagePasteOut struct {
	Type   string `json:"type"`
	PaneID string `json:"paneId"`
	Path   string `json:"path"`
}

// MarshalOutbound encodes an outbound message struct to the JSON text
// frame the client sends (legacy path retained for backwards
// compatibility per spec §4.1/§6.1).
func MarshalOutbound(msg interface{}) ([]byte, error) {
	return json.Marshal(msg)
}
