package dullahan

import (
	"github.com/raymond-w-ko/dullahan-sub003/internal/input"
	"github.com/raymond-w-ko/dullahan-sub003/internal/session"
	"github.com/raymond-w-ko/dullahan-sub003/internal/wire"
)

// --- session.ConnectionListener -------------------------------------

func (c *Core) OnOpen()       { c.events.publish(EventConnectionOpen, struct{}{}) }
func (c *Core) OnDisconnect() { c.events.publish(EventDisconnect, struct{}{}) }

// --- session.ResizeEmitter -------------------------------------------

// EmitResize sends the debounced `resize` message for one pane.
func (c *Core) EmitResize(paneID string, size session.PaneSize) {
	_ = c.sendJSON(wire.ResizeOut{Type: "resize", PaneID: paneID, Cols: size.Cols, Rows: size.Rows})
}

// SetPaneSize queues a pane resize through the 333ms debouncer (spec
// §4.5 "Resize debounce"), silently dropped when this client isn't
// master.
func (c *Core) SetPaneSize(paneID string, cols, rows int) {
	if !c.master.IsMaster() {
		return
	}
	c.resize.SetPaneSize(paneID, session.PaneSize{Cols: cols, Rows: rows})
}

// --- session.LayoutEmitter -------------------------------------------

func (c *Core) EmitResizeLayout(windowID string, nodes []wire.LayoutNode) {
	_ = c.sendJSON(wire.ResizeLayoutOut{Type: "resize_layout", WindowID: windowID, Nodes: nodes})
}

func (c *Core) EmitSwapPanes(windowID, a, b string) {
	_ = c.sendJSON(wire.SwapPanesOut{Type: "swap_panes", WindowID: windowID, A: a, B: b})
}

func (c *Core) EmitSetWindowLayout(windowID, templateID string) {
	_ = c.sendJSON(wire.SetWindowLayoutOut{Type: "set_window_layout", WindowID: windowID, TemplateID: templateID})
}

// DragDivider ends a divider drag, gated by master election (spec
// §4.5).
func (c *Core) DragDivider(windowID string, nodes []wire.LayoutNode) error {
	return c.layoutCtl.EndDrag(windowID, nodes)
}

// SwapPanes swaps two panes within a window, gated by master election.
func (c *Core) SwapPanes(windowID, a, b string) error {
	return c.layoutCtl.SwapPanes(windowID, a, b)
}

// ApplyLayoutTemplate applies a named layout template to a window,
// gated by master election.
func (c *Core) ApplyLayoutTemplate(windowID, templateID string) error {
	return c.layoutCtl.ApplyTemplate(windowID, templateID)
}

// --- input.ActionContext ----------------------------------------------

func (c *Core) HasSelection() bool {
	paneID := c.ActivePane()
	if paneID == "" {
		return false
	}
	ps := c.paneFor(paneID)
	return ps.sync.Selection() != nil
}

func (c *Core) WindowCount() int { return len(c.layout.Windows) }
func (c *Core) PaneCount() int   { return c.paneCount() }

// --- input.Dispatcher ---------------------------------------------------

func (c *Core) Context() input.ActionContext { return c }

// SendKey forwards an unconsumed key event to the server as the wire
// `key` message, silently dropped when this client isn't master (spec
// §4.5 "input ... check isMaster and silently drop when false").
func (c *Core) SendKey(ev input.KeyEvent, state string) {
	if !c.master.IsMaster() {
		return
	}
	paneID := c.ActivePane()
	_ = c.sendJSON(wire.KeyOut{
		Type: "key", PaneID: paneID, Key: ev.Key, Code: ev.Code,
		KeyCode: ev.KeyCode, Repeat: ev.Repeat,
		State: wire.KeyState(state),
		Ctrl:  ev.Mods.Ctrl, Alt: ev.Mods.Alt, Shift: ev.Mods.Shift, Meta: ev.Mods.Meta,
		Timestamp: nowMillis(),
	})
}

// Execute runs a matched, performable keybind action (spec §4.4 "Action
// variants").
func (c *Core) Execute(a input.Action) {
	switch a.Kind {
	case input.ActionCopyToClipboard:
		c.SendCopy(c.ActivePane())
	case input.ActionPasteFromClipboard:
		c.SendClipboardPaste(c.ActivePane(), "c")
	case input.ActionScroll:
		c.SendScroll(c.ActivePane(), scrollDelta(a))
	case input.ActionSendText:
		c.SendText(a.Text)
	case input.ActionClearScreen:
		c.SendText(input.ClearScreenSequence)
	case input.ActionResetTerminal:
		c.SendText(input.ResetTerminalSequence)
	case input.ActionNewWindow:
		c.CreateWindow(nil)
	case input.ActionCloseWindow:
		c.CloseWindow(c.layout.ActiveWindowID)
	case input.ActionSwitchWindow:
		c.switchWindow(a.Index)
	case input.ActionCycleWindow:
		c.cycleWindow(a.Direction)
	case input.ActionFocusPane:
		c.focusPaneDirection(a.Direction)
	case input.ActionToggleFullscreen, input.ActionOpenSettings:
		c.events.publish(EventKind("ui:"+string(a.Kind)), a)
	case input.ActionSelectAll:
		c.SelectAll(c.ActivePane())
	case input.ActionClearSelection:
		c.ClearSelection(c.ActivePane())
	case input.ActionNone:
		// no-op
	}
}

func scrollDelta(a input.Action) int {
	switch a.Amount {
	case input.ScrollLine:
		return 1
	case input.ScrollHalfPage:
		return 12
	case input.ScrollPage:
		return 24
	case input.ScrollTop, input.ScrollBottom:
		return 0
	default:
		return 1
	}
}

// switchWindow/cycleWindow/focusPaneDirection are thin, best-effort
// resolvers over the cached layout; the embedding UI is expected to
// subscribe to EventLayout for the authoritative window/pane ordering.
func (c *Core) switchWindow(index int) {
	c.events.publish(EventKind("ui:switch_window"), index)
}

func (c *Core) cycleWindow(dir input.Direction) {
	c.events.publish(EventKind("ui:cycle_window"), dir)
}

func (c *Core) focusPaneDirection(dir input.Direction) {
	c.events.publish(EventKind("ui:focus_pane"), dir)
}

// --- input.TextSender (IME) / input.FocusRefocuser -----------------------

// SendText emits the wire `text` message for the active pane (spec
// §4.4 IME handler / send_text action), silently dropped when this
// client isn't master (spec §4.5).
func (c *Core) SendText(data string) {
	if !c.master.IsMaster() {
		return
	}
	_ = c.sendJSON(wire.TextOut{Type: "text", PaneID: c.ActivePane(), Data: data, Timestamp: nowMillis()})
}

// RefocusInputElement is called by GlobalCopyHandler after rerouting a
// copy keybind; delegates to RefocusFunc if the embedding UI set one.
func (c *Core) RefocusInputElement() {
	if c.RefocusFunc != nil {
		c.RefocusFunc()
	}
}

// --- input.MouseEmitter (per pane) ---------------------------------------

type mouseEmitter struct {
	core   *Core
	paneID string
}

func (m *mouseEmitter) EmitMouse(button, x, y int, state string, mods input.Modifiers) {
	_ = m.core.sendJSON(wire.MouseOut{
		Type: "mouse", PaneID: m.paneID, Button: button, X: x, Y: y,
		State: wire.MouseState(state),
		Ctrl:  mods.Ctrl, Alt: mods.Alt, Shift: mods.Shift, Meta: mods.Meta,
		Timestamp: nowMillis(),
	})
}

// --- master-gated command surface (spec §6.3) ----------------------------

func (c *Core) gated(fn func()) error { return c.master.Gate(fn) }

func (c *Core) SendMouse(paneID string, button, x, y int, state string, mods input.Modifiers) error {
	return c.gated(func() { (&mouseEmitter{core: c, paneID: paneID}).EmitMouse(button, x, y, state, mods) })
}

func (c *Core) SendScroll(paneID string, delta int) error {
	return c.gated(func() { _ = c.sendJSON(wire.ScrollOut{Type: "scroll", PaneID: paneID, Delta: delta}) })
}

func (c *Core) SendFocus(paneID string) error {
	return c.gated(func() {
		c.SetActivePane(paneID)
		_ = c.sendJSON(wire.FocusOut{Type: "focus", PaneID: paneID})
	})
}

func (c *Core) CreateWindow(templateID *string) error {
	return c.gated(func() { _ = c.sendJSON(wire.NewWindowOut{Type: "new_window", TemplateID: templateID}) })
}

func (c *Core) CloseWindow(windowID string) error {
	return c.gated(func() { _ = c.sendJSON(wire.CloseWindowOut{Type: "close_window", WindowID: windowID}) })
}

func (c *Core) ClosePane(paneID string) error {
	return c.gated(func() { _ = c.sendJSON(wire.ClosePaneOut{Type: "close_pane", PaneID: paneID}) })
}

// RequestMaster is deliberately ungated: a non-master client must be
// able to ask to become master (spec §4.5 master election).
func (c *Core) RequestMaster() error {
	return c.sendJSON(wire.RequestMasterOut{Type: "request_master"})
}

func (c *Core) SendCopy(paneID string) error {
	return c.gated(func() { _ = c.sendJSON(wire.CopyOut{Type: "copy", PaneID: paneID}) })
}

func (c *Core) SelectAll(paneID string) error {
	return c.gated(func() { _ = c.sendJSON(wire.SelectAllOut{Type: "select_all", PaneID: paneID}) })
}

func (c *Core) ClearSelection(paneID string) error {
	return c.gated(func() { _ = c.sendJSON(wire.ClearSelectionOut{Type: "clear_selection", PaneID: paneID}) })
}

func (c *Core) SendClipboardPaste(paneID, clipboard string) error {
	return c.gated(func() {
		_ = c.sendJSON(wire.ClipboardPasteOut{Type: "clipboard_paste", PaneID: paneID, Clipboard: clipboard})
	})
}

func (c *Core) SendClipboardSet(clipboard, data string) error {
	return c.gated(func() {
		_ = c.sendJSON(wire.ClipboardSetOut{Type: "clipboard_set", Clipboard: clipboard, Data: data})
	})
}

func (c *Core) SendClipboardResponse(paneID, clipboard, data string) error {
	return c.gated(func() {
		_ = c.sendJSON(wire.ClipboardResponseOut{Type: "clipboard_response", PaneID: paneID, Clipboard: clipboard, Data: data})
	})
}

// SendImagePaste forwards an already-uploaded image's server-side path
// for a pane to display (spec §4.1 `image_paste`, §7
// IMAGE_PASTE_UPLOAD_FAIL). Upload itself is the embedding UI's job;
// Core only forwards the resulting path.
func (c *Core) SendImagePaste(paneID, path string) error {
	return c.gated(func() {
		_ = c.sendJSON(wire.ImagePasteOut{Type: "image_paste", PaneID: paneID, Path: path})
	})
}

func (c *Core) sendSync(paneID string, req wire.SyncOut) {
	req.PaneID = paneID
	_ = c.sendJSON(req)
}

// SendSync issues an explicit resync request for a pane (spec §4.2).
func (c *Core) SendSync(paneID string) error {
	ps := c.paneFor(paneID)
	return c.gated(func() { c.sendSync(paneID, ps.sync.SyncRequest()) })
}
