package input

// FocusRefocuser is implemented by the embedding UI layer so the global
// copy handler can return focus to the pane's input element after
// rerouting a copy keybind (spec §4.4 "Global copy handler").
type FocusRefocuser interface {
	RefocusInputElement()
}

// GlobalCopyHandler reroutes a copy_to_clipboard keybind pressed while
// the keyboard handler's element is unfocused but the user has a DOM
// selection over the terminal element — a capture-phase
// document-level listener in the source, modeled here as an explicit
// call the embedding layer makes on every document keydown.
type GlobalCopyHandler struct {
	kb   *KeyboardHandler
	refs FocusRefocuser
}

// NewGlobalCopyHandler builds a copy rerouter sharing the keyboard
// handler's keybind set and dispatcher.
func NewGlobalCopyHandler(kb *KeyboardHandler, refs FocusRefocuser) *GlobalCopyHandler {
	return &GlobalCopyHandler{kb: kb, refs: refs}
}

// HandleDocumentKeyDown is invoked for every document-level keydown.
// It only acts while the keyboard handler is attached, the pane is
// unfocused, and a selection intersects the terminal; returns true if
// it consumed the event.
func (g *GlobalCopyHandler) HandleDocumentKeyDown(ev KeyEvent, elementFocused, selectionIntersectsTerminal bool) bool {
	if !g.kb.attached || elementFocused || !selectionIntersectsTerminal {
		return false
	}
	kb, ok := g.kb.match(ev.Mods, ev.Key)
	if !ok || kb.Action.Kind != ActionCopyToClipboard {
		return false
	}
	if kb.Performable && !CanPerform(kb.Action, g.kb.disp.Context()) {
		return false
	}
	g.kb.disp.Execute(kb.Action)
	if g.refs != nil {
		g.refs.RefocusInputElement()
	}
	return true
}
