package input

// pureModifierCodes lists the key codes that are themselves modifiers;
// these always pass through to the server unchanged, never matched
// against keybinds (spec §4.4 step 2).
var pureModifierCodes = map[string]bool{
	"ControlLeft": true, "ControlRight": true,
	"ShiftLeft": true, "ShiftRight": true,
	"AltLeft": true, "AltRight": true,
	"MetaLeft": true, "MetaRight": true,
	"CapsLock": true, "NumLock": true,
}

// KeyEvent is the handler-facing view of a DOM keydown/keyup event.
type KeyEvent struct {
	Code        string // physical key code, e.g. "KeyC", "ControlLeft"
	Key         string // logical key value, e.g. "c", "Escape"
	KeyCode     int    // legacy numeric keyCode, forwarded as-is (spec §4.1 `key.keyCode`)
	Repeat      bool   // true for OS-generated key-repeat autorepeat events
	Mods        Modifiers
	IsComposing bool
}

// Dispatcher is implemented by the action-execution layer the keyboard
// handler drives: Execute runs a matched, performable action; SendKey
// forwards an unconsumed key event to the server as the wire `key`
// message.
type Dispatcher interface {
	Execute(a Action)
	SendKey(ev KeyEvent, state string) // state is "down" or "up"
	Context() ActionContext
}

// KeyboardHandler implements the attach/keydown/keyup/detach state
// machine of spec §4.4.
type KeyboardHandler struct {
	keybinds []Keybind
	disp     Dispatcher

	attached     bool
	consumedKeys map[string]bool
}

// NewKeyboardHandler constructs a handler bound to a resolved keybind
// set and a dispatcher.
func NewKeyboardHandler(keybinds []Keybind, disp Dispatcher) *KeyboardHandler {
	return &KeyboardHandler{
		keybinds:     keybinds,
		disp:         disp,
		consumedKeys: make(map[string]bool),
	}
}

// Attach marks the handler as installed on an element (spec:
// "element is made focusable; keydown/keyup listeners installed").
func (h *KeyboardHandler) Attach() { h.attached = true }

// Detach clears all handler state, including the global copy handler's
// reach (spec "detach clears state").
func (h *KeyboardHandler) Detach() {
	h.attached = false
	h.consumedKeys = make(map[string]bool)
}

// Blur clears consumedKeys without detaching (spec "blur clears
// consumedKeys").
func (h *KeyboardHandler) Blur() {
	h.consumedKeys = make(map[string]bool)
}

// HandleKeyDown implements spec §4.4's keydown algorithm. It returns
// true if the event was consumed (preventDefault/stopPropagation would
// fire in a DOM embedding).
func (h *KeyboardHandler) HandleKeyDown(ev KeyEvent) bool {
	if ev.IsComposing {
		return false
	}
	if pureModifierCodes[ev.Code] {
		h.disp.SendKey(ev, "down")
		return false
	}

	if kb, ok := h.match(ev.Mods, ev.Key); ok {
		if kb.Action.Kind != ActionNone {
			h.consumedKeys[ev.Code] = true
			h.disp.Execute(kb.Action)
			return true
		}
	}

	h.disp.SendKey(ev, "down")
	return false
}

// HandleKeyUp implements spec §4.4's keyup algorithm.
func (h *KeyboardHandler) HandleKeyUp(ev KeyEvent) {
	if pureModifierCodes[ev.Code] {
		h.disp.SendKey(ev, "up")
		return
	}
	if h.consumedKeys[ev.Code] {
		delete(h.consumedKeys, ev.Code)
		return
	}
	h.disp.SendKey(ev, "up")
}

// match finds the first keybind whose chord matches and whose
// performable predicate (when prefixed) is satisfied; an unperformable
// `performable:` binding is skipped entirely so the key falls through
// (spec §4.4 "Performable predicate").
func (h *KeyboardHandler) match(mods Modifiers, key string) (Keybind, bool) {
	for _, kb := range h.keybinds {
		if !kb.Matches(mods, key) {
			continue
		}
		if kb.Performable && !CanPerform(kb.Action, h.disp.Context()) {
			continue
		}
		return kb, true
	}
	return Keybind{}, false
}
