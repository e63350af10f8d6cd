package input

// TextSender is implemented by the dispatcher so the IME handler can
// emit an outbound `text` message without depending on the wire/session
// packages directly.
type TextSender interface {
	SendText(data string)
}

// IMEHandler implements spec §4.4's IME handler: a hidden textarea's
// composition lifecycle (start -> update* -> end) gates whether
// ordinary key and input events are suppressed, and commits composed
// text as a `text` message.
type IMEHandler struct {
	sender     TextSender
	composing  bool
}

// NewIMEHandler constructs an IME handler bound to a text sender.
func NewIMEHandler(sender TextSender) *IMEHandler {
	return &IMEHandler{sender: sender}
}

// IsComposing reports whether a composition is currently in progress.
func (h *IMEHandler) IsComposing() bool { return h.composing }

// CompositionStart begins a composition; non-composition key events are
// suppressed until CompositionEnd.
func (h *IMEHandler) CompositionStart() { h.composing = true }

// CompositionUpdate is a no-op state transition recorded for
// completeness; composition remains in progress.
func (h *IMEHandler) CompositionUpdate() { h.composing = true }

// CompositionEnd commits the final composed text as a `text` message
// and clears the composing flag (spec: "the final text is emitted as a
// text message and the textarea cleared").
func (h *IMEHandler) CompositionEnd(finalText string) {
	h.composing = false
	if finalText != "" {
		h.sender.SendText(finalText)
	}
}

// InputEvent handles a non-composition `input` event on the hidden
// textarea; emits a `text` message unless a composition is in progress
// (spec: "Non-composition input events also emit a text message unless
// composing").
func (h *IMEHandler) InputEvent(data string) {
	if h.composing || data == "" {
		return
	}
	h.sender.SendText(data)
}

// AllowKeydown reports whether a keydown on the hidden textarea should
// be allowed through to the browser's default handling, rather than
// prevented. Only paste (Ctrl/Cmd+V) is allowed, so the action system
// can handle the pasted result (spec §4.4).
func AllowKeydown(mods Modifiers, key string) bool {
	return (mods.Ctrl || mods.Meta) && (key == "v" || key == "V")
}
