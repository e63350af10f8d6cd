package input

// ButtonMask bits (spec §4.4 "Buttons tracked as a bitmask").
const (
	ButtonLeft   = 1 << 0
	ButtonMiddle = 1 << 1
	ButtonRight  = 1 << 2
)

// MouseEmitter is implemented by the session layer so the mouse
// handler can emit outbound mouse events without importing it
// directly.
type MouseEmitter interface {
	EmitMouse(button, x, y int, state string, mods Modifiers)
}

// CellCoords converts a pixel position to terminal cell coordinates
// given the prototype cell's measured footprint and the terminal
// element's padding (spec §4.4 "Cell-coordinate conversion").
func CellCoords(pixelX, pixelY, paddingX, paddingY float64, cell CellMetrics) (col, row int) {
	col = int((pixelX - paddingX) / cell.Width)
	row = int((pixelY - paddingY) / cell.Height)
	return
}

// CellMetrics mirrors render.CellMetrics's shape locally so this
// package does not need to import internal/render for a two-field
// value type.
type CellMetrics struct {
	Width  float64
	Height float64
}

// lowestPressedButton returns the lowest-numbered pressed button from
// a bitmask, or MouseNoButton (3) when none are pressed (spec §4.4).
func lowestPressedButton(mask int) int {
	switch {
	case mask&ButtonLeft != 0:
		return 0
	case mask&ButtonMiddle != 0:
		return 1
	case mask&ButtonRight != 0:
		return 2
	default:
		return 3 // wire.MouseNoButton
	}
}

// MouseHandler implements spec §4.4's mouse handler: button bitmask
// tracking, always-emit down/up, and throttled, coordinate-deduplicated
// move events flushed once per animation frame.
type MouseHandler struct {
	emitter MouseEmitter

	buttonMask int
	lastEmitX  int
	lastEmitY  int
	hasLast    bool

	pendingX, pendingY int
	pendingMods        Modifiers
	hasPending         bool
}

// NewMouseHandler constructs a mouse handler bound to an emitter.
func NewMouseHandler(emitter MouseEmitter) *MouseHandler {
	return &MouseHandler{emitter: emitter}
}

// MouseDown/MouseUp always emit (spec: "mousedown/mouseup always emit").
func (h *MouseHandler) MouseDown(button, col, row int, mods Modifiers) {
	h.buttonMask |= buttonBit(button)
	h.emitter.EmitMouse(button, col, row, "down", mods)
}

func (h *MouseHandler) MouseUp(button, col, row int, mods Modifiers) {
	h.buttonMask &^= buttonBit(button)
	h.emitter.EmitMouse(button, col, row, "up", mods)
}

// MouseMove stores the latest position into the pending slot; call
// FlushAnimationFrame once per animation-frame tick to actually emit.
func (h *MouseHandler) MouseMove(col, row int, mods Modifiers) {
	h.pendingX, h.pendingY, h.pendingMods = col, row, mods
	h.hasPending = true
}

// MouseLeave resets the last-emitted position so the next move is
// guaranteed to emit, and clears any still-pending move.
func (h *MouseHandler) MouseLeave() {
	h.hasLast = false
	h.hasPending = false
}

// FlushAnimationFrame emits the pending mousemove, if any, provided its
// cell coordinates differ from the last emitted position.
func (h *MouseHandler) FlushAnimationFrame() {
	if !h.hasPending {
		return
	}
	x, y, mods := h.pendingX, h.pendingY, h.pendingMods
	h.hasPending = false

	if h.hasLast && x == h.lastEmitX && y == h.lastEmitY {
		return
	}
	h.lastEmitX, h.lastEmitY, h.hasLast = x, y, true
	h.emitter.EmitMouse(lowestPressedButton(h.buttonMask), x, y, "move", mods)
}

func buttonBit(button int) int {
	switch button {
	case 0:
		return ButtonLeft
	case 1:
		return ButtonMiddle
	case 2:
		return ButtonRight
	default:
		return 0
	}
}
