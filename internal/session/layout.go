package session

import (
	"fmt"

	"github.com/raymond-w-ko/dullahan-sub003/internal/wire"
)

// minDividerFraction is spec §4.5's "clamped to ≥ 5% per side".
const minDividerFraction = 0.05

// Axis distinguishes which sibling dimension a divider drag adjusts.
type Axis int

const (
	AxisHorizontal Axis = iota // adjusts Width
	AxisVertical               // adjusts Height
)

// LayoutCache holds the most recently received `layout` message,
// addressable by window ID (spec §4.5 "On layout, cache
// {activeWindowId, windows[], templates[]}").
type LayoutCache struct {
	ActiveWindowID string
	Windows        map[string]wire.WindowInfo
	Templates      []wire.LayoutTemplate
}

// NewLayoutCache constructs an empty layout cache.
func NewLayoutCache() *LayoutCache {
	return &LayoutCache{Windows: make(map[string]wire.WindowInfo)}
}

// OnLayout replaces the cache wholesale from an inbound `layout` message.
func (c *LayoutCache) OnLayout(msg *wire.Layout) {
	c.ActiveWindowID = msg.ActiveWindowID
	c.Windows = make(map[string]wire.WindowInfo, len(msg.Windows))
	for _, w := range msg.Windows {
		c.Windows[w.ID] = w
	}
	c.Templates = append([]wire.LayoutTemplate(nil), msg.Templates...)
}

// DragDivider returns a clone of children with the divider between
// index i and i+1 moved by delta (a fraction of the container's
// cross-axis extent), clamping so neither sibling drops below 5% of
// their combined span (spec §4.5 "Divider drag ... updates a local
// clone of the container's children (clamped to ≥5% per side)").
func DragDivider(children []wire.LayoutNode, i int, axis Axis, delta float64) ([]wire.LayoutNode, error) {
	if i < 0 || i+1 >= len(children) {
		return nil, fmt.Errorf("session: divider index %d out of range for %d children", i, len(children))
	}
	clone := make([]wire.LayoutNode, len(children))
	copy(clone, children)

	a, b := clone[i], clone[i+1]
	var aSize, bSize float64
	switch axis {
	case AxisHorizontal:
		aSize, bSize = a.Width, b.Width
	case AxisVertical:
		aSize, bSize = a.Height, b.Height
	}

	total := aSize + bSize
	minSpan := minDividerFraction * total
	newA := aSize + delta
	if newA < minSpan {
		newA = minSpan
	}
	if total-newA < minSpan {
		newA = total - minSpan
	}
	newB := total - newA

	switch axis {
	case AxisHorizontal:
		a.Width, b.Width = newA, newB
	case AxisVertical:
		a.Height, b.Height = newA, newB
	}
	clone[i], clone[i+1] = a, b
	return clone, nil
}

// LayoutEmitter is implemented by the transport layer so the layout
// controller can send resize_layout/swap_panes/set_window_layout
// without depending on wire directly.
type LayoutEmitter interface {
	EmitResizeLayout(windowID string, nodes []wire.LayoutNode)
	EmitSwapPanes(windowID, a, b string)
	EmitSetWindowLayout(windowID, templateID string)
}

// LayoutController applies master-gated layout mutation commands
// (spec §4.5: "Swapping panes or applying a template uses swap_panes /
// set_window_layout").
type LayoutController struct {
	emitter LayoutEmitter
	master  *MasterElection
}

// NewLayoutController constructs a controller gated by master.
func NewLayoutController(emitter LayoutEmitter, master *MasterElection) *LayoutController {
	return &LayoutController{emitter: emitter, master: master}
}

// EndDrag emits resize_layout for the dragged container's updated
// children (spec: "on drag end, emits resize_layout{windowId, nodes}").
func (c *LayoutController) EndDrag(windowID string, nodes []wire.LayoutNode) error {
	return c.master.Gate(func() { c.emitter.EmitResizeLayout(windowID, nodes) })
}

// SwapPanes emits swap_panes for two panes within a window.
func (c *LayoutController) SwapPanes(windowID, a, b string) error {
	return c.master.Gate(func() { c.emitter.EmitSwapPanes(windowID, a, b) })
}

// ApplyTemplate emits set_window_layout to apply a saved template.
func (c *LayoutController) ApplyTemplate(windowID, templateID string) error {
	return c.master.Gate(func() { c.emitter.EmitSetWindowLayout(windowID, templateID) })
}
