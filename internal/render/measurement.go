package render

// CellMetrics is the measured pixel footprint of one monospace terminal
// cell, typically obtained by the caller measuring a hidden prototype
// glyph in the DOM (spec §4.3/§6 "pane dimension calculation").
type CellMetrics struct {
	Width  float64
	Height float64
}

// minPaneDim/maxPaneDim clamp computed pane dimensions to a sane range
// regardless of how small or large the viewport measures (spec §4.3).
const (
	minPaneDim = 1
	maxPaneDim = 500
)

// ComputeDimensions derives (cols, rows) from the available content box
// and a cell's measured footprint: floor((available-padding)/cellSize),
// clamped to [1, 500] on each axis.
func ComputeDimensions(contentWidth, contentHeight, paddingX, paddingY float64, cell CellMetrics) (cols, rows int) {
	cols = clampDim(int((contentWidth - paddingX) / cell.Width))
	rows = clampDim(int((contentHeight - paddingY) / cell.Height))
	return cols, rows
}

func clampDim(v int) int {
	if v < minPaneDim {
		return minPaneDim
	}
	if v > maxPaneDim {
		return maxPaneDim
	}
	return v
}
