package syncengine

import "github.com/raymond-w-ko/dullahan-sub003/internal/wire"

// TerminalSnapshot is the render-ready, flattened view of a pane's
// current state, returned by BuildViewportSnapshot (spec §4.2).
type TerminalSnapshot struct {
	PaneID     string
	Cols, Rows int
	Cursor     wire.Cursor
	AltScreen  bool
	Scrollback wire.Scrollback
	Selection  *wire.Selection
	Title      string

	// Cells is row-major, length Cols*Rows.
	Cells []wire.Cell
	// Styles is the merged, most-recent style table.
	Styles wire.StyleTable
	// RowIDs is the stable identity of each viewport row, length Rows.
	RowIDs []uint64
	// Graphemes/Hyperlinks are rewritten back to global cell index
	// (y*Cols+col) form, matching the snapshot wire representation.
	Graphemes  map[int][]rune
	Hyperlinks map[int]string
}

// BuildViewportSnapshot assembles the render-facing TerminalSnapshot by
// concatenating rowCache[rowIds[y]] for y in [0, rows), rewriting the
// row-relative grapheme/hyperlink side tables back to global cell index
// form (spec §4.2 buildViewportSnapshot).
func (p *Pane) BuildViewportSnapshot() TerminalSnapshot {
	cells := make([]wire.Cell, 0, p.cols*p.rows)
	graphemes := make(map[int][]rune)
	hyperlinks := make(map[int]string)

	for y := 0; y < p.rows; y++ {
		var id uint64 = wire.InvalidRowID
		if y < len(p.lastRowIDs) {
			id = p.lastRowIDs[y]
		}
		row, ok := p.rowCache[id]
		if !ok || id == wire.InvalidRowID {
			row = defaultRow(p.cols)
		}
		cells = append(cells, row...)

		for col, g := range p.rowGraphemes[id] {
			graphemes[y*p.cols+col] = g
		}
		for col, link := range p.rowHyperlinks[id] {
			hyperlinks[y*p.cols+col] = link
		}
	}

	rowIDs := append([]uint64(nil), p.lastRowIDs...)

	return TerminalSnapshot{
		PaneID:     p.paneID,
		Cols:       p.cols,
		Rows:       p.rows,
		Cursor:     p.cursor,
		AltScreen:  p.altScreen,
		Scrollback: p.scrollback,
		Selection:  p.selection,
		Title:      p.title,
		Cells:      cells,
		Styles:     p.lastStyles,
		RowIDs:     rowIDs,
		Graphemes:  graphemes,
		Hyperlinks: hyperlinks,
	}
}
