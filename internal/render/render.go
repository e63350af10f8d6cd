package render

import (
	"github.com/raymond-w-ko/dullahan-sub003/internal/syncengine"
	"github.com/raymond-w-ko/dullahan-sub003/internal/wire"
)

// RenderOptions carries the frame-level parameters RenderSnapshot needs
// beyond the snapshot itself: selection resolution, theme identity (for
// cache invalidation), and cursor styling.
type RenderOptions struct {
	Theme  string
	Cursor CursorStyleConfig
	Active bool // whether this pane holds focus, gating cursor visibility
}

// Line is one fully-normalized, cursor-injected row ready to hand to a
// DOM/terminal renderer.
type Line struct {
	RowID    uint64
	Segments []Segment
}

// RenderSnapshot turns a syncengine viewport snapshot into per-row,
// column-exact, cursor-injected segment lines, memoizing unchanged rows
// in cache (spec §4.3's cell→run→segment pipeline end to end).
func RenderSnapshot(snap syncengine.TerminalSnapshot, cache *RowCache, opts RenderOptions) []Line {
	lines := make([]Line, snap.Rows)
	selectedCols := selectionByRow(snap.Selection, snap.Cols, snap.Rows)

	for y := 0; y < snap.Rows; y++ {
		rowID := wire.InvalidRowID
		if y < len(snap.RowIDs) {
			rowID = snap.RowIDs[y]
		}

		from, to := selectionSpan(selectedCols[y])
		key := RowCacheKey{Cols: snap.Cols, AltScreen: snap.AltScreen, Theme: opts.Theme, SelFrom: from, SelTo: to}

		runs, ok := cache.Get(rowID, key)
		if !ok {
			rowCells := snap.Cells[y*snap.Cols : (y+1)*snap.Cols]
			in := RowInput{
				Cells:        rowCells,
				Graphemes:    rowGraphemesFor(snap.Graphemes, y, snap.Cols),
				Hyperlinks:   rowHyperlinksFor(snap.Hyperlinks, y, snap.Cols),
				SelectedCols: selectedCols[y],
			}
			runs = BuildRuns(in)
			cache.Put(rowID, key, runs)
		}

		segs := Normalize(runs, snap.Cols)
		if opts.Active && y == snap.Cursor.Y {
			segs = InjectCursor(segs, snap.Cursor.X, snap.Cursor.Visible)
		}

		lines[y] = Line{RowID: rowID, Segments: segs}
	}

	return lines
}

func rowGraphemesFor(global map[int][]rune, y, cols int) map[int][]rune {
	if len(global) == 0 {
		return nil
	}
	out := make(map[int][]rune)
	base := y * cols
	for idx, g := range global {
		if idx >= base && idx < base+cols {
			out[idx-base] = g
		}
	}
	return out
}

func rowHyperlinksFor(global map[int]string, y, cols int) map[int]string {
	if len(global) == 0 {
		return nil
	}
	out := make(map[int]string)
	base := y * cols
	for idx, link := range global {
		if idx >= base && idx < base+cols {
			out[idx-base] = link
		}
	}
	return out
}

// selectionSpan normalizes a row's selected-column set into its bounds,
// for use as a cache key component: (-1,-1) when the row has no
// selection. Per-row selection is always a single contiguous band (see
// selectionByRow), so min/max fully identifies it.
func selectionSpan(selectedCols map[int]bool) (from, to int) {
	if len(selectedCols) == 0 {
		return -1, -1
	}
	from, to = -1, -1
	for x := range selectedCols {
		if from == -1 || x < from {
			from = x
		}
		if x > to {
			to = x
		}
	}
	return from, to
}

// selectionByRow expands a selection range into a per-row set of
// selected columns. Selection endpoints are expressed as global
// (row, col) pairs. A linear selection selects full rows strictly
// between start and end; a rectangular selection (sel.IsRectangle)
// applies the same [startX,endX] column band to every row instead.
func selectionByRow(sel *wire.Selection, cols, rows int) map[int]map[int]bool {
	out := make(map[int]map[int]bool)
	if sel == nil {
		return out
	}
	startY, startX, endY, endX := sel.StartY, sel.StartX, sel.EndY, sel.EndX
	if startY > endY || (startY == endY && startX > endX) {
		startY, startX, endY, endX = endY, endX, startY, startX
	}
	if sel.IsRectangle {
		bandFrom, bandTo := startX, endX
		if bandFrom > bandTo {
			bandFrom, bandTo = bandTo, bandFrom
		}
		for y := startY; y <= endY && y < rows; y++ {
			if y < 0 {
				continue
			}
			row := make(map[int]bool)
			for x := bandFrom; x <= bandTo && x < cols; x++ {
				if x >= 0 {
					row[x] = true
				}
			}
			out[y] = row
		}
		return out
	}
	for y := startY; y <= endY && y < rows; y++ {
		if y < 0 {
			continue
		}
		row := make(map[int]bool)
		from, to := 0, cols-1
		if y == startY {
			from = startX
		}
		if y == endY {
			to = endX
		}
		for x := from; x <= to && x < cols; x++ {
			if x >= 0 {
				row[x] = true
			}
		}
		out[y] = row
	}
	return out
}
