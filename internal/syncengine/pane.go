// Package syncengine implements the per-pane delta-sync engine (C2):
// generation tracking, a row-identity-addressed cell cache, row-relative
// grapheme/hyperlink side tables, style-table canonicalization, and the
// snapshot/delta merge and resync-triggering logic of spec §4.2.
package syncengine

import (
	"errors"
	"fmt"

	"github.com/raymond-w-ko/dullahan-sub003/internal/wire"
	"go.uber.org/zap"
)

// ErrStaleDelta is returned (and recovered from) when a delta's fromGen
// is behind the pane's current generation (spec §7 PROTOCOL_STALE_DELTA).
var ErrStaleDelta = errors.New("syncengine: stale delta")

// ErrGapDelta is returned when a delta's fromGen is ahead of the pane's
// current generation (spec §7 PROTOCOL_GAP); the caller must resync.
var ErrGapDelta = errors.New("syncengine: generation gap")

// These map types hold the decoded grapheme/hyperlink blobs carried on
// snapshot and delta messages (decoded in sidetables.go). Snapshots key by global cell
// index (y*cols+col); deltas key rows by local column, already
// row-relative, matching spec §3's "grapheme and hyperlink maps ...
// global cell index in the snapshot form, row-relative column in the
// cached form" invariant.
type globalGraphemes map[int][]rune
type globalHyperlinks map[int]string
type rowGraphemes map[int][]rune
type rowHyperlinks map[int]string

// Pane is the core-internal per-paneId sync state described in spec §3.
type Pane struct {
	log *zap.SugaredLogger

	paneID     string
	generation uint32

	cols, rows int
	cursor     wire.Cursor
	altScreen  bool
	scrollback wire.Scrollback
	selection  *wire.Selection
	title      string

	rowCache      map[uint64][]wire.Cell
	rowGraphemes  map[uint64]rowGraphemes
	rowHyperlinks map[uint64]rowHyperlinks
	minRowID      uint64

	lastStyles    wire.StyleTable
	lastRowIDs    []uint64
	canon         *styleCanon

	deltaCount  uint64
	resyncCount uint64
}

// New constructs an empty per-pane sync state.
func New(paneID string, log *zap.SugaredLogger) *Pane {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Pane{
		log:           log,
		paneID:        paneID,
		rowCache:      make(map[uint64][]wire.Cell),
		rowGraphemes:  make(map[uint64]rowGraphemes),
		rowHyperlinks: make(map[uint64]rowHyperlinks),
		lastStyles:    wire.StyleTable{0: {}},
		canon:         newStyleCanon(),
		minRowID:      wire.InvalidRowID,
	}
}

func (p *Pane) Generation() uint32  { return p.generation }
func (p *Pane) DeltaCount() uint64  { return p.deltaCount }
func (p *Pane) ResyncCount() uint64 { return p.resyncCount }
func (p *Pane) MinRowID() uint64    { return p.minRowID }

// Selection returns the pane's current selection, or nil when none is
// active (used by the input layer's performable predicate).
func (p *Pane) Selection() *wire.Selection { return p.selection }

// PaneID returns the pane identifier this state was constructed for.
func (p *Pane) PaneID() string { return p.paneID }

// ApplySnapshot replaces the row cache wholesale from a full snapshot
// message (spec §4.2 applySnapshot). On a decode error the snapshot is
// discarded and the pane's prior state is left untouched.
func (p *Pane) ApplySnapshot(msg *wire.Snapshot) error {
	cells, err := wire.DecodeCells(msg.Cells)
	if err != nil {
		p.log.Warnw("discarding malformed snapshot: bad cells", "pane", p.paneID, "err", err)
		return fmt.Errorf("syncengine: decode snapshot cells: %w", err)
	}
	styles, err := wire.DecodeStyleTable(msg.Styles)
	if err != nil {
		p.log.Warnw("discarding malformed snapshot: bad styles", "pane", p.paneID, "err", err)
		return fmt.Errorf("syncengine: decode snapshot styles: %w", err)
	}
	rowIDs, err := wire.DecodeRowIDs(msg.RowIDs)
	if err != nil {
		p.log.Warnw("discarding malformed snapshot: bad rowIds", "pane", p.paneID, "err", err)
		return fmt.Errorf("syncengine: decode snapshot rowIds: %w", err)
	}
	if len(rowIDs) != msg.Rows {
		return fmt.Errorf("syncengine: rowIds length %d does not match rows %d", len(rowIDs), msg.Rows)
	}
	if len(cells) != msg.Cols*msg.Rows {
		return fmt.Errorf("syncengine: cells length %d does not match cols*rows %d", len(cells), msg.Cols*msg.Rows)
	}

	graphemes, err := decodeGlobalGraphemes(msg.Graphemes)
	if err != nil {
		p.log.Warnw("discarding malformed snapshot: bad graphemes", "pane", p.paneID, "err", err)
		return fmt.Errorf("syncengine: decode snapshot graphemes: %w", err)
	}
	hyperlinks, err := decodeGlobalHyperlinks(msg.Hyperlinks)
	if err != nil {
		p.log.Warnw("discarding malformed snapshot: bad hyperlinks", "pane", p.paneID, "err", err)
		return fmt.Errorf("syncengine: decode snapshot hyperlinks: %w", err)
	}

	styleMapping := p.canon.remapTable(styles)
	remapCells(cells, styleMapping)

	newRowCache := make(map[uint64][]wire.Cell, msg.Rows)
	newRowGraphemes := make(map[uint64]rowGraphemes, msg.Rows)
	newRowHyperlinks := make(map[uint64]rowHyperlinks, msg.Rows)

	minRowID := wire.InvalidRowID
	for y := 0; y < msg.Rows; y++ {
		id := rowIDs[y]
		if id == wire.InvalidRowID {
			continue
		}
		row := make([]wire.Cell, msg.Cols)
		copy(row, cells[y*msg.Cols:(y+1)*msg.Cols])
		newRowCache[id] = row

		rg := make(rowGraphemes)
		rh := make(rowHyperlinks)
		for idx, g := range graphemes {
			ry, rcol := idx/msg.Cols, idx%msg.Cols
			if ry == y {
				rg[rcol] = g
			}
		}
		for idx, link := range hyperlinks {
			ry, rcol := idx/msg.Cols, idx%msg.Cols
			if ry == y {
				rh[rcol] = link
			}
		}
		newRowGraphemes[id] = rg
		newRowHyperlinks[id] = rh

		if id < minRowID {
			minRowID = id
		}
	}

	p.rowCache = newRowCache
	p.rowGraphemes = newRowGraphemes
	p.rowHyperlinks = newRowHyperlinks
	p.minRowID = minRowID
	p.canon.gc(p.rowCache)
	p.lastStyles = p.canon.table()
	p.lastRowIDs = append([]uint64(nil), rowIDs...)
	p.generation = msg.Gen
	p.cols, p.rows = msg.Cols, msg.Rows
	p.cursor = msg.Cursor
	p.altScreen = msg.AltScreen
	p.scrollback = msg.Scrollback
	p.selection = msg.Selection
	p.title = msg.Title
	p.resyncCount++

	return nil
}

// ApplyDelta merges a delta into the pane cache when msg.FromGen matches
// the current generation. Returns ErrStaleDelta / ErrGapDelta (never
// mutating the cache) when the caller should drop or resync instead
// (spec §4.2 applyDelta / syncNeeded, invariants 2-3 in spec §8).
func (p *Pane) ApplyDelta(msg *wire.Delta) error {
	if msg.FromGen > p.generation {
		p.resyncCount++
		return ErrGapDelta
	}
	if msg.FromGen < p.generation {
		// Stale: only request sync if we are also behind the delta's
		// own target generation (spec §4.2 syncNeeded policy).
		if msg.Gen > p.generation {
			p.resyncCount++
			return ErrGapDelta
		}
		return ErrStaleDelta
	}

	styles, err := wire.DecodeStyleTable(msg.Styles)
	if err != nil {
		return fmt.Errorf("syncengine: decode delta styles: %w", err)
	}
	rowIDs, err := wire.DecodeRowIDs(msg.RowIDs)
	if err != nil {
		return fmt.Errorf("syncengine: decode delta rowIds: %w", err)
	}

	styleMapping := p.canon.remapTable(styles)

	for _, dr := range msg.DirtyRows {
		cells, err := wire.DecodeCells(dr.Cells)
		if err != nil {
			p.log.Warnw("dropping malformed dirty row", "pane", p.paneID, "rowId", dr.ID, "err", err)
			continue
		}
		remapCells(cells, styleMapping)
		rg, err := decodeRowGraphemes(dr.Graphemes)
		if err != nil {
			p.log.Warnw("dropping malformed row graphemes", "pane", p.paneID, "rowId", dr.ID, "err", err)
			rg = rowGraphemes{}
		}
		rh, err := decodeRowHyperlinks(dr.Hyperlinks)
		if err != nil {
			p.log.Warnw("dropping malformed row hyperlinks", "pane", p.paneID, "rowId", dr.ID, "err", err)
			rh = rowHyperlinks{}
		}
		p.rowCache[dr.ID] = cells
		p.rowGraphemes[dr.ID] = rg
		p.rowHyperlinks[dr.ID] = rh
		if dr.ID < p.minRowID {
			p.minRowID = dr.ID
		}
	}

	p.lastRowIDs = rowIDs
	p.cols, p.rows = msg.Cols, msg.Rows
	p.cursor = msg.Cursor
	p.altScreen = msg.AltScreen
	p.scrollback = msg.VP
	if msg.Selection != nil {
		p.selection = msg.Selection
	}
	if msg.Title != "" {
		p.title = msg.Title
	}
	p.generation = msg.Gen
	p.deltaCount++

	// Fill any viewport row referenced by the new rowIds but missing from
	// the cache with default cells; this is the transient state the spec
	// notes resolves on the next delta.
	for _, id := range rowIDs {
		if id == wire.InvalidRowID {
			continue
		}
		if _, ok := p.rowCache[id]; !ok {
			p.rowCache[id] = defaultRow(p.cols)
			p.rowGraphemes[id] = rowGraphemes{}
			p.rowHyperlinks[id] = rowHyperlinks{}
		}
	}

	p.canon.gc(p.rowCache)
	p.lastStyles = p.canon.table()

	return nil
}

// SyncRequest returns the outbound `sync` message the session layer
// should send when ApplyDelta reports ErrGapDelta. ApplyDelta never
// mutates p.generation on that path, so it still reads as
// "previous_generation" here, matching spec §4.2/§8 invariant 3:
// "exactly one outbound sync{paneId, gen=previous_generation, minRowId}".
func (p *Pane) SyncRequest() wire.SyncOut {
	return wire.SyncOut{
		Type:     "sync",
		PaneID:   p.paneID,
		Gen:      p.generation,
		MinRowID: p.minRowID,
	}
}

func defaultRow(cols int) []wire.Cell {
	row := make([]wire.Cell, cols)
	for i := range row {
		row[i] = wire.Cell{ContentTag: wire.ContentCodepoint, Codepoint: ' ', StyleID: 0}
	}
	return row
}
