package syncengine

import "github.com/raymond-w-ko/dullahan-sub003/internal/wire"

// styleCanon maps the per-message, payload-local style IDs onto stable
// canonical IDs by structural hash, so two payloads that both describe
// "bold, red foreground" collapse onto one canonical entry even if the
// server assigned them different numeric IDs (spec §9 "Style identity
// canonicalization"). Canonical IDs are pruned by a GC pass once no
// cached row references them.
type styleCanon struct {
	hashToID map[[3]uint64]uint16
	styles   map[uint16]wire.Style
	nextID   uint16
}

func newStyleCanon() *styleCanon {
	c := &styleCanon{
		hashToID: make(map[[3]uint64]uint16),
		styles:   make(map[uint16]wire.Style),
	}
	c.intern(wire.Style{}) // canonical id 0 is always the default style
	return c
}

// intern returns the canonical ID for a structurally-equal style,
// registering it if this is the first time it has been seen.
func (c *styleCanon) intern(s wire.Style) uint16 {
	h := s.StructuralHash()
	if id, ok := c.hashToID[h]; ok {
		return id
	}
	id := c.nextID
	c.nextID++
	c.hashToID[h] = id
	c.styles[id] = s
	return id
}

// remapTable builds a payload-styleId -> canonical-id mapping for every
// entry in a decoded payload style table.
func (c *styleCanon) remapTable(payload wire.StyleTable) map[uint16]uint16 {
	mapping := make(map[uint16]uint16, len(payload))
	for payloadID, s := range payload {
		mapping[payloadID] = c.intern(s)
	}
	return mapping
}

// remapCells rewrites each cell's StyleID from payload-local to
// canonical, in place.
func remapCells(cells []wire.Cell, mapping map[uint16]uint16) {
	for i := range cells {
		if canonical, ok := mapping[cells[i].StyleID]; ok {
			cells[i].StyleID = canonical
		}
	}
}

// gc prunes canonical style entries no longer referenced by any row in
// rowCache, keeping id 0 (the default style) alive unconditionally.
func (c *styleCanon) gc(rowCache map[uint64][]wire.Cell) {
	live := map[uint16]bool{0: true}
	for _, row := range rowCache {
		for _, cell := range row {
			live[cell.StyleID] = true
		}
	}
	for id := range c.styles {
		if !live[id] {
			delete(c.styles, id)
		}
	}
	for h, id := range c.hashToID {
		if !live[id] {
			delete(c.hashToID, h)
		}
	}
}

// table returns the current canonical style table.
func (c *styleCanon) table() wire.StyleTable {
	out := make(wire.StyleTable, len(c.styles))
	for id, s := range c.styles {
		out[id] = s
	}
	return out
}
