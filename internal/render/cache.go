package render

// rowCacheLimit bounds the number of memoized rows kept per pane (spec
// "SUPPLEMENTED FEATURES": row-cache LRU bound), preventing unbounded
// growth from scrollback-heavy panes that churn through many rowIds.
const rowCacheLimit = 800

// RowCacheKey distinguishes memoized entries when rendering parameters
// that affect run/segment shape change; a change to cols/altScreen/theme
// makes every existing entry miss, and a key mismatch
// from SelFrom/SelTo alone forces a rebuild of just that row — this is
// the "selectionKey derived from normalized selection bounds" spec §4.3
// calls for, not a single has-selection bool, so dragging a selection
// within one row busts that row's memo instead of reusing stale runs.
type RowCacheKey struct {
	Cols      int
	AltScreen bool
	Theme     string
	SelFrom   int // -1 when the row has no selection
	SelTo     int
}

type rowCacheEntry struct {
	key  RowCacheKey
	runs []Run
	seq  uint64 // access order; higher is more recent
}

// RowCache memoizes BuildRuns output per stable rowId, invalidated
// per-row on a delta's dirtyRows and missed (not reused) once any of
// (cols, altScreen, theme) differs from the key an entry was built under.
type RowCache struct {
	entries map[uint64]*rowCacheEntry
	clock   uint64
	limit   int
}

// NewRowCache constructs an empty cache bounded at rowCacheLimit entries.
func NewRowCache() *RowCache {
	return &RowCache{entries: make(map[uint64]*rowCacheEntry), limit: rowCacheLimit}
}

// Get returns the memoized runs for rowId if present and built under an
// identical key, else reports a miss.
func (c *RowCache) Get(rowID uint64, key RowCacheKey) ([]Run, bool) {
	e, ok := c.entries[rowID]
	if !ok || e.key != key {
		return nil, false
	}
	c.clock++
	e.seq = c.clock
	return e.runs, true
}

// Put stores runs for rowId under key, evicting the least-recently-used
// entry if the cache is at capacity.
func (c *RowCache) Put(rowID uint64, key RowCacheKey, runs []Run) {
	if _, exists := c.entries[rowID]; !exists && len(c.entries) >= c.limit {
		c.evictOldest()
	}
	c.clock++
	c.entries[rowID] = &rowCacheEntry{key: key, runs: runs, seq: c.clock}
}

// Invalidate drops a single row's memoized entry, called when a delta's
// dirtyRows names rowId.
func (c *RowCache) Invalidate(rowID uint64) {
	delete(c.entries, rowID)
}

// Flush clears the entire cache; Core calls it after each applied snapshot.
func (c *RowCache) Flush() {
	c.entries = make(map[uint64]*rowCacheEntry)
}

// Len reports the number of memoized rows, for tests and diagnostics.
func (c *RowCache) Len() int { return len(c.entries) }

func (c *RowCache) evictOldest() {
	var oldestID uint64
	var oldestSeq uint64
	first := true
	for id, e := range c.entries {
		if first || e.seq < oldestSeq {
			oldestID, oldestSeq, first = id, e.seq, false
		}
	}
	if !first {
		delete(c.entries, oldestID)
	}
}
