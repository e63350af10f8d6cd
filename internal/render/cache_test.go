package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRowCache_GetMissesWhenKeyDiffers(t *testing.T) {
	c := NewRowCache()
	key := RowCacheKey{Cols: 80}
	c.Put(1, key, []Run{{Kind: RunPlain, Text: "a", Cells: 1}})

	_, ok := c.Get(1, RowCacheKey{Cols: 81})
	require.False(t, ok)

	runs, ok := c.Get(1, key)
	require.True(t, ok)
	require.Equal(t, "a", runs[0].Text)
}

func TestRowCache_InvalidateDropsOneRow(t *testing.T) {
	c := NewRowCache()
	key := RowCacheKey{Cols: 80}
	c.Put(1, key, []Run{{Text: "a"}})
	c.Put(2, key, []Run{{Text: "b"}})

	c.Invalidate(1)
	_, ok := c.Get(1, key)
	require.False(t, ok)
	_, ok = c.Get(2, key)
	require.True(t, ok)
}

func TestRowCache_FlushClearsEverything(t *testing.T) {
	c := NewRowCache()
	key := RowCacheKey{Cols: 80}
	c.Put(1, key, []Run{{Text: "a"}})
	c.Flush()
	require.Equal(t, 0, c.Len())
}

func TestRowCache_EvictsLeastRecentlyUsedAtCapacity(t *testing.T) {
	c := NewRowCache()
	c.limit = 2
	key := RowCacheKey{Cols: 80}

	c.Put(1, key, []Run{{Text: "a"}})
	c.Put(2, key, []Run{{Text: "b"}})
	c.Get(1, key) // touch 1, making 2 the least-recently-used
	c.Put(3, key, []Run{{Text: "c"}})

	_, ok := c.Get(2, key)
	require.False(t, ok, "row 2 should have been evicted as LRU")
	_, ok = c.Get(1, key)
	require.True(t, ok)
	_, ok = c.Get(3, key)
	require.True(t, ok)
}
