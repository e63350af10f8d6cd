package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInjectCursor_SplitsPlainRunAtCursorColumn(t *testing.T) {
	segs := []Segment{{Run: Run{Kind: RunPlain, Text: "hello", Cells: 5}}}
	out := InjectCursor(segs, 2, true)

	require.Len(t, out, 3)
	require.Equal(t, "he", out[0].Text)
	require.False(t, out[0].IsCursor)
	require.Equal(t, "l", out[1].Text)
	require.True(t, out[1].IsCursor)
	require.Equal(t, "lo", out[2].Text)
	require.False(t, out[2].IsCursor)
}

func TestInjectCursor_AtRowStartProducesNoBeforeSegment(t *testing.T) {
	segs := []Segment{{Run: Run{Kind: RunPlain, Text: "hi", Cells: 2}}}
	out := InjectCursor(segs, 0, true)

	require.Len(t, out, 2)
	require.Equal(t, "h", out[0].Text)
	require.True(t, out[0].IsCursor)
}

func TestInjectCursor_WideSegmentMarkedWholeNeverSplit(t *testing.T) {
	segs := []Segment{
		{Run: Run{Kind: RunPlain, Text: "a", Cells: 1}},
		{Run: Run{Kind: RunWide, Text: "中", Cells: 2}},
	}
	out := InjectCursor(segs, 1, true)

	require.Len(t, out, 2)
	require.Equal(t, "中", out[1].Text)
	require.True(t, out[1].IsCursor)
	require.Equal(t, 2, out[1].Cells)
}

func TestInjectCursor_NotVisibleLeavesSegmentsUntouched(t *testing.T) {
	segs := []Segment{{Run: Run{Kind: RunPlain, Text: "hi", Cells: 2}}}
	out := InjectCursor(segs, 0, false)
	require.Equal(t, segs, out)
}

func TestResolveBlink(t *testing.T) {
	require.True(t, ResolveBlink(CursorStyleConfig{}, true))
	require.False(t, ResolveBlink(CursorStyleConfig{}, false))
	require.True(t, ResolveBlink(CursorStyleConfig{BlinkOverride: "true"}, false))
	require.False(t, ResolveBlink(CursorStyleConfig{BlinkOverride: "false"}, true))
}

func TestResolveCursorColor(t *testing.T) {
	color, useDefault := ResolveCursorColor("", "fg1", "bg1")
	require.True(t, useDefault)
	require.Empty(t, color)

	color, useDefault = ResolveCursorColor("cell-foreground", "fg1", "bg1")
	require.False(t, useDefault)
	require.Equal(t, "fg1", color)

	color, useDefault = ResolveCursorColor("cell-background", "fg1", "bg1")
	require.False(t, useDefault)
	require.Equal(t, "bg1", color)

	color, useDefault = ResolveCursorColor("#ff0000", "fg1", "bg1")
	require.False(t, useDefault)
	require.Equal(t, "#ff0000", color)
}
