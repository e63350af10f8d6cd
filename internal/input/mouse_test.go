package input

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type recordedMouseEvent struct {
	button, x, y int
	state        string
}

type recordingEmitter struct {
	events []recordedMouseEvent
}

func (e *recordingEmitter) EmitMouse(button, x, y int, state string, mods Modifiers) {
	e.events = append(e.events, recordedMouseEvent{button, x, y, state})
}

func TestMouseHandler_DownAndUpAlwaysEmit(t *testing.T) {
	e := &recordingEmitter{}
	h := NewMouseHandler(e)
	h.MouseDown(0, 3, 4, Modifiers{})
	h.MouseUp(0, 3, 4, Modifiers{})
	require.Len(t, e.events, 2)
	require.Equal(t, "down", e.events[0].state)
	require.Equal(t, "up", e.events[1].state)
}

func TestMouseHandler_MoveThrottledUntilFlush(t *testing.T) {
	e := &recordingEmitter{}
	h := NewMouseHandler(e)
	h.MouseMove(1, 1, Modifiers{})
	h.MouseMove(2, 2, Modifiers{})
	require.Empty(t, e.events, "move must not emit until the animation frame flush")

	h.FlushAnimationFrame()
	require.Len(t, e.events, 1)
	require.Equal(t, 2, e.events[0].x)
	require.Equal(t, 2, e.events[0].y)
}

func TestMouseHandler_MoveDeduplicatesUnchangedCellCoordinates(t *testing.T) {
	e := &recordingEmitter{}
	h := NewMouseHandler(e)
	h.MouseMove(5, 5, Modifiers{})
	h.FlushAnimationFrame()
	require.Len(t, e.events, 1)

	h.MouseMove(5, 5, Modifiers{})
	h.FlushAnimationFrame()
	require.Len(t, e.events, 1, "identical cell coordinates must not re-emit")
}

func TestMouseHandler_LeaveResetsLastEmitted(t *testing.T) {
	e := &recordingEmitter{}
	h := NewMouseHandler(e)
	h.MouseMove(5, 5, Modifiers{})
	h.FlushAnimationFrame()

	h.MouseLeave()
	h.MouseMove(5, 5, Modifiers{})
	h.FlushAnimationFrame()
	require.Len(t, e.events, 2, "after mouseleave, an identical position must re-emit")
}

func TestMouseHandler_EmittedButtonIsLowestPressedOrNoButton(t *testing.T) {
	e := &recordingEmitter{}
	h := NewMouseHandler(e)
	h.MouseDown(2, 0, 0, Modifiers{}) // right
	h.MouseDown(0, 0, 0, Modifiers{}) // left, now lowest
	h.MouseMove(9, 9, Modifiers{})
	h.FlushAnimationFrame()

	last := e.events[len(e.events)-1]
	require.Equal(t, 0, last.button)
}

func TestMouseHandler_NoButtonsPressedEmitsNoButtonSentinel(t *testing.T) {
	e := &recordingEmitter{}
	h := NewMouseHandler(e)
	h.MouseMove(1, 1, Modifiers{})
	h.FlushAnimationFrame()
	require.Equal(t, 3, e.events[0].button)
}

func TestCellCoords_SubtractsPaddingBeforeDividing(t *testing.T) {
	col, row := CellCoords(90, 48, 10, 8, CellMetrics{Width: 8, Height: 16})
	require.Equal(t, 10, col)
	require.Equal(t, 2, row)
}
