package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeDimensions_FloorsAndSubtractsPadding(t *testing.T) {
	cols, rows := ComputeDimensions(810, 410, 10, 10, CellMetrics{Width: 8, Height: 16})
	require.Equal(t, 100, cols)
	require.Equal(t, 25, rows)
}

func TestComputeDimensions_ClampsToMinimum(t *testing.T) {
	cols, rows := ComputeDimensions(2, 2, 10, 10, CellMetrics{Width: 8, Height: 16})
	require.Equal(t, 1, cols)
	require.Equal(t, 1, rows)
}

func TestComputeDimensions_ClampsToMaximum(t *testing.T) {
	cols, rows := ComputeDimensions(100000, 100000, 0, 0, CellMetrics{Width: 1, Height: 1})
	require.Equal(t, 500, cols)
	require.Equal(t, 500, rows)
}
