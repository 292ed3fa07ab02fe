package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Faultbox/shipgrid/pkg/grid"
)

func TestNormalizeRotation(t *testing.T) {
	tests := []struct {
		turns int
		want  grid.Rotation
	}{
		{0, grid.Rot0},
		{1, grid.Rot90},
		{2, grid.Rot180},
		{3, grid.Rot270},
		{4, grid.Rot0},
		{7, grid.Rot270},
		{-1, grid.Rot270},
		{-4, grid.Rot0},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, grid.NormalizeRotation(tt.turns), "turns=%d", tt.turns)
	}
}

func TestDirection_Offset(t *testing.T) {
	tests := []struct {
		dir    grid.Direction
		dx, dy int
	}{
		{grid.North, 0, -1},
		{grid.East, 1, 0},
		{grid.South, 0, 1},
		{grid.West, -1, 0},
	}

	for _, tt := range tests {
		dx, dy := tt.dir.Offset()
		require.Equal(t, tt.dx, dx, "%s dx", tt.dir)
		require.Equal(t, tt.dy, dy, "%s dy", tt.dir)
	}
}

func TestPosition_Neighbor(t *testing.T) {
	p := grid.Position{X: 2, Y: -3}
	require.Equal(t, grid.Position{X: 2, Y: -4}, p.Neighbor(grid.North))
	require.Equal(t, grid.Position{X: 3, Y: -3}, p.Neighbor(grid.East))
	require.Equal(t, grid.Position{X: 2, Y: -2}, p.Neighbor(grid.South))
	require.Equal(t, grid.Position{X: 1, Y: -3}, p.Neighbor(grid.West))
}

func TestHullSet(t *testing.T) {
	s := grid.NewHullSet()
	require.Equal(t, 0, s.Len())

	p := grid.Position{X: 5, Y: 5}
	s.Add(p)
	s.Add(p) // idempotent
	s.Add(grid.Position{X: -2, Y: 0})

	require.Equal(t, 2, s.Len())
	require.True(t, s.Contains(p))
	require.False(t, s.Contains(grid.Position{X: 0, Y: 0}))
}

func TestHullSet_PositionsSorted(t *testing.T) {
	s := grid.NewHullSet()
	s.Add(grid.Position{X: 1, Y: 1})
	s.Add(grid.Position{X: 0, Y: 1})
	s.Add(grid.Position{X: 2, Y: 0})
	s.Add(grid.Position{X: -1, Y: 2})

	want := []grid.Position{
		{X: 2, Y: 0},
		{X: 0, Y: 1},
		{X: 1, Y: 1},
		{X: -1, Y: 2},
	}
	require.Equal(t, want, s.Positions())
}
