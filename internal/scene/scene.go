// Package scene models the occupancy grid the raycaster walks through
// and loads scene layouts from JSON files.
package scene

import (
	"github.com/gridcast/gridcast/internal/geom"
)

// Scene is a grid of occupancy cells: nonzero means a wall, zero means
// empty. Rows may have different lengths; reads past the end of a short
// row are treated as empty, not as a fault.
type Scene struct {
	Name  string
	Cells [][]int
	Spawn geom.Vec // player start, in continuous grid coordinates
	Angle float64  // initial view direction in radians
}

// New wraps a cell grid in a Scene.
func New(cells [][]int) *Scene {
	return &Scene{Cells: cells}
}

// Size returns (widest row, row count) in cells. An empty scene has
// size (0, 0).
func (s *Scene) Size() geom.Vec {
	w := 0
	for _, row := range s.Cells {
		if len(row) > w {
			w = len(row)
		}
	}
	return geom.V(float64(w), float64(len(s.Cells)))
}

// At returns the cell value at (col, row), or 0 when the coordinates
// fall outside the grid or past the end of a short row.
func (s *Scene) At(col, row int) int {
	if row < 0 || row >= len(s.Cells) {
		return 0
	}
	if col < 0 || col >= len(s.Cells[row]) {
		return 0
	}
	return s.Cells[row][col]
}

// IsWall reports whether the cell at (col, row) is occupied.
func (s *Scene) IsWall(col, row int) bool {
	return s.At(col, row) != 0
}

// Contains reports whether a point lies within the scene's bounding
// rectangle. It works for both continuous points and floored cell
// coordinates.
func (s *Scene) Contains(p geom.Vec) bool {
	size := s.Size()
	return p.X >= 0 && p.X < size.X && p.Y >= 0 && p.Y < size.Y
}
