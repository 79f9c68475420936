package scene

import (
	"testing"

	"github.com/gridcast/gridcast/internal/geom"
)

func TestSizeJaggedRows(t *testing.T) {
	s := New([][]int{
		{0, 0, 1},
		{1, 1},
	})

	size := s.Size()
	if size.X != 3 {
		t.Errorf("Expected width 3, got %v", size.X)
	}
	if size.Y != 2 {
		t.Errorf("Expected height 2, got %v", size.Y)
	}
}

func TestSizeEmptyScene(t *testing.T) {
	s := New(nil)

	size := s.Size()
	if size.X != 0 || size.Y != 0 {
		t.Errorf("Expected empty scene size (0, 0), got (%v, %v)", size.X, size.Y)
	}
}

func TestAtOutOfRangeIsEmpty(t *testing.T) {
	s := New([][]int{
		{0, 1, 0},
		{1},
	})

	cases := []struct {
		col, row int
	}{
		{-1, 0},
		{0, -1},
		{3, 0},  // past the widest row
		{1, 1},  // past the end of a short row
		{0, 2},  // below the last row
		{99, 99},
	}

	for _, c := range cases {
		if got := s.At(c.col, c.row); got != 0 {
			t.Errorf("At(%d, %d) = %d, want 0 for out-of-range read", c.col, c.row, got)
		}
	}

	if s.At(1, 0) != 1 {
		t.Error("Expected wall at (1, 0)")
	}
	if !s.IsWall(0, 1) {
		t.Error("Expected wall at (0, 1)")
	}
	if s.IsWall(2, 0) {
		t.Error("Expected empty cell at (2, 0)")
	}
}

func TestContains(t *testing.T) {
	s := New([][]int{
		{0, 0, 0},
		{0, 0, 0},
	})

	inside := []geom.Vec{
		geom.V(0, 0),
		geom.V(2.9, 1.9),
		geom.V(1.5, 0.5),
	}
	for _, p := range inside {
		if !s.Contains(p) {
			t.Errorf("Expected %v to be inside the scene", p)
		}
	}

	outside := []geom.Vec{
		geom.V(-0.1, 0),
		geom.V(0, -0.1),
		geom.V(3, 0),
		geom.V(0, 2),
	}
	for _, p := range outside {
		if s.Contains(p) {
			t.Errorf("Expected %v to be outside the scene", p)
		}
	}
}
