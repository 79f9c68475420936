// Package raycast advances rays through a uniform grid one cell
// boundary at a time. A ray is a pair of points: p1 anchors the current
// segment and p2 is its frontier; the direction is p2 - p1. All
// functions are pure and total over the reals; non-finite coordinates
// propagate NaN rather than failing.
package raycast

import (
	"math"

	"github.com/gridcast/gridcast/internal/geom"
	"github.com/gridcast/gridcast/internal/scene"
)

// Step advances the ray p1 -> p2 to the nearest point where it crosses
// a vertical or horizontal grid line, whichever is closer to p2. A
// zero-length ray returns p2 unchanged.
func Step(p1, p2 geom.Vec) geom.Vec {
	d := p2.Sub(p1)
	if d.X == 0 {
		// Purely vertical motion: only horizontal grid lines can be
		// crossed. Covers the zero-length ray too, since Snap with a
		// zero delta leaves the coordinate alone.
		return geom.V(p2.X, geom.Snap(p2.Y, d.Y))
	}

	// Line through p1 and p2: y = k*x + c.
	k := d.Y / d.X
	c := p1.Y - k*p1.X

	x3 := geom.Snap(p2.X, d.X)
	p3 := geom.V(x3, k*x3+c)

	// A horizontal ray never crosses a horizontal grid line, so the
	// vertical-crossing candidate stands unconditionally.
	if k != 0 {
		y3 := geom.Snap(p2.Y, d.Y)
		cand := geom.V((y3-c)/k, y3)
		if p2.DistanceTo(cand) < p2.DistanceTo(p3) {
			p3 = cand
		}
	}

	return p3
}

// HitCell returns the grid cell the ray p1 -> p2 has just entered, as a
// Vec holding floored (col, row) coordinates. The epsilon bias pushes a
// coordinate sitting exactly on a boundary into the cell being entered
// rather than the one being left; on a motionless axis the floor is
// taken unbiased.
func HitCell(p1, p2 geom.Vec) geom.Vec {
	d := p2.Sub(p1)
	return geom.V(
		math.Floor(p2.X+sign(d.X)*geom.Eps),
		math.Floor(p2.Y+sign(d.Y)*geom.Eps),
	)
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// March walks the ray p1 -> p2 cell by cell until it enters an occupied
// cell, leaves the scene bounds, or exhausts maxSteps. Step itself
// never signals completion, so the budget guards against unbounded
// walks. The returned points start at p2 and append the frontier after
// each step; the final point is either inside the wall cell that
// stopped the walk or the first crossing outside the scene.
func March(sc *scene.Scene, p1, p2 geom.Vec, maxSteps int) []geom.Vec {
	points := []geom.Vec{p2}
	for i := 0; i < maxSteps; i++ {
		cell := HitCell(p1, p2)
		if !sc.Contains(cell) {
			break
		}
		if sc.IsWall(int(cell.X), int(cell.Y)) {
			break
		}
		p3 := Step(p1, p2)
		p1, p2 = p2, p3
		points = append(points, p2)
	}
	return points
}
