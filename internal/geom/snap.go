package geom

import "math"

// Eps biases grid snapping and hit-cell resolution off exact cell
// boundaries. Without it a ray passing exactly through an integer
// boundary would snap to the same point forever.
const Eps = 1e-3

// Snap rounds x to the next grid line in the direction of travel dx:
// up for dx > 0, down for dx < 0, unchanged for dx == 0. The epsilon
// bias guarantees the result moves strictly past x whenever dx is
// nonzero, even when x already sits on a grid line.
func Snap(x, dx float64) float64 {
	switch {
	case dx > 0:
		return math.Ceil(x + Eps)
	case dx < 0:
		return math.Floor(x - Eps)
	default:
		return x
	}
}
