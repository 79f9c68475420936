package game

import (
	"github.com/gridcast/gridcast/internal/geom"
)

// Player is the ray anchor: a continuous position on the grid plus a
// view direction in radians. The direction only steers the fallback ray
// when the cursor leaves the scene; the cursor otherwise owns the
// frontier point.
type Player struct {
	Pos   geom.Vec
	Angle float64
}

// Direction returns the unit vector of the player's view direction.
func (p Player) Direction() geom.Vec {
	return geom.FromAngle(p.Angle)
}
