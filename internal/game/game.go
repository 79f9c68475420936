// Package game drives the minimap raycasting visualizer: it owns the
// frame loop, translates cursor input into a grid-space frontier point,
// and walks the ray through the scene every tick.
package game

import (
	"github.com/gridcast/gridcast/internal/config"
	"github.com/gridcast/gridcast/internal/geom"
	"github.com/gridcast/gridcast/internal/raycast"
	"github.com/gridcast/gridcast/internal/render"
	"github.com/gridcast/gridcast/internal/scene"
)

// turnSpeed is how fast the arrow keys rotate the view, in radians per tick.
const turnSpeed = 0.03

// Game holds all visualizer state.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	CellSize     float64
	MaxSteps     int

	Scene    *scene.Scene
	Player   Player
	Renderer render.Renderer
	InputMgr render.InputManager

	frontier geom.Vec   // current ray frontier, in grid coordinates
	path     []geom.Vec // grid-line crossings for the current frontier
}

// New builds a Game from configuration and a loaded scene. The logical
// screen is sized to the scene so one grid cell maps to CellSize pixels.
func New(cfg *config.Config, sc *scene.Scene, renderer render.Renderer, inputMgr render.InputManager) *Game {
	size := sc.Size()
	g := &Game{
		ScreenWidth:  int(size.X) * cfg.CellSize,
		ScreenHeight: int(size.Y) * cfg.CellSize,
		CellSize:     float64(cfg.CellSize),
		MaxSteps:     cfg.MaxSteps,
		Scene:        sc,
		Player:       Player{Pos: sc.Spawn, Angle: sc.Angle},
		Renderer:     renderer,
		InputMgr:     inputMgr,
	}
	g.frontier = g.Player.Pos.Add(g.Player.Direction())
	return g
}

// Update reads input and recomputes the ray walk for this tick.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyPressed(render.KeyLeft) {
		g.Player.Angle -= turnSpeed
	}
	if g.InputMgr.IsKeyPressed(render.KeyRight) {
		g.Player.Angle += turnSpeed
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyR) {
		g.Player.Pos = g.Scene.Spawn
		g.Player.Angle = g.Scene.Angle
	}

	cx, cy := g.InputMgr.GetCursorPosition()
	p2 := g.ToGrid(float64(cx), float64(cy))
	if g.Scene.Contains(p2) && p2 != g.Player.Pos {
		g.frontier = p2
	} else {
		// Cursor outside the grid (or exactly on the anchor): aim one
		// cell along the view direction instead.
		g.frontier = g.Player.Pos.Add(g.Player.Direction())
	}

	g.path = raycast.March(g.Scene, g.Player.Pos, g.frontier, g.MaxSteps)
	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

// ToGrid converts logical screen pixels to continuous grid coordinates.
func (g *Game) ToGrid(x, y float64) geom.Vec {
	return geom.V(x, y).Div(geom.V(g.CellSize, g.CellSize))
}

// ToScreen converts a grid-space point to a logical screen coordinate pair.
func (g *Game) ToScreen(p geom.Vec) [2]float64 {
	return p.Scale(g.CellSize).Array()
}

// Frontier returns the current ray frontier in grid coordinates.
func (g *Game) Frontier() geom.Vec {
	return g.frontier
}

// Path returns the crossings computed for the current frontier,
// starting at the frontier itself.
func (g *Game) Path() []geom.Vec {
	return g.path
}
