package game

import (
	"fmt"
	"image/color"

	"github.com/gridcast/gridcast/internal/geom"
	"github.com/gridcast/gridcast/internal/render"
)

var (
	backgroundColor = color.RGBA{24, 24, 24, 255}
	gridColor       = color.RGBA{48, 48, 48, 255}
	wallColor       = color.RGBA{52, 82, 149, 255}
	rayColor        = color.RGBA{219, 84, 97, 255}
	headingColor    = color.RGBA{120, 120, 120, 255}
	textColor       = color.RGBA{255, 255, 255, 255}
)

// Draw renders the occupancy grid and the current ray walk.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(backgroundColor)
	g.drawWalls(screen)
	g.drawGrid(screen)
	g.drawHeading(screen)
	g.drawRay(screen)
	g.drawPlayer(screen)
	g.drawStatus(screen)
}

func (g *Game) drawGrid(screen render.Image) {
	size := g.Scene.Size()
	for x := 0.0; x <= size.X; x++ {
		a := g.ToScreen(geom.V(x, 0))
		b := g.ToScreen(geom.V(x, size.Y))
		g.Renderer.StrokeLine(screen, float32(a[0]), float32(a[1]), float32(b[0]), float32(b[1]), 1, gridColor)
	}
	for y := 0.0; y <= size.Y; y++ {
		a := g.ToScreen(geom.V(0, y))
		b := g.ToScreen(geom.V(size.X, y))
		g.Renderer.StrokeLine(screen, float32(a[0]), float32(a[1]), float32(b[0]), float32(b[1]), 1, gridColor)
	}
}

func (g *Game) drawWalls(screen render.Image) {
	cs := float32(g.CellSize)
	for row, cells := range g.Scene.Cells {
		for col, cell := range cells {
			if cell == 0 {
				continue
			}
			p := g.ToScreen(geom.V(float64(col), float64(row)))
			g.Renderer.FillRect(screen, float32(p[0]), float32(p[1]), cs, cs, wallColor)
		}
	}
}

// drawRay strokes the walk from the anchor through every grid-line
// crossing, with a dot at each crossing.
func (g *Game) drawRay(screen render.Image) {
	if len(g.path) == 0 {
		return
	}
	prev := g.ToScreen(g.Player.Pos)
	for _, pt := range g.path {
		cur := g.ToScreen(pt)
		g.Renderer.StrokeLine(screen, float32(prev[0]), float32(prev[1]), float32(cur[0]), float32(cur[1]), 2, rayColor)
		g.Renderer.FillCircle(screen, float32(cur[0]), float32(cur[1]), 4, rayColor)
		prev = cur
	}
}

func (g *Game) drawHeading(screen render.Image) {
	a := g.ToScreen(g.Player.Pos)
	b := g.ToScreen(g.Player.Pos.Add(g.Player.Direction()))
	g.Renderer.StrokeLine(screen, float32(a[0]), float32(a[1]), float32(b[0]), float32(b[1]), 1, headingColor)
}

func (g *Game) drawPlayer(screen render.Image) {
	p := g.ToScreen(g.Player.Pos)
	g.Renderer.FillCircle(screen, float32(p[0]), float32(p[1]), 6, rayColor)
	g.Renderer.StrokeCircle(screen, float32(p[0]), float32(p[1]), 6, 1, backgroundColor)
}

func (g *Game) drawStatus(screen render.Image) {
	steps := len(g.path) - 1
	if steps < 0 {
		steps = 0
	}
	status := fmt.Sprintf("%s  steps: %d", g.Scene.Name, steps)
	g.Renderer.DrawText(screen, status, 8, 8, textColor)
}
