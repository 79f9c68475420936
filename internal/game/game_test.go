package game

import (
	"math"
	"testing"

	"github.com/gridcast/gridcast/internal/config"
	"github.com/gridcast/gridcast/internal/geom"
	"github.com/gridcast/gridcast/internal/render"
	"github.com/gridcast/gridcast/internal/scene"
)

// stubInput feeds scripted input into the game loop.
type stubInput struct {
	cursorX, cursorY int
	pressed          map[render.Key]bool
	justPressed      map[render.Key]bool
}

func (s *stubInput) IsKeyPressed(key render.Key) bool     { return s.pressed[key] }
func (s *stubInput) IsKeyJustPressed(key render.Key) bool { return s.justPressed[key] }
func (s *stubInput) GetCursorPosition() (int, int)        { return s.cursorX, s.cursorY }
func (s *stubInput) IsMouseButtonPressed(render.MouseButton) bool {
	return false
}

func testScene() *scene.Scene {
	return &scene.Scene{
		Name: "test",
		Cells: [][]int{
			{0, 0, 0, 1},
			{0, 0, 0, 1},
			{0, 0, 0, 1},
		},
		Spawn: geom.V(0.5, 0.5),
	}
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.CellSize = 100
	cfg.MaxSteps = 32
	return cfg
}

func TestNewSizesScreenToScene(t *testing.T) {
	g := New(testConfig(), testScene(), nil, &stubInput{})

	if g.ScreenWidth != 400 || g.ScreenHeight != 300 {
		t.Errorf("Expected logical screen 400x300, got %dx%d", g.ScreenWidth, g.ScreenHeight)
	}

	w, h := g.Layout(1920, 1080)
	if w != 400 || h != 300 {
		t.Errorf("Layout must return the logical screen size, got %dx%d", w, h)
	}
}

func TestCoordinateTransforms(t *testing.T) {
	g := New(testConfig(), testScene(), nil, &stubInput{})

	p := g.ToGrid(250, 150)
	if p.X != 2.5 || p.Y != 1.5 {
		t.Errorf("Expected grid point (2.5, 1.5), got %v", p)
	}

	xy := g.ToScreen(geom.V(2.5, 1.5))
	if xy[0] != 250 || xy[1] != 150 {
		t.Errorf("Expected screen point (250, 150), got %v", xy)
	}
}

func TestUpdateTracksCursor(t *testing.T) {
	in := &stubInput{cursorX: 150, cursorY: 50}
	g := New(testConfig(), testScene(), nil, in)

	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if got := g.Frontier(); got != geom.V(1.5, 0.5) {
		t.Errorf("Expected frontier (1.5, 0.5), got %v", got)
	}

	// The walk runs left to right and must end inside the wall column.
	path := g.Path()
	if len(path) == 0 {
		t.Fatal("Expected a non-empty ray walk")
	}
	last := path[len(path)-1]
	if last.X != 3 {
		t.Errorf("Expected the walk to stop at the wall column x=3, got %v", last)
	}
}

func TestUpdateCursorOutsideFallsBackToHeading(t *testing.T) {
	in := &stubInput{cursorX: -100, cursorY: -100}
	g := New(testConfig(), testScene(), nil, in)

	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	want := g.Player.Pos.Add(g.Player.Direction())
	if got := g.Frontier(); got != want {
		t.Errorf("Expected fallback frontier %v, got %v", want, got)
	}
}

func TestUpdateTurnKeys(t *testing.T) {
	in := &stubInput{pressed: map[render.Key]bool{render.KeyRight: true}}
	g := New(testConfig(), testScene(), nil, in)

	before := g.Player.Angle
	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if g.Player.Angle <= before {
		t.Errorf("Expected angle to increase from %v, got %v", before, g.Player.Angle)
	}
}

func TestResetKeyRestoresSpawn(t *testing.T) {
	in := &stubInput{justPressed: map[render.Key]bool{render.KeyR: true}}
	g := New(testConfig(), testScene(), nil, in)
	g.Player.Pos = geom.V(2, 2)
	g.Player.Angle = math.Pi

	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if g.Player.Pos != g.Scene.Spawn {
		t.Errorf("Expected player back at spawn %v, got %v", g.Scene.Spawn, g.Player.Pos)
	}
	if g.Player.Angle != g.Scene.Angle {
		t.Errorf("Expected angle reset to %v, got %v", g.Scene.Angle, g.Player.Angle)
	}
}
