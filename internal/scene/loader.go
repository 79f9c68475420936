package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gridcast/gridcast/internal/geom"
)

// spawnPoint mirrors the player_spawn JSON object.
type spawnPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// sceneData is the on-disk scene layout.
type sceneData struct {
	Name        string     `json:"name"`
	Cells       [][]int    `json:"cells"`        // occupancy rows [y][x], nonzero = wall
	PlayerSpawn spawnPoint `json:"player_spawn"` // continuous grid coordinates
	PlayerAngle float64    `json:"player_angle"` // radians
}

// Load reads a scene from a JSON file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file %s: %w", path, err)
	}
	return parse(data, path)
}

func parse(data []byte, origin string) (*Scene, error) {
	var sd sceneData
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, fmt.Errorf("failed to parse scene %s: %w", origin, err)
	}

	if err := validate(&sd); err != nil {
		return nil, fmt.Errorf("invalid scene data in %s: %w", origin, err)
	}

	return &Scene{
		Name:  sd.Name,
		Cells: sd.Cells,
		Spawn: geom.V(sd.PlayerSpawn.X, sd.PlayerSpawn.Y),
		Angle: sd.PlayerAngle,
	}, nil
}

// validate checks if the scene data is usable. Jagged rows are allowed.
func validate(sd *sceneData) error {
	if len(sd.Cells) == 0 {
		return fmt.Errorf("scene has no rows")
	}

	for y, row := range sd.Cells {
		for x, cell := range row {
			if cell < 0 {
				return fmt.Errorf("negative cell value %d at (%d, %d)", cell, x, y)
			}
		}
	}

	return nil
}
