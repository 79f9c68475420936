package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Missing config file should not be an error: %v", err)
	}

	def := DefaultConfig()
	if *cfg != *def {
		t.Errorf("Expected defaults %+v, got %+v", def, cfg)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	yamlData := `
window:
  width: 640
  height: 480
scene: maps/cellar.json
max_steps: 16
`
	path := filepath.Join(t.TempDir(), "gridcast.yaml")
	if err := os.WriteFile(path, []byte(yamlData), 0o644); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Window.Width != 640 || cfg.Window.Height != 480 {
		t.Errorf("Expected window 640x480, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.ScenePath != "maps/cellar.json" {
		t.Errorf("Expected scene path override, got '%s'", cfg.ScenePath)
	}
	if cfg.MaxSteps != 16 {
		t.Errorf("Expected max_steps 16, got %d", cfg.MaxSteps)
	}

	// Values absent from the file keep their defaults.
	if cfg.CellSize != DefaultConfig().CellSize {
		t.Errorf("Expected default cell size, got %d", cfg.CellSize)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"zero window", "window:\n  width: 0\n"},
		{"negative cell size", "cell_size: -1\n"},
		{"zero max steps", "max_steps: 0\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(c.yaml), 0o644); err != nil {
				t.Fatalf("Failed to write temp config: %v", err)
			}

			if _, err := Load(path); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestLoadRejectsBrokenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("window: [not a mapping"), 0o644); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected parse error")
	}
}
