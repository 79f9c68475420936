// Package main is the entry point for the gridcast visualizer.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/attribute"

	"github.com/gridcast/gridcast/internal/config"
	"github.com/gridcast/gridcast/internal/game"
	ebitenrender "github.com/gridcast/gridcast/internal/render/ebiten"
	"github.com/gridcast/gridcast/internal/scene"
	"github.com/gridcast/gridcast/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "gridcast.yaml", "path to the config file")
	scenePath := flag.String("scene", "", "path to a scene file (overrides config)")
	flag.Parse()

	// Load .env file for local development. Not fatal - env vars might
	// be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *scenePath != "" {
		cfg.ScenePath = *scenePath
	}

	ctx := context.Background()
	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Visualizer will run without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	sc, err := loadScene(ctx, cfg.ScenePath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}
	size := sc.Size()
	log.Printf("Loaded scene %q (%.0fx%.0f cells)", sc.Name, size.X, size.Y)

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g := game.New(cfg, sc, renderer, inputMgr)

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)

	log.Println("Starting visualizer...")
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// loadScene reads the configured scene file, falling back to the
// embedded default when none is configured.
func loadScene(ctx context.Context, path string) (*scene.Scene, error) {
	_, span := telemetry.Tracer("scene").Start(ctx, "scene.load")
	span.SetAttributes(attribute.String("scene.path", path))
	defer span.End()

	if path == "" {
		return scene.Default()
	}
	return scene.Load(path)
}
