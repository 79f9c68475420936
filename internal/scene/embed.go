package scene

import "embed"

// defaultFS embeds the fallback scene shipped with the binary.
//
//go:embed default_scene.json
var defaultFS embed.FS

// Default returns the embedded fallback scene, used when no scene file
// is configured.
func Default() (*Scene, error) {
	data, err := defaultFS.ReadFile("default_scene.json")
	if err != nil {
		return nil, err
	}
	return parse(data, "default_scene.json")
}
