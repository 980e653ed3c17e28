package config

import (
	_ "embed"
)

//go:embed defaults/ndsweeper.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in presets. It mirrors the embedded
// defaults/ndsweeper.yaml and is the last fallback of Load.
func DefaultConfig() Config {
	return Config{
		DefaultPreset: "classic-beginner",
		Presets: []PresetConfig{
			{ID: "line", Title: "Line (1-D)", Dims: []int{40}, Mines: 6},
			{ID: "classic-beginner", Title: "Beginner 9x9", Dims: []int{9, 9}, Mines: 10},
			{ID: "classic-intermediate", Title: "Intermediate 16x16", Dims: []int{16, 16}, Mines: 40},
			{ID: "classic-expert", Title: "Expert 30x16", Dims: []int{30, 16}, Mines: 99},
			{ID: "cube", Title: "Cube 6x6x6", Dims: []int{6, 6, 6}, Mines: 20},
			{ID: "slab", Title: "Slab 9x9x3", Dims: []int{9, 9, 3}, Density: 0.1},
			{ID: "tesseract", Title: "Tesseract 4x4x4x4", Dims: []int{4, 4, 4, 4}, Mines: 12},
		},
		Display: DefaultDisplay(),
	}
}

// DefaultDisplay returns the default display settings.
func DefaultDisplay() DisplayConfig {
	return DisplayConfig{
		TickRate:  10,
		CellWidth: 2,
	}
}
