// Package config provides YAML-based board presets and display settings
// for ndsweeper, plus the difficulty densities used for custom boards.
package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Config is the top-level configuration file.
type Config struct {
	DefaultPreset string         `yaml:"default_preset"`
	Presets       []PresetConfig `yaml:"presets"`
	Display       DisplayConfig  `yaml:"display"`
}

// PresetConfig describes one named board. Exactly one of Mines and Density
// is set.
type PresetConfig struct {
	ID      string  `yaml:"id"`
	Title   string  `yaml:"title"`
	Dims    []int   `yaml:"dims"`
	Mines   int     `yaml:"mines,omitempty"`
	Density float64 `yaml:"density,omitempty"` // fraction of cells holding mines
}

// DisplayConfig controls the terminal front ends.
type DisplayConfig struct {
	TickRate  int `yaml:"tick_rate"`  // clock ticks per second
	CellWidth int `yaml:"cell_width"` // columns per board cell, 1..3
}

// Total returns the number of cells of the preset's board.
func (p PresetConfig) Total() int {
	total := 1
	for _, d := range p.Dims {
		total *= d
	}
	return total
}

// DimsString formats the dimensions as "9x9x3".
func (p PresetConfig) DimsString() string {
	parts := make([]string, len(p.Dims))
	for i, d := range p.Dims {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, "x")
}

// MineCount resolves the number of mines. A density is rounded to the
// nearest whole mine and kept inside [1, total-1].
func (p PresetConfig) MineCount() int {
	if p.Mines > 0 {
		return p.Mines
	}
	total := p.Total()
	n := int(math.Round(p.Density * float64(total)))
	if n < 1 {
		n = 1
	}
	if n > total-1 {
		n = total - 1
	}
	return n
}

// Validate checks a single preset.
func (p PresetConfig) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("config: preset without id")
	}
	if len(p.Dims) == 0 {
		return fmt.Errorf("config: preset %q: dims must not be empty", p.ID)
	}
	total := 1
	for axis, d := range p.Dims {
		if d < 1 {
			return fmt.Errorf("config: preset %q: axis %d has extent %d", p.ID, axis, d)
		}
		if total > math.MaxInt32/d {
			return fmt.Errorf("config: preset %q: board %s is too large", p.ID, p.DimsString())
		}
		total *= d
	}
	if total < 2 {
		return fmt.Errorf("config: preset %q: a board needs at least 2 cells", p.ID)
	}

	switch {
	case p.Mines != 0 && p.Density != 0:
		return fmt.Errorf("config: preset %q: set either mines or density, not both", p.ID)
	case p.Mines != 0:
		if p.Mines < 0 || p.Mines >= total {
			return fmt.Errorf("config: preset %q: %d mines on %d cells", p.ID, p.Mines, total)
		}
	case p.Density != 0:
		if p.Density <= 0 || p.Density >= 1 {
			return fmt.Errorf("config: preset %q: density %.3f outside (0, 1)", p.ID, p.Density)
		}
	default:
		return fmt.Errorf("config: preset %q: mines or density is required", p.ID)
	}
	return nil
}

// Validate checks every preset, id uniqueness and the display settings.
func (c Config) Validate() error {
	if len(c.Presets) == 0 {
		return fmt.Errorf("config: no presets defined")
	}

	seen := make(map[string]bool, len(c.Presets))
	for _, p := range c.Presets {
		if err := p.Validate(); err != nil {
			return err
		}
		if seen[p.ID] {
			return fmt.Errorf("config: duplicate preset %q", p.ID)
		}
		seen[p.ID] = true
	}

	if c.DefaultPreset != "" && !seen[c.DefaultPreset] {
		return fmt.Errorf("config: default_preset %q is not defined", c.DefaultPreset)
	}
	if c.Display.TickRate < 1 || c.Display.TickRate > 60 {
		return fmt.Errorf("config: display.tick_rate %d outside [1, 60]", c.Display.TickRate)
	}
	if c.Display.CellWidth < 1 || c.Display.CellWidth > 3 {
		return fmt.Errorf("config: display.cell_width %d outside [1, 3]", c.Display.CellWidth)
	}
	return nil
}

// Preset looks up a preset by id.
func (c Config) Preset(id string) (PresetConfig, bool) {
	for _, p := range c.Presets {
		if p.ID == id {
			return p, true
		}
	}
	return PresetConfig{}, false
}

// Default returns the default preset, or the first one if none is named.
func (c Config) Default() PresetConfig {
	if p, ok := c.Preset(c.DefaultPreset); ok {
		return p
	}
	if len(c.Presets) > 0 {
		return c.Presets[0]
	}
	return PresetConfig{}
}
