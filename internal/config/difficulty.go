package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named mine density for custom boards.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// DensityForPreset returns the mine density for a difficulty preset.
// The values match the classic 9x9, 16x16 and 30x16 boards.
func DensityForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.12
	case DifficultyHard:
		return 0.21
	default:
		return 0.16
	}
}

// ParseDifficulty accepts easy, normal or hard in any case.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// CustomPreset builds a preset for an arbitrary board. A positive mines
// overrides the difficulty density; zero selects it. A negative count is an
// error.
func CustomPreset(dims []int, preset DifficultyPreset, mines int) (PresetConfig, error) {
	if mines < 0 {
		return PresetConfig{}, fmt.Errorf("config: mine count %d is negative", mines)
	}

	p := PresetConfig{
		Dims: append([]int(nil), dims...),
	}
	if mines > 0 {
		p.ID = fmt.Sprintf("custom-%s-m%d", p.DimsString(), mines)
		p.Mines = mines
		p.Title = fmt.Sprintf("Custom %s, %d mines", p.DimsString(), mines)
	} else {
		p.ID = fmt.Sprintf("custom-%s-%s", p.DimsString(), preset)
		p.Density = DensityForPreset(preset)
		p.Title = fmt.Sprintf("Custom %s (%s)", p.DimsString(), preset)
	}

	if err := p.Validate(); err != nil {
		return PresetConfig{}, err
	}
	return p, nil
}
