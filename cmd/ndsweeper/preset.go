package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ndsweeper/internal/config"
	engine "github.com/vovakirdan/ndsweeper/internal/games/ndmines/core"
)

var (
	flagDims       string
	flagDifficulty string
	flagMines      int
)

// addBoardFlags registers the custom board flags shared by play and text.
func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDims, "dims", "", "Custom board, e.g. 9x9x3")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Mine density for --dims: easy, normal, hard")
	cmd.Flags().IntVar(&flagMines, "mines", 0, "Exact mine count for --dims (overrides --difficulty)")
}

// resolvePreset picks the board: --dims builds a custom one, otherwise the
// named preset, otherwise the configured default.
func resolvePreset(args []string) (config.PresetConfig, error) {
	if flagDims != "" {
		if len(args) > 0 {
			return config.PresetConfig{}, fmt.Errorf("give either a preset or --dims, not both")
		}
		dims, err := engine.ParseDims(flagDims)
		if err != nil {
			return config.PresetConfig{}, err
		}
		difficulty, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return config.PresetConfig{}, err
		}
		return config.CustomPreset(dims, difficulty, flagMines)
	}

	if flagDifficulty != "" || flagMines != 0 {
		return config.PresetConfig{}, fmt.Errorf("--difficulty and --mines need --dims")
	}

	if len(args) == 0 {
		return appConfig.Default(), nil
	}
	if p, ok := appConfig.Preset(args[0]); ok {
		return p, nil
	}
	if p, ok := config.DefaultConfig().Preset(args[0]); ok {
		return p, nil
	}
	return config.PresetConfig{}, fmt.Errorf("unknown preset %q (run 'ndsweeper list')", args[0])
}
