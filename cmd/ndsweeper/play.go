package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ndsweeper/internal/games/ndmines"
	"github.com/vovakirdan/ndsweeper/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [preset]",
	Short: "Play a board full-screen",
	Long: `Start playing a preset, or a custom board with --dims.

Controls:
  Arrows/hjkl   - Move the cursor within the plane
  [ / ]         - Move along the highlighted fixed axis
  Tab           - Highlight the next fixed axis
  V             - Rotate which axes are drawn
  Space/Enter   - Reveal (on an open number: chord)
  F             - Flag
  C             - Chord
  P             - Pause
  R             - New board (after game over)
  ?             - All keys
  Q/Ctrl+C      - Quit

Examples:
  ndsweeper play
  ndsweeper play cube
  ndsweeper play --dims 5x5x5 --difficulty hard
  ndsweeper play --dims 4x4x4x4 --mines 20 --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addBoardFlags(playCmd)
}

func runPlay(_ *cobra.Command, args []string) {
	preset, err := resolvePreset(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store := openStore()
	defer closeStore(store)

	game := ndmines.New(preset)
	if err := tui.Run(game, store, runtimeConfig(width, height), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
