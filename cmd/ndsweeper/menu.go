package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ndsweeper/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick boards from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to choose a preset and Enter to play it. Esc on a
board returns to the menu; S opens the best times.

Examples:
  ndsweeper menu
  ndsweeper menu --config ./presets.yaml`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	store := openStore()
	defer closeStore(store)

	if err := tui.RunSession(store, runtimeConfig(width, height), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
