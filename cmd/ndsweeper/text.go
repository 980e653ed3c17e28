package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	engine "github.com/vovakirdan/ndsweeper/internal/games/ndmines/core"
	"github.com/vovakirdan/ndsweeper/internal/platform/textui"
)

var flagNoColor bool

var textCmd = &cobra.Command{
	Use:   "text [preset]",
	Short: "Play with typed commands",
	Long: `Play by typing commands instead of moving a cursor. Reads standard
input line by line, so boards can be scripted.

Commands:
  reveal 1,2,0   open a cell
  flag 1,2,0     toggle a flag
  chord 1,2,0    open around a satisfied number
  show [1,2,0]   print the plane through a cell
  axes x z       choose the drawn axes
  status         progress and time
  new [seed]     start over
  quit

Examples:
  ndsweeper text cube
  echo "reveal 4,4,1" | ndsweeper text slab --seed 7`,
	Args: cobra.MaximumNArgs(1),
	Run:  runText,
}

func init() {
	addBoardFlags(textCmd)
	textCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Never color the output")
}

func runText(_ *cobra.Command, args []string) {
	preset, err := resolvePreset(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	store := openStore()
	defer closeStore(store)

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	session, err := textui.NewSession(engine.Dims(preset.Dims), preset.MineCount(), seed, os.Stdout, textui.Options{
		PresetID:  preset.ID,
		CellWidth: appConfig.Display.CellWidth,
		Color:     !flagNoColor && term.IsTerminal(int(os.Stdout.Fd())),
		Store:     store,
		Logger:    logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := session.Run(os.Stdin, interactive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
