// ndsweeper is N-dimensional minesweeper for the terminal.
//
// Usage:
//
//	ndsweeper list               - List board presets
//	ndsweeper play [preset]      - Play a board full-screen
//	ndsweeper menu               - Pick boards interactively
//	ndsweeper text [preset]      - Play with typed commands (pipes, scripts)
//	ndsweeper serve              - Start SSH server for remote play
//	ndsweeper scores [preset]    - Show best times
//
// Global flags:
//
//	--seed <value>  - Set placement seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.ndsweeper/results.db)
//	--config <path> - Load presets from a YAML file
//	--fps <rate>    - Clock ticks per second (default: from config)
//	--verbose       - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ndsweeper/internal/config"
	"github.com/vovakirdan/ndsweeper/internal/core"
	"github.com/vovakirdan/ndsweeper/internal/games/ndmines"
	"github.com/vovakirdan/ndsweeper/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagVerbose bool

	appConfig config.Config
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ndsweeper",
	Short: "Minesweeper in any number of dimensions",
	Long: `ndsweeper plays minesweeper on boards with one, two, three or more
axes. Every cell touching another along any combination of axes is a
neighbour, so a cell in a 3-D cube has up to 26 of them.

The board is drawn one plane at a time: pick which two axes to look at
and step through the others.

Examples:
  ndsweeper list
  ndsweeper play cube
  ndsweeper play --dims 5x5x5 --difficulty hard
  ndsweeper text tesseract
  ndsweeper serve --ssh :2222`,
	PersistentPreRun: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Clock ticks per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Placement seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ndsweeper/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to presets YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(textCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup builds the logger, loads presets and registers them.
func setup(_ *cobra.Command, _ []string) {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ndsweeper",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	appConfig = cfg

	ndmines.SetLogger(logger)
	ndmines.RegisterPresets(appConfig)
	logger.Debug("config loaded", "presets", len(appConfig.Presets), "default", appConfig.DefaultPreset)
}

// runtimeConfig combines flags, config and terminal size.
func runtimeConfig(width, height int) core.RuntimeConfig {
	tickRate := appConfig.Display.TickRate
	if flagFPS > 0 {
		tickRate = flagFPS
	}
	return core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		TickRate:  tickRate,
		Seed:      flagSeed,
		CellWidth: appConfig.Display.CellWidth,
	}
}

// openStore opens the results database. Play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("could not close results database", "error", err)
	}
}
