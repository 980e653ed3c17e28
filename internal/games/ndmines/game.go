// Package ndmines adapts the N-dimensional minesweeper engine to the
// platform's Game interface: a cursor moving through the board, a 2-D
// slice projection for drawing, and a clock that starts on the first reveal.
package ndmines

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ndsweeper/internal/config"
	platformcore "github.com/vovakirdan/ndsweeper/internal/core"
	"github.com/vovakirdan/ndsweeper/internal/games/ndmines/core"
	"github.com/vovakirdan/ndsweeper/internal/registry"
	"github.com/vovakirdan/ndsweeper/internal/storage"
)

var logger = log.New(io.Discard)

// SetLogger routes adapter debug output (placement, outcomes) to l.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

func init() {
	for _, p := range config.DefaultConfig().Presets {
		p := p
		registry.Register(p.ID, func() registry.Game {
			return New(p)
		})
	}
}

// RegisterPresets adds the presets of a loaded configuration to the
// registry, replacing built-ins with the same ID.
func RegisterPresets(cfg config.Config) {
	for _, p := range cfg.Presets {
		p := p
		registry.Set(p.ID, func() registry.Game {
			return New(p)
		})
	}
}

// Game hosts one core.Game for an interactive front end. It is not safe for
// concurrent use; each session owns its own instance.
type Game struct {
	preset config.PresetConfig
	dims   core.Dims
	mines  int

	game   *core.Game
	err    error // set if the preset cannot build a board
	view   View
	cursor core.Coord
	seed   int64

	tickRate  int
	ticks     int
	paused    bool
	message   string
	cellWidth int

	screenW int
	screenH int
}

// New creates an adapter for a preset. The board is built by Reset.
func New(p config.PresetConfig) *Game {
	return &Game{
		preset: p,
		dims:   core.Dims(append([]int(nil), p.Dims...)),
		mines:  p.MineCount(),
	}
}

// ID returns the preset identifier.
func (g *Game) ID() string {
	return g.preset.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.preset.Title != "" {
		return g.preset.Title
	}
	return g.preset.ID
}

// Describe summarises the board, e.g. "9x9x3, 24 mines".
func (g *Game) Describe() string {
	return fmt.Sprintf("%s, %d mines", g.dims, g.mines)
}

// Reset builds a fresh board awaiting its first reveal.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.seed = cfg.Seed
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = platformcore.DefaultConfig().TickRate
	}
	g.cellWidth = platformcore.Clamp(cfg.CellWidth, 1, 3)
	if cfg.CellWidth == 0 {
		g.cellWidth = platformcore.DefaultConfig().CellWidth
	}

	g.ticks = 0
	g.paused = false
	g.message = ""

	g.game, g.err = core.NewGame(g.dims, g.mines, g.seed)
	if g.err != nil {
		logger.Error("cannot build board", "preset", g.preset.ID, "error", g.err)
		return
	}

	g.view = NewView(g.dims.Rank())
	g.cursor = make(core.Coord, g.dims.Rank())
	for axis, extent := range g.dims {
		g.cursor[axis] = extent / 2
	}

	logger.Debug("new board", "preset", g.preset.ID, "dims", g.dims.String(), "mines", g.mines, "seed", g.seed)
}

// Step applies this tick's actions and advances the clock.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.game == nil {
		return platformcore.StepResult{State: g.State(), Message: g.message}
	}

	if in.Has(platformcore.ActionPause) && g.game.Phase() == core.InProgress {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State(), Message: "paused"}
	}

	g.handleMovement(in)

	if !g.game.Over() {
		switch {
		case in.Has(platformcore.ActionReveal):
			g.reveal()
		case in.Has(platformcore.ActionFlag):
			g.flag()
		case in.Has(platformcore.ActionChord):
			g.chord()
		}
	}

	if g.game.Phase() == core.InProgress {
		g.ticks++
	}

	return platformcore.StepResult{State: g.State(), Message: g.message}
}

func (g *Game) handleMovement(in platformcore.InputFrame) {
	move := func(axis, delta int) {
		if axis < 0 {
			return
		}
		g.cursor[axis] = platformcore.Clamp(g.cursor[axis]+delta, 0, g.dims[axis]-1)
	}

	if in.Has(platformcore.ActionLeft) {
		move(g.view.X, -1)
	}
	if in.Has(platformcore.ActionRight) {
		move(g.view.X, 1)
	}
	if in.Has(platformcore.ActionUp) {
		move(g.view.Y, -1)
	}
	if in.Has(platformcore.ActionDown) {
		move(g.view.Y, 1)
	}
	if in.Has(platformcore.ActionLayerDown) {
		move(g.view.Focus, -1)
	}
	if in.Has(platformcore.ActionLayerUp) {
		move(g.view.Focus, 1)
	}
	if in.Has(platformcore.ActionNextAxis) {
		g.view = g.view.NextFocus()
	}
	if in.Has(platformcore.ActionSwapView) {
		g.view = g.view.Rotate()
	}
}

func (g *Game) reveal() {
	first := g.game.Phase() == core.AwaitingFirstMove
	out, err := g.game.Reveal(g.cursor)

	// Revealing an open number chords it
	if errors.Is(err, core.ErrAlreadyRevealed) {
		g.chord()
		return
	}
	if err != nil {
		g.message = describeError(err)
		return
	}

	if first {
		logger.Debug("mines placed", "preset", g.preset.ID, "first", g.cursor.String(), "seed", g.seed)
	}
	g.afterOutcome(out)
}

func (g *Game) flag() {
	if err := g.game.ToggleFlag(g.cursor); err != nil {
		g.message = describeError(err)
		return
	}
	g.message = ""
}

func (g *Game) chord() {
	out, err := g.game.Chord(g.cursor)
	if err != nil {
		g.message = describeError(err)
		return
	}
	if out.Kind == core.OutcomeNone {
		g.message = "flags don't match the number"
		return
	}
	g.afterOutcome(out)
}

func (g *Game) afterOutcome(out core.RevealOutcome) {
	logger.Debug("outcome", "preset", g.preset.ID, "kind", out.Kind.String(), "at", out.At.String(), "opened", len(out.Revealed))

	switch g.game.Phase() {
	case core.Lost:
		g.message = fmt.Sprintf("BOOM at %s", out.At)
	case core.Won:
		g.message = "cleared!"
	default:
		g.message = ""
	}
	if g.game.Over() {
		logger.Debug("game over", "preset", g.preset.ID, "phase", g.game.Phase().String(), "moves", g.game.Moves(), "ticks", g.ticks)
	}
}

func describeError(err error) string {
	switch {
	case errors.Is(err, core.ErrCellFlagged):
		return "cell is flagged"
	case errors.Is(err, core.ErrAlreadyRevealed):
		return "already open"
	case errors.Is(err, core.ErrNotRevealed):
		return "chord needs an open number"
	case errors.Is(err, core.ErrGameOver):
		return "game over"
	default:
		return err.Error()
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.game == nil {
		return platformcore.GameState{}
	}
	return platformcore.GameState{
		Score:    g.game.RevealedCount(),
		Ticks:    g.ticks,
		Moves:    g.game.Moves(),
		GameOver: g.game.Over(),
		Won:      g.game.Phase() == core.Won,
		Paused:   g.paused,
	}
}

// Elapsed converts the tick count to wall time.
func (g *Game) Elapsed() time.Duration {
	if g.tickRate <= 0 {
		return 0
	}
	return time.Duration(g.ticks) * time.Second / time.Duration(g.tickRate)
}

// Cursor returns a copy of the cursor position.
func (g *Game) Cursor() core.Coord {
	return g.cursor.Clone()
}

// View returns the current projection.
func (g *Game) View() View {
	return g.view
}

// Board exposes the hosted engine game, nil if the preset is unplayable.
func (g *Game) Board() *core.Game {
	return g.game
}

// Result describes the finished game for storage. ok is false while the
// game is still running.
func (g *Game) Result() (storage.Result, bool) {
	if g.game == nil || !g.game.Over() {
		return storage.Result{}, false
	}
	return storage.Result{
		PresetID:  g.preset.ID,
		Dims:      g.dims.String(),
		Mines:     g.mines,
		Seed:      g.seed,
		Won:       g.game.Phase() == core.Won,
		Revealed:  g.game.RevealedCount(),
		SafeCells: g.game.TotalCells() - g.game.MineCount(),
		Moves:     g.game.Moves(),
		Duration:  g.Elapsed(),
	}, true
}

// formatClock renders a duration as m:ss.
func formatClock(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// truncate clips s to n runes.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimRight(string(r[:n]), " ")
}
