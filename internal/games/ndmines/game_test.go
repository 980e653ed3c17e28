package ndmines

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/ndsweeper/internal/config"
	platformcore "github.com/vovakirdan/ndsweeper/internal/core"
	"github.com/vovakirdan/ndsweeper/internal/games/ndmines/core"
	"github.com/vovakirdan/ndsweeper/internal/registry"
)

var cubePreset = config.PresetConfig{ID: "test-cube", Title: "Test Cube", Dims: []int{3, 3, 3}, Mines: 3}

func newTestGame(t *testing.T, p config.PresetConfig, seed int64) *Game {
	t.Helper()

	g := New(p)
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: seed, CellWidth: 2})
	if g.Board() == nil {
		t.Fatalf("preset %s did not build a board", p.ID)
	}
	return g
}

func frame(actions ...platformcore.Action) platformcore.InputFrame {
	f := platformcore.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// mineLayout replays placement for a first reveal at first.
func mineLayout(t *testing.T, d core.Dims, mines int, first core.Coord, seed int64) []core.Coord {
	t.Helper()

	b, err := core.NewBoard(d, mines)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.PlaceMines(first, seed); err != nil {
		t.Fatal(err)
	}
	return b.Mines()
}

func TestBuiltinPresetsRegistered(t *testing.T) {
	for _, p := range config.DefaultConfig().Presets {
		if !registry.Exists(p.ID) {
			t.Errorf("preset %s not registered", p.ID)
		}
	}

	g, err := registry.Create("classic-beginner")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if d, ok := g.(registry.Describer); !ok || d.Describe() != "9x9, 10 mines" {
		t.Errorf("unexpected description for classic-beginner")
	}
}

func TestRegisterPresetsReplaces(t *testing.T) {
	cfg := config.Config{Presets: []config.PresetConfig{
		{ID: "test-custom-line", Title: "Custom Line", Dims: []int{12}, Mines: 2},
	}}
	RegisterPresets(cfg)

	g, err := registry.Create("test-custom-line")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.Title() != "Custom Line" {
		t.Errorf("unexpected title %q", g.Title())
	}

	cfg.Presets[0].Title = "Renamed"
	RegisterPresets(cfg)
	g, _ = registry.Create("test-custom-line")
	if g.Title() != "Renamed" {
		t.Errorf("RegisterPresets should replace, got %q", g.Title())
	}
}

func TestDeterminism(t *testing.T) {
	p := config.PresetConfig{ID: "test-det", Dims: []int{8, 6, 3}, Mines: 12}
	g1 := newTestGame(t, p, 12345)
	g2 := newTestGame(t, p, 12345)

	script := [][]platformcore.Action{
		{platformcore.ActionReveal},
		{platformcore.ActionLeft},
		{platformcore.ActionLeft},
		{platformcore.ActionFlag},
		{platformcore.ActionLayerUp},
		{platformcore.ActionReveal},
		{platformcore.ActionSwapView},
		{platformcore.ActionDown},
		{platformcore.ActionReveal},
		{},
		{platformcore.ActionChord},
	}
	for _, actions := range script {
		g1.Step(frame(actions...))
		g2.Step(frame(actions...))
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestFirstRevealStartsClock(t *testing.T) {
	g := newTestGame(t, cubePreset, 42)

	g.Step(frame())
	if g.State().Ticks != 0 {
		t.Errorf("clock should not run before the first reveal, got %d ticks", g.State().Ticks)
	}

	g.Step(frame(platformcore.ActionReveal))
	snap := g.Snapshot()
	if snap.Phase != core.InProgress {
		t.Fatalf("expected in progress, got %v", snap.Phase)
	}
	if snap.Revealed != 1 || snap.Moves != 1 {
		t.Errorf("expected 1 revealed / 1 move, got %d / %d", snap.Revealed, snap.Moves)
	}
	// The centre of a 3x3x3 cube sees all three mines
	if snap.Cells[13] != '3' {
		t.Errorf("expected centre count 3, got %q", snap.Cells[13])
	}

	g.Step(frame())
	if g.State().Ticks != 2 {
		t.Errorf("expected 2 ticks, got %d", g.State().Ticks)
	}
	if g.Elapsed() != 200*time.Millisecond {
		t.Errorf("expected 200ms at 10 ticks/s, got %v", g.Elapsed())
	}
}

func TestCursorMovement(t *testing.T) {
	g := newTestGame(t, config.PresetConfig{ID: "test-move", Dims: []int{4, 3, 2, 2}, Mines: 3}, 1)

	if g.Cursor().String() != "(2,1,1,1)" {
		t.Fatalf("cursor should start centred, got %s", g.Cursor())
	}

	g.Step(frame(platformcore.ActionLeft))
	g.Step(frame(platformcore.ActionLeft))
	g.Step(frame(platformcore.ActionLeft))
	if g.Cursor()[0] != 0 {
		t.Errorf("cursor should clamp at 0, got %s", g.Cursor())
	}

	g.Step(frame(platformcore.ActionDown))
	g.Step(frame(platformcore.ActionDown))
	if g.Cursor()[1] != 2 {
		t.Errorf("cursor should clamp at the last row, got %s", g.Cursor())
	}

	// Focus starts on axis 2
	g.Step(frame(platformcore.ActionLayerDown))
	if g.Cursor()[2] != 0 {
		t.Errorf("layer down should move axis 2, got %s", g.Cursor())
	}

	g.Step(frame(platformcore.ActionNextAxis))
	g.Step(frame(platformcore.ActionLayerDown))
	if g.Cursor()[3] != 0 {
		t.Errorf("after tab, layer down should move axis 3, got %s", g.Cursor())
	}

	g.Step(frame(platformcore.ActionSwapView))
	if v := g.View(); v.X != 0 || v.Y != 2 {
		t.Errorf("expected view (0,2) after one rotation, got (%d,%d)", v.X, v.Y)
	}
	if g.View().Focus != 3 {
		t.Errorf("focus on a still-fixed axis should stay, got %d", g.View().Focus)
	}

	if g.Board().Phase() != core.AwaitingFirstMove {
		t.Error("movement must not touch the board")
	}
}

func TestFlagAndPause(t *testing.T) {
	g := newTestGame(t, cubePreset, 42)

	g.Step(frame(platformcore.ActionPause))
	if g.State().Paused {
		t.Error("pause should be ignored before the first reveal")
	}

	g.Step(frame(platformcore.ActionReveal))
	g.Step(frame(platformcore.ActionLeft))
	g.Step(frame(platformcore.ActionFlag))
	if g.Snapshot().Flagged != 1 {
		t.Fatalf("expected one flag, got %d", g.Snapshot().Flagged)
	}
	if g.Board().RemainingMineEstimate() != 2 {
		t.Errorf("expected estimate 2, got %d", g.Board().RemainingMineEstimate())
	}

	ticks := g.State().Ticks
	g.Step(frame(platformcore.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	g.Step(frame(platformcore.ActionFlag))
	g.Step(frame())
	if g.State().Ticks != ticks {
		t.Errorf("clock should stop while paused: %d -> %d", ticks, g.State().Ticks)
	}
	if g.Snapshot().Flagged != 1 {
		t.Error("actions should be ignored while paused")
	}

	g.Step(frame(platformcore.ActionPause))
	if g.State().Paused {
		t.Error("expected unpaused")
	}
}

func TestRevealFlaggedShowsMessage(t *testing.T) {
	g := newTestGame(t, cubePreset, 42)

	g.Step(frame(platformcore.ActionFlag))
	res := g.Step(frame(platformcore.ActionReveal))
	if res.Message != "cell is flagged" {
		t.Errorf("unexpected message %q", res.Message)
	}
	if g.Board().Phase() != core.AwaitingFirstMove {
		t.Error("revealing a flagged cell must not start the game")
	}
}

func TestLoseRecordsResult(t *testing.T) {
	g := newTestGame(t, cubePreset, 42)
	centre := g.Cursor()

	g.Step(frame(platformcore.ActionReveal))
	if _, ok := g.Result(); ok {
		t.Fatal("no result while the game is running")
	}

	mine := mineLayout(t, core.Dims{3, 3, 3}, 3, centre, 42)[0]
	g.cursor = mine.Clone()
	res := g.Step(frame(platformcore.ActionReveal))

	if !res.State.GameOver || res.State.Won {
		t.Fatalf("expected a loss, got %+v", res.State)
	}
	if !strings.HasPrefix(res.Message, "BOOM") {
		t.Errorf("unexpected message %q", res.Message)
	}

	r, ok := g.Result()
	if !ok {
		t.Fatal("expected a result after the game ended")
	}
	if r.PresetID != "test-cube" || r.Dims != "3x3x3" || r.Mines != 3 || r.Seed != 42 || r.Won {
		t.Errorf("unexpected result %+v", r)
	}
	if r.SafeCells != 24 || r.Revealed != 1 || r.Moves != 2 {
		t.Errorf("unexpected counts %+v", r)
	}

	ticks := g.State().Ticks
	g.Step(frame(platformcore.ActionReveal))
	g.Step(frame())
	if g.State().Ticks != ticks {
		t.Error("clock should stop once the game is over")
	}
}

func TestWinByChord(t *testing.T) {
	g := newTestGame(t, cubePreset, 42)
	centre := g.Cursor()
	g.Step(frame(platformcore.ActionReveal))

	for _, m := range mineLayout(t, core.Dims{3, 3, 3}, 3, centre, 42) {
		g.cursor = m.Clone()
		g.Step(frame(platformcore.ActionFlag))
	}

	// Revealing an open number chords it
	g.cursor = centre.Clone()
	res := g.Step(frame(platformcore.ActionReveal))
	if !res.State.Won {
		t.Fatalf("expected a win, got %+v (%s)", res.State, res.Message)
	}

	r, ok := g.Result()
	if !ok || !r.Won || r.Revealed != 24 {
		t.Errorf("unexpected result %+v", r)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, cubePreset, 42)
	screen := platformcore.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Test Cube") {
		t.Error("HUD should show the title")
	}
	if !strings.Contains(out, "[z=1]") {
		t.Error("HUD should show the focused fixed axis")
	}
	if !strings.Contains(out, "[ ·]") {
		t.Errorf("cursor should bracket the centre cell:\n%s", out)
	}

	g.Step(frame(platformcore.ActionReveal))
	screen.Clear()
	g.Render(screen)
	if !strings.Contains(screen.String(), "[ 3]") {
		t.Errorf("revealed centre should show 3:\n%s", screen.String())
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, cubePreset, 42)
	screen := platformcore.NewScreen(20, 4)

	g.Render(screen)
	if !strings.Contains(screen.String(), "window too small") {
		t.Errorf("expected size warning:\n%s", screen.String())
	}
}

func TestRenderScrollsToCursor(t *testing.T) {
	g := newTestGame(t, config.PresetConfig{ID: "test-wide", Dims: []int{60, 40}, Mines: 100}, 3)
	screen := platformcore.NewScreen(40, 15)

	for i := 0; i < 20; i++ {
		g.Step(frame(platformcore.ActionRight))
	}
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "[ ·]") {
		t.Errorf("cursor should stay visible after scrolling:\n%s", out)
	}
	if !strings.Contains(out, "<") || !strings.Contains(out, ">") {
		t.Errorf("expected horizontal scroll hints:\n%s", out)
	}
}
