package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func result(preset string, won bool, d time.Duration) Result {
	return Result{
		PresetID:  preset,
		Dims:      "9x9",
		Mines:     10,
		Seed:      42,
		Won:       won,
		Revealed:  71,
		SafeCells: 71,
		Moves:     30,
		Duration:  d,
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsResults(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveResult(result("classic-beginner", true, time.Second)); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	recent, err := store.RecentResults("", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 1 {
		t.Errorf("expected 1 result after reopen, got %d", len(recent))
	}
}

func TestSaveResultRoundTrip(t *testing.T) {
	store := openTestStore(t)

	in := Result{
		PresetID:  "cube",
		Dims:      "6x6x6",
		Mines:     20,
		Seed:      -7,
		Won:       false,
		Revealed:  50,
		SafeCells: 196,
		Moves:     12,
		Duration:  83250 * time.Millisecond,
	}
	id, err := store.SaveResult(in)
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("expected positive id, got %d", id)
	}

	got, err := store.RecentResults("cube", 1)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}

	r := got[0]
	if r.ID != id || r.Dims != in.Dims || r.Mines != in.Mines || r.Seed != in.Seed ||
		r.Won != in.Won || r.Revealed != in.Revealed || r.SafeCells != in.SafeCells ||
		r.Moves != in.Moves || r.Duration != in.Duration {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", r, in)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestSaveResultRequiresPreset(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveResult(Result{}); err == nil {
		t.Error("expected error for result without preset")
	}
}

func TestBestTimes(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Result{
		result("classic-beginner", true, 40*time.Second),
		result("classic-beginner", false, 5*time.Second),
		result("classic-beginner", true, 25*time.Second),
		result("classic-beginner", true, 90*time.Second),
		result("cube", true, 10*time.Second),
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	best, err := store.BestTimes("classic-beginner", 2)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("expected 2 best times, got %d", len(best))
	}
	if best[0].Duration != 25*time.Second || best[1].Duration != 40*time.Second {
		t.Errorf("unexpected order: %v, %v", best[0].Duration, best[1].Duration)
	}
	for _, r := range best {
		if !r.Won {
			t.Error("BestTimes should only return wins")
		}
	}

	none, err := store.BestTimes("tesseract", 10)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no results, got %d", len(none))
	}
}

func TestRecentResultsOrder(t *testing.T) {
	store := openTestStore(t)

	for i, preset := range []string{"a", "b", "a", "c"} {
		r := result(preset, i%2 == 0, time.Duration(i+1)*time.Second)
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	all, err := store.RecentResults("", 3)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 results, got %d", len(all))
	}
	if all[0].PresetID != "c" || all[1].PresetID != "a" || all[2].PresetID != "b" {
		t.Errorf("expected newest first, got %s %s %s", all[0].PresetID, all[1].PresetID, all[2].PresetID)
	}

	onlyA, err := store.RecentResults("a", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(onlyA) != 2 {
		t.Errorf("expected 2 results for a, got %d", len(onlyA))
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("cube")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Played != 0 || empty.Wins != 0 || empty.BestTime != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("expected zero stats, got %+v", empty)
	}
	if empty.WinRate() != 0 {
		t.Error("win rate of no games should be 0")
	}

	for _, r := range []Result{
		result("cube", false, 3*time.Second),
		result("cube", true, 30*time.Second),
		result("cube", true, 20*time.Second),
		result("cube", false, 1*time.Second),
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	stats, err := store.Stats("cube")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Played != 4 || stats.Wins != 2 {
		t.Errorf("expected 4 played / 2 wins, got %d / %d", stats.Played, stats.Wins)
	}
	if stats.BestTime != 20*time.Second {
		t.Errorf("expected best time 20s (losses ignored), got %v", stats.BestTime)
	}
	if stats.WinRate() != 0.5 {
		t.Errorf("expected win rate 0.5, got %v", stats.WinRate())
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestAllStatsAndClear(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Result{
		result("line", true, 4*time.Second),
		result("line", false, 2*time.Second),
		result("slab", false, 9*time.Second),
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected stats for 2 presets, got %d", len(all))
	}
	if all["line"].Played != 2 || all["line"].Wins != 1 || all["line"].BestTime != 4*time.Second {
		t.Errorf("unexpected line stats %+v", all["line"])
	}
	if all["slab"].BestTime != 0 {
		t.Errorf("slab was never won, got best time %v", all["slab"].BestTime)
	}

	if err := store.ClearResults("line"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}
	stats, err := store.Stats("line")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Played != 0 {
		t.Errorf("expected no line results after clear, got %d", stats.Played)
	}

	slab, err := store.Stats("slab")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if slab.Played != 1 {
		t.Error("ClearResults should not touch other presets")
	}
}

func TestParseTime(t *testing.T) {
	want := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	tests := []any{
		want,
		"2024-03-01 12:30:00",
		"2024-03-01T12:30:00Z",
		[]byte("2024-03-01 12:30:00"),
	}
	for _, in := range tests {
		if got := parseTime(in); !got.Equal(want) {
			t.Errorf("parseTime(%v) = %v, expected %v", in, got, want)
		}
	}

	if !parseTime(nil).IsZero() || !parseTime("garbage").IsZero() {
		t.Error("unparseable input should give the zero time")
	}
}

func TestResultProgress(t *testing.T) {
	if (Result{Revealed: 5, SafeCells: 20}).Progress() != 0.25 {
		t.Error("expected progress 0.25")
	}
	if (Result{}).Progress() != 0 {
		t.Error("expected zero progress without safe cells")
	}
}
