// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for game results.
type Store struct {
	db *sql.DB
}

// Result is one finished game.
type Result struct {
	ID        int64
	PresetID  string
	Dims      string // e.g. "9x9x3"
	Mines     int
	Seed      int64
	Won       bool
	Revealed  int // safe cells revealed when the game ended
	SafeCells int
	Moves     int
	Duration  time.Duration
	CreatedAt time.Time
}

// Progress returns the fraction of safe cells revealed, in [0, 1].
func (r Result) Progress() float64 {
	if r.SafeCells <= 0 {
		return 0
	}
	return float64(r.Revealed) / float64(r.SafeCells)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// SSH sessions share one Store; a single connection serialises writers.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			preset_id TEXT NOT NULL,
			dims TEXT NOT NULL,
			mines INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			won INTEGER NOT NULL,
			revealed INTEGER NOT NULL,
			safe_cells INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_preset ON results(preset_id);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(preset_id, won, duration_ms);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game and returns its ID.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.PresetID == "" {
		return 0, errors.New("storage: result without preset id")
	}

	result, err := s.db.Exec(
		`INSERT INTO results
		 (preset_id, dims, mines, seed, won, revealed, safe_cells, moves, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.PresetID, r.Dims, r.Mines, r.Seed, boolToInt(r.Won),
		r.Revealed, r.SafeCells, r.Moves, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const resultColumns = `id, preset_id, dims, mines, seed, won, revealed, safe_cells, moves, duration_ms, created_at`

// BestTimes returns the fastest wins for a preset.
func (s *Store) BestTimes(presetID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE preset_id = ? AND won = 1
		 ORDER BY duration_ms ASC, id ASC
		 LIMIT ?`,
		presetID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best times: %w", err)
	}
	return scanResults(rows)
}

// RecentResults returns the latest games, newest first. An empty presetID
// covers every preset.
func (s *Store) RecentResults(presetID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	var (
		rows *sql.Rows
		err  error
	)
	if presetID == "" {
		rows, err = s.db.Query(
			`SELECT `+resultColumns+` FROM results ORDER BY id DESC LIMIT ?`,
			limit,
		)
	} else {
		rows, err = s.db.Query(
			`SELECT `+resultColumns+` FROM results WHERE preset_id = ? ORDER BY id DESC LIMIT ?`,
			presetID, limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	return scanResults(rows)
}

func scanResults(rows *sql.Rows) ([]Result, error) {
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var won int
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.PresetID, &r.Dims, &r.Mines, &r.Seed, &won,
			&r.Revealed, &r.SafeCells, &r.Moves, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Won = won != 0
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// ClearResults deletes all results for a preset.
func (s *Store) ClearResults(presetID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE preset_id = ?", presetID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// PresetStats contains aggregated statistics for a preset.
type PresetStats struct {
	PresetID   string
	Played     int
	Wins       int
	BestTime   time.Duration // zero if never won
	LastPlayed time.Time
}

// WinRate returns wins divided by games played.
func (p PresetStats) WinRate() float64 {
	if p.Played == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Played)
}

// Stats retrieves aggregated statistics for a preset.
func (s *Store) Stats(presetID string) (*PresetStats, error) {
	stats := &PresetStats{PresetID: presetID}

	var bestMS int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0),
		        COALESCE(MIN(CASE WHEN won = 1 THEN duration_ms END), 0)
		 FROM results WHERE preset_id = ?`,
		presetID,
	).Scan(&stats.Played, &stats.Wins, &bestMS)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get preset stats: %w", err)
	}
	stats.BestTime = time.Duration(bestMS) * time.Millisecond

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results WHERE preset_id = ? ORDER BY id DESC LIMIT 1`,
		presetID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// AllStats retrieves statistics for every preset that has been played.
func (s *Store) AllStats() (map[string]*PresetStats, error) {
	rows, err := s.db.Query(
		`SELECT preset_id, COUNT(*), SUM(won),
		        COALESCE(MIN(CASE WHEN won = 1 THEN duration_ms END), 0),
		        MAX(created_at)
		 FROM results
		 GROUP BY preset_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PresetStats)
	for rows.Next() {
		var p PresetStats
		var bestMS int64
		var lastPlayed any
		if err := rows.Scan(&p.PresetID, &p.Played, &p.Wins, &bestMS, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		p.BestTime = time.Duration(bestMS) * time.Millisecond
		p.LastPlayed = parseTime(lastPlayed)
		stats[p.PresetID] = &p
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles the datetime forms the driver hands back for
// CURRENT_TIMESTAMP columns and aggregates over them.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339Nano} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	case []byte:
		return parseTime(string(t))
	}
	return time.Time{}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
