// Package storage records finished Tower of Hanoi trials in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The puzzle and session packages never import it; the front end saves a
// trial from the session's finish hook.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-hanoi/internal/config"
)

// ErrNoStore is returned when a trial is recorded without an open store.
var ErrNoStore = errors.New("storage: no store available")

// Store manages the SQLite database connection for trial results.
type Store struct {
	db *sql.DB
}

// Trial is one solved puzzle.
type Trial struct {
	ID          int64
	SessionID   string
	Participant string
	DiscCount   int
	Moves       int
	Elapsed     time.Duration
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Stats aggregates all trials for one disc count.
type Stats struct {
	DiscCount   int
	Trials      int
	BestElapsed time.Duration
	AvgElapsed  time.Duration
	FewestMoves int
	AvgMoves    float64
	LastPlayed  time.Time
}

// timeLayout is how timestamps are stored. The fixed-width fraction keeps
// text ordering identical to time ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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
		CREATE TABLE IF NOT EXISTS trials (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			participant TEXT NOT NULL DEFAULT '',
			disc_count INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			started_at TEXT NOT NULL,
			finished_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_trials_discs ON trials(disc_count, elapsed_ms);
		CREATE INDEX IF NOT EXISTS idx_trials_session ON trials(session_id);
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

// SaveTrial records a solved puzzle and returns its ID.
func (s *Store) SaveTrial(t Trial) (int64, error) {
	if t.DiscCount < 1 {
		return 0, fmt.Errorf("storage: invalid disc count %d", t.DiscCount)
	}

	result, err := s.db.Exec(
		`INSERT INTO trials (session_id, participant, disc_count, moves, elapsed_ms, started_at, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.SessionID,
		t.Participant,
		t.DiscCount,
		t.Moves,
		t.Elapsed.Milliseconds(),
		t.StartedAt.UTC().Format(timeLayout),
		t.FinishedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save trial: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const trialColumns = `id, session_id, participant, disc_count, moves, elapsed_ms, started_at, finished_at`

// BestTrials returns the fastest trials for a disc count, fewest moves breaking ties.
func (s *Store) BestTrials(discCount, limit int) ([]Trial, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+trialColumns+`
		 FROM trials
		 WHERE disc_count = ?
		 ORDER BY elapsed_ms ASC, moves ASC, id ASC
		 LIMIT ?`,
		discCount, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query trials: %w", err)
	}
	return scanTrials(rows)
}

// RecentTrials returns the most recently finished trials across all disc counts.
func (s *Store) RecentTrials(limit int) ([]Trial, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+trialColumns+`
		 FROM trials
		 ORDER BY finished_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query trials: %w", err)
	}
	return scanTrials(rows)
}

// SessionTrials returns every trial from one session in the order they finished.
func (s *Store) SessionTrials(sessionID string) ([]Trial, error) {
	rows, err := s.db.Query(
		`SELECT `+trialColumns+`
		 FROM trials
		 WHERE session_id = ?
		 ORDER BY finished_at ASC, id ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session trials: %w", err)
	}
	return scanTrials(rows)
}

// scanTrials reads and closes rows.
func scanTrials(rows *sql.Rows) ([]Trial, error) {
	defer rows.Close()

	var trials []Trial
	for rows.Next() {
		var t Trial
		var elapsedMS int64
		var startedAt, finishedAt string
		if err := rows.Scan(
			&t.ID,
			&t.SessionID,
			&t.Participant,
			&t.DiscCount,
			&t.Moves,
			&elapsedMS,
			&startedAt,
			&finishedAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		t.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		t.StartedAt = parseTime(startedAt)
		t.FinishedAt = parseTime(finishedAt)
		trials = append(trials, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return trials, nil
}

func parseTime(v string) time.Time {
	parsed, err := time.Parse(timeLayout, v)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

// DiscStats returns aggregated statistics for one disc count.
// Returns nil without error if no trial exists for it.
func (s *Store) DiscStats(discCount int) (*Stats, error) {
	stats := &Stats{DiscCount: discCount}
	var bestMS, fewest sql.NullInt64
	var avgMS, avgMoves sql.NullFloat64
	var last sql.NullString

	err := s.db.QueryRow(
		`SELECT COUNT(*), MIN(elapsed_ms), AVG(elapsed_ms), MIN(moves), AVG(moves), MAX(finished_at)
		 FROM trials WHERE disc_count = ?`,
		discCount,
	).Scan(&stats.Trials, &bestMS, &avgMS, &fewest, &avgMoves, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	if stats.Trials == 0 {
		return nil, nil
	}

	stats.BestElapsed = time.Duration(bestMS.Int64) * time.Millisecond
	stats.AvgElapsed = time.Duration(avgMS.Float64) * time.Millisecond
	stats.FewestMoves = int(fewest.Int64)
	stats.AvgMoves = avgMoves.Float64
	stats.LastPlayed = parseTime(last.String)
	return stats, nil
}

// PlayedDiscCounts returns every disc count with at least one trial, ascending.
func (s *Store) PlayedDiscCounts() ([]int, error) {
	rows, err := s.db.Query(`SELECT DISTINCT disc_count FROM trials ORDER BY disc_count`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query disc counts: %w", err)
	}
	defer rows.Close()

	var counts []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts = append(counts, n)
	}
	return counts, rows.Err()
}

// ClearTrials deletes every trial for a disc count, or all trials when discCount is 0.
func (s *Store) ClearTrials(discCount int) error {
	var err error
	if discCount == 0 {
		_, err = s.db.Exec("DELETE FROM trials")
	} else {
		_, err = s.db.Exec("DELETE FROM trials WHERE disc_count = ?", discCount)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear trials: %w", err)
	}
	return nil
}
