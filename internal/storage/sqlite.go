// Package storage keeps finished Blocky rounds in a SQLite file through the
// pure-Go modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrRunNotFound is returned by RunByID when no round has that id.
var ErrRunNotFound = errors.New("storage: run not found")

// sqliteTime is the layout CURRENT_TIMESTAMP produces.
const sqliteTime = "2006-01-02 15:04:05"

// migrations are applied in order; PRAGMA user_version records how many ran.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS scores (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id     TEXT NOT NULL UNIQUE,
		game_id    TEXT NOT NULL,
		score      INTEGER NOT NULL,
		goal       TEXT NOT NULL DEFAULT '',
		depth      INTEGER NOT NULL DEFAULT 0,
		seed       INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_scores_rank ON scores(game_id, score DESC, id);`,
}

// Store is a handle on the scores database. It is safe for concurrent use;
// SSH sessions share one Store.
type Store struct {
	db *sql.DB
}

// Run is a finished round to be saved.
type Run struct {
	ID     uuid.UUID // Zero value gets a fresh id on save
	GameID string
	Score  int
	Goal   string // Goal description shown to the player
	Depth  int    // Board max depth
	Seed   int64
}

// ScoreEntry is a stored round.
type ScoreEntry struct {
	ID        int64
	RunID     uuid.UUID
	GameID    string
	Score     int
	Goal      string
	Depth     int
	Seed      int64
	CreatedAt time.Time
}

// GameStats aggregates every stored round of one game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Open opens the database at path, creating parent directories and the
// schema as needed. A leading "~" is expanded to the home directory.
func Open(path string) (*Store, error) {
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: expand home: %w", err)
		}
		path = filepath.Join(home, rest)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	// One connection serialises writers from concurrent sessions and keeps
	// the busy timeout pragma in effect.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	if _, err := s.db.Exec(`PRAGMA busy_timeout = 5000`); err != nil {
		return fmt.Errorf("storage: connect: %w", err)
	}

	var version int
	if err := s.db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		return fmt.Errorf("storage: read schema version: %w", err)
	}
	for i := version; i < len(migrations); i++ {
		if _, err := s.db.Exec(migrations[i]); err != nil {
			return fmt.Errorf("storage: migration %d: %w", i+1, err)
		}
		if _, err := s.db.Exec(fmt.Sprintf(`PRAGMA user_version = %d`, i+1)); err != nil {
			return fmt.Errorf("storage: migration %d: %w", i+1, err)
		}
	}
	return nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveRun stores a finished round and returns its row id. run.ID is
// generated when zero.
func (s *Store) SaveRun(run Run) (int64, error) {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	res, err := s.db.Exec(
		`INSERT INTO scores (run_id, game_id, score, goal, depth, seed) VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID.String(), run.GameID, run.Score, run.Goal, run.Depth, run.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: save run %s: %w", run.ID, err)
	}
	return res.LastInsertId()
}

const entryColumns = `SELECT id, run_id, game_id, score, goal, depth, seed, created_at FROM scores`

// TopScores returns up to limit rounds of gameID, best first. Ties go to the
// earlier round. A non-positive limit means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.entries(entryColumns+` WHERE game_id = ? ORDER BY score DESC, id LIMIT ?`, gameID, limit)
}

// AllScores returns every round of gameID in TopScores order.
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return s.entries(entryColumns+` WHERE game_id = ? ORDER BY score DESC, id`, gameID)
}

// RunByID looks up one round. Unknown ids wrap ErrRunNotFound.
func (s *Store) RunByID(id uuid.UUID) (ScoreEntry, error) {
	e, err := scanEntry(s.db.QueryRow(entryColumns+` WHERE run_id = ?`, id.String()))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return e, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	case err != nil:
		return e, fmt.Errorf("storage: load run %s: %w", id, err)
	}
	return e, nil
}

// HighScore returns the best stored score of gameID, or 0.
func (s *Store) HighScore(gameID string) (int, error) {
	var best int
	err := s.db.QueryRow(`SELECT COALESCE(MAX(score), 0) FROM scores WHERE game_id = ?`, gameID).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: high score of %s: %w", gameID, err)
	}
	return best, nil
}

// ClearScores deletes every round of gameID.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec(`DELETE FROM scores WHERE game_id = ?`, gameID); err != nil {
		return fmt.Errorf("storage: clear %s: %w", gameID, err)
	}
	return nil
}

const statsColumns = `SELECT game_id, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(created_at) FROM scores`

// GetGameStats aggregates the rounds of gameID. A game with no rounds
// yields zero stats.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	all, err := s.stats(statsColumns+` WHERE game_id = ? GROUP BY game_id`, gameID)
	if err != nil {
		return nil, err
	}
	if st, ok := all[gameID]; ok {
		return st, nil
	}
	return &GameStats{GameID: gameID}, nil
}

// GetAllGamesStats aggregates every game that has at least one round.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	return s.stats(statsColumns + ` GROUP BY game_id`)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(r rowScanner) (ScoreEntry, error) {
	var (
		e       ScoreEntry
		runID   string
		created any
	)
	if err := r.Scan(&e.ID, &runID, &e.GameID, &e.Score, &e.Goal, &e.Depth, &e.Seed, &created); err != nil {
		return e, err
	}
	id, err := uuid.Parse(runID)
	if err != nil {
		return e, fmt.Errorf("bad run id %q: %w", runID, err)
	}
	e.RunID = id
	e.CreatedAt = parseTime(created)
	return e, nil
}

func (s *Store) entries(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: query runs: %w", err)
	}
	defer rows.Close()

	var out []ScoreEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: scan run: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) stats(query string, args ...any) (map[string]*GameStats, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: query stats: %w", err)
	}
	defer rows.Close()

	out := make(map[string]*GameStats)
	for rows.Next() {
		var (
			st   GameStats
			last any
		)
		if err := rows.Scan(&st.GameID, &st.GamesCount, &st.HighScore, &st.AvgScore, &st.TotalScore, &last); err != nil {
			return nil, fmt.Errorf("storage: scan stats: %w", err)
		}
		st.LastPlayed = parseTime(last)
		out[st.GameID] = &st
	}
	return out, rows.Err()
}

// parseTime accepts both driver-decoded times and raw SQLite text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
