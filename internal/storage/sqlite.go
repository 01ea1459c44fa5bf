// Package storage keeps breakout high scores in SQLite.
// It uses the pure-Go modernc.org/sqlite driver and applies the embedded
// schema with goose on open.
package storage

import (
	"context"
	"database/sql"
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

//go:embed migrations/*.sql
var migrations embed.FS

const (
	defaultLimit = 10
	sqliteTime   = "2006-01-02 15:04:05"
)

// Store is a handle to the scores database.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished game.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Player    string // Empty for anonymous players
	Score     int
	Level     int // Level reached, 0 when unknown
	CreatedAt time.Time
}

// Stats summarizes every score of a mode.
type Stats struct {
	Games   int
	Best    int
	Average float64
	Players int // Distinct non-empty player names
}

// Open opens the database at path, creating parent directories and
// applying pending migrations. A leading ~ is the user's home directory.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "storage: create database directory")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "storage: open database")
	}
	// SQLite serializes writers; one connection avoids SQLITE_BUSY between sessions.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "storage: connect")
	}
	if err := migrate(context.Background(), db); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "storage: migrate")
	}
	return &Store{db: db}, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "storage: expand home directory")
	}
	return filepath.Join(home, path[1:]), nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	goose.SetLogger(goose.NopLogger())
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, "migrations")
}

// SchemaVersion returns the latest applied migration.
func (s *Store) SchemaVersion() (int64, error) {
	v, err := goose.GetDBVersion(s.db)
	return v, errors.Wrap(err, "storage: schema version")
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveEntry inserts a finished game and returns its row ID.
func (s *Store) SaveEntry(e ScoreEntry) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO scores (game_id, player, score, level) VALUES (?, ?, ?, ?)`,
		e.GameID, e.Player, e.Score, e.Level,
	)
	if err != nil {
		return 0, errors.Wrap(err, "storage: save score")
	}
	id, err := res.LastInsertId()
	return id, errors.Wrap(err, "storage: inserted id")
}

const entryColumns = `SELECT id, game_id, player, score, level, created_at FROM scores`

// TopScores returns up to limit entries of a mode, best first. Ties keep
// insertion order. A non-positive limit means the default of 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	return s.query(entryColumns+` WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?`, gameID, limit)
}

// AllScores returns every entry of a mode, best first.
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return s.query(entryColumns+` WHERE game_id = ? ORDER BY score DESC, id ASC`, gameID)
}

// PlayerScores returns up to limit entries of one player in a mode, best first.
func (s *Store) PlayerScores(gameID, player string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	return s.query(
		entryColumns+` WHERE game_id = ? AND player = ? ORDER BY score DESC, id ASC LIMIT ?`,
		gameID, player, limit,
	)
}

func (s *Store) query(q string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, errors.Wrap(err, "storage: query scores")
	}
	defer rows.Close()

	var out []ScoreEntry
	for rows.Next() {
		var (
			e       ScoreEntry
			created any
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.Player, &e.Score, &e.Level, &created); err != nil {
			return nil, errors.Wrap(err, "storage: scan score")
		}
		e.CreatedAt = parseTime(created)
		out = append(out, e)
	}
	return out, errors.Wrap(rows.Err(), "storage: read scores")
}

// parseTime accepts what the driver hands back for a DATETIME column.
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

// HighScore returns the best score of a mode, or 0 when there is none.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(`SELECT MAX(score) FROM scores WHERE game_id = ?`, gameID).Scan(&best)
	if err != nil {
		return 0, errors.Wrap(err, "storage: high score")
	}
	return int(best.Int64), nil
}

// Stats summarizes a mode. An empty mode gives zero Stats.
func (s *Store) Stats(gameID string) (Stats, error) {
	var (
		st   Stats
		best sql.NullInt64
		avg  sql.NullFloat64
	)
	err := s.db.QueryRow(
		`SELECT COUNT(*), MAX(score), AVG(score), COUNT(DISTINCT NULLIF(player, ''))
		   FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&st.Games, &best, &avg, &st.Players)
	if err != nil {
		return Stats{}, errors.Wrap(err, "storage: stats")
	}
	st.Best = int(best.Int64)
	st.Average = avg.Float64
	return st, nil
}

// ClearScores deletes every entry of a mode.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec(`DELETE FROM scores WHERE game_id = ?`, gameID)
	return errors.Wrap(err, "storage: clear scores")
}
