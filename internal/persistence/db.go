// Package persistence stores the display-mode preference and a journal of
// simulated matches in SQLite.
package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/cognomen/internal/naming"
	"github.com/talgya/cognomen/internal/sim"
)

// displayModeKey is the settings key of the display-mode preference.
const displayModeKey = "display_mode"

// DB wraps a SQLite connection.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS matches (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		polities INTEGER NOT NULL,
		display_mode TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS names (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		match_id TEXT NOT NULL,
		turn INTEGER NOT NULL,
		slot INTEGER NOT NULL,
		form TEXT NOT NULL,
		full_name TEXT NOT NULL,
		long_name TEXT NOT NULL,
		avatar_name TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		match_id TEXT NOT NULL,
		turn INTEGER NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_names_match ON names(match_id, slot);
	CREATE INDEX IF NOT EXISTS idx_events_match ON events(match_id, turn);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveSetting stores a key-value pair.
func (db *DB) SaveSetting(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetSetting retrieves a setting. Missing keys return sql.ErrNoRows.
func (db *DB) GetSetting(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM settings WHERE key = ?", key)
	return value, err
}

// SetDisplayMode persists the display-mode preference.
func (db *DB) SetDisplayMode(mode naming.DisplayMode) error {
	if _, err := naming.ParseDisplayMode(string(mode)); err != nil {
		return err
	}
	return db.SaveSetting(displayModeKey, string(mode))
}

// DisplayMode returns the saved preference, or the default when none is
// saved or the saved value is no longer valid.
func (db *DB) DisplayMode() naming.DisplayMode {
	value, err := db.GetSetting(displayModeKey)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Warn("read display mode failed", "error", err)
		}
		return naming.DefaultDisplayMode
	}
	mode, err := naming.ParseDisplayMode(value)
	if err != nil {
		slog.Warn("saved display mode ignored", "value", value, "error", err)
		return naming.DefaultDisplayMode
	}
	return mode
}

// Match is a journaled simulated match.
type Match struct {
	ID          string `db:"id"`
	Seed        int64  `db:"seed"`
	Polities    int    `db:"polities"`
	DisplayMode string `db:"display_mode"`
	CreatedAt   string `db:"created_at"`
}

// createdAtLayout is fixed width so created_at sorts correctly as text.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// CreateMatch records a new match and returns its ID.
func (db *DB) CreateMatch(seed int64, polities int, mode naming.DisplayMode) (string, error) {
	return db.createMatchAt(time.Now(), seed, polities, mode)
}

func (db *DB) createMatchAt(at time.Time, seed int64, polities int, mode naming.DisplayMode) (string, error) {
	id := uuid.NewString()
	_, err := db.conn.Exec(
		"INSERT INTO matches (id, seed, polities, display_mode, created_at) VALUES (?, ?, ?, ?, ?)",
		id, seed, polities, string(mode), at.UTC().Format(createdAtLayout),
	)
	if err != nil {
		return "", fmt.Errorf("insert match: %w", err)
	}
	return id, nil
}

// LatestMatch returns the most recently created match.
func (db *DB) LatestMatch() (Match, error) {
	var m Match
	err := db.conn.Get(&m, "SELECT id, seed, polities, display_mode, created_at FROM matches ORDER BY created_at DESC, rowid DESC LIMIT 1")
	return m, err
}

// GetMatch returns one match by ID.
func (db *DB) GetMatch(id string) (Match, error) {
	var m Match
	err := db.conn.Get(&m, "SELECT id, seed, polities, display_mode, created_at FROM matches WHERE id = ?", id)
	return m, err
}

// NameRecord is one recomputation of a polity's names.
type NameRecord struct {
	MatchID    string `db:"match_id"`
	Turn       int    `db:"turn"`
	Slot       int    `db:"slot"`
	Form       string `db:"form"`
	FullName   string `db:"full_name"`
	LongName   string `db:"long_name"`
	AvatarName string `db:"avatar_name"`
}

// SaveNames appends name records in one transaction.
func (db *DB) SaveNames(records []NameRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareNamed(`INSERT INTO names
		(match_id, turn, slot, form, full_name, long_name, avatar_name)
		VALUES (:match_id, :turn, :slot, :form, :full_name, :long_name, :avatar_name)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(r); err != nil {
			return fmt.Errorf("insert names for slot %d: %w", r.Slot, err)
		}
	}

	return tx.Commit()
}

// Names returns the records of a match in recording order, optionally
// limited to one slot (slot < 0 means all).
func (db *DB) Names(matchID string, slot int) ([]NameRecord, error) {
	var out []NameRecord
	query := `SELECT match_id, turn, slot, form, full_name, long_name, avatar_name
		FROM names WHERE match_id = ?`
	args := []any{matchID}
	if slot >= 0 {
		query += " AND slot = ?"
		args = append(args, slot)
	}
	query += " ORDER BY id"
	err := db.conn.Select(&out, query, args...)
	return out, err
}

// FinalNames returns the last record of every slot in a match.
func (db *DB) FinalNames(matchID string) ([]NameRecord, error) {
	var out []NameRecord
	err := db.conn.Select(&out, `SELECT n.match_id, n.turn, n.slot, n.form, n.full_name, n.long_name, n.avatar_name
		FROM names n
		JOIN (SELECT slot, MAX(id) AS id FROM names WHERE match_id = ? GROUP BY slot) last ON last.id = n.id
		ORDER BY n.slot`, matchID)
	return out, err
}

// SaveEvents appends match events.
func (db *DB) SaveEvents(matchID string, events []sim.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range events {
		_, err := tx.Exec(
			"INSERT INTO events (match_id, turn, description, category) VALUES (?, ?, ?, ?)",
			matchID, e.Turn, e.Description, e.Category,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// RecentEvents returns the most recent N events of a match, newest first.
func (db *DB) RecentEvents(matchID string, limit int) ([]sim.Event, error) {
	var events []sim.Event
	err := db.conn.Select(&events,
		"SELECT turn, description, category FROM events WHERE match_id = ? ORDER BY id DESC LIMIT ?",
		matchID, limit,
	)
	return events, err
}
