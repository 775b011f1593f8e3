// Package store provides SQLite persistence for daily analysis runs:
// the kept signals that feed the dedup lookback window, and the index
// values the next day's delta and trend comparisons need.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	_ "modernc.org/sqlite"

	"github.com/abelbrown/tensionwatch/internal/signal"
	"github.com/abelbrown/tensionwatch/internal/tension"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNotFound is returned when no briefing exists for a day.
var ErrNotFound = errors.New("store: no briefing for day")

const dayLayout = "2006-01-02"

// Store handles SQLite persistence. Concrete type, safe for
// concurrent use via internal mutex.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open opens the database at path, creating tables as needed. Pass
// ":memory:" for an ephemeral database.
func Open(path string) (*Store, error) {
	connStr := path
	if path == ":memory:" {
		// Shared cache so every pooled connection sees the same
		// in-memory database.
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if path != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return s, nil
}

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS signals (
		day TEXT NOT NULL,
		id TEXT NOT NULL,
		category TEXT,
		severity TEXT,
		url TEXT,
		payload TEXT NOT NULL,
		PRIMARY KEY (day, id)
	);

	CREATE INDEX IF NOT EXISTS idx_signals_day ON signals(day);

	CREATE TABLE IF NOT EXISTS briefings (
		day TEXT PRIMARY KEY,
		composite REAL NOT NULL,
		level TEXT NOT NULL,
		scores TEXT NOT NULL,
		briefing TEXT NOT NULL
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// SaveDay replaces the stored signals and briefing for one day.
// Signals are the day's kept, classified set; briefing is the
// caller-serialized output document.
func (s *Store) SaveDay(day string, signals []*signal.Signal, idx tension.Index, briefing []byte) error {
	if _, err := time.Parse(dayLayout, day); err != nil {
		return fmt.Errorf("store: bad day %q: %w", day, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Re-running a day replaces the previous run.
	if _, err := tx.Exec(`DELETE FROM signals WHERE day = ?`, day); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO signals (day, id, category, severity, url, payload)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, sig := range signals {
		payload, err := json.Marshal(sig)
		if err != nil {
			return fmt.Errorf("store: encode signal %s: %w", sig.ID, err)
		}
		if _, err := stmt.Exec(day, sig.ID, string(sig.Category), string(sig.Severity), sig.URL, string(payload)); err != nil {
			return err
		}
	}

	scores, err := json.Marshal(idx.Scores())
	if err != nil {
		return fmt.Errorf("store: encode scores: %w", err)
	}
	if _, err := tx.Exec(`
		INSERT INTO briefings (day, composite, level, scores, briefing)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET
			composite = excluded.composite,
			level = excluded.level,
			scores = excluded.scores,
			briefing = excluded.briefing
	`, day, idx.Composite, string(idx.Level), string(scores), string(briefing)); err != nil {
		return err
	}

	return tx.Commit()
}

// LoadWindow returns the kept signals from the lookbackDays days
// before day, oldest first. The analysis day itself is excluded.
func (s *Store) LoadWindow(day string, lookbackDays int) ([]*signal.Signal, error) {
	t, err := time.Parse(dayLayout, day)
	if err != nil {
		return nil, fmt.Errorf("store: bad day %q: %w", day, err)
	}
	start := t.AddDate(0, 0, -lookbackDays).Format(dayLayout)

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT payload FROM signals
		WHERE day >= ? AND day < ?
		ORDER BY day, id
	`, start, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var window []*signal.Signal
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var sig signal.Signal
		if err := json.Unmarshal([]byte(payload), &sig); err != nil {
			return nil, fmt.Errorf("store: decode signal: %w", err)
		}
		window = append(window, &sig)
	}
	return window, rows.Err()
}

// LoadPrevious returns the most recent index values before day, for
// delta and trend. A first run gets a zero Previous, not an error.
func (s *Store) LoadPrevious(day string) (tension.Previous, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var composite float64
	var scoresJSON string
	err := s.db.QueryRow(`
		SELECT composite, scores FROM briefings
		WHERE day < ?
		ORDER BY day DESC
		LIMIT 1
	`, day).Scan(&composite, &scoresJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return tension.Previous{}, nil
	}
	if err != nil {
		return tension.Previous{}, err
	}

	scores := make(map[signal.Category]int)
	if err := json.Unmarshal([]byte(scoresJSON), &scores); err != nil {
		return tension.Previous{}, fmt.Errorf("store: decode scores: %w", err)
	}
	return tension.Previous{Composite: composite, Scores: scores, Present: true}, nil
}

// LoadBriefing returns the serialized briefing saved for day.
func (s *Store) LoadBriefing(day string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var briefing string
	err := s.db.QueryRow(`SELECT briefing FROM briefings WHERE day = ?`, day).Scan(&briefing)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, day)
	}
	if err != nil {
		return nil, err
	}
	return []byte(briefing), nil
}
