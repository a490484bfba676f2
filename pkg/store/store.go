// Package store persists parsed sheets in SQLite.
// Each saved sheet is one row holding its JSON encoding, keyed by a
// generated id, so a saved sheet loads back with rules, declarations and
// duplicates in their original order.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/chazu/csslite/pkg/css"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// ErrSheetNotFound indicates no sheet is stored under the requested id.
var ErrSheetNotFound = errors.New("sheet not found")

const schema = `CREATE TABLE IF NOT EXISTS sheets (
	id TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	created_at TEXT NOT NULL,
	rule_count INTEGER NOT NULL,
	data JSON NOT NULL
)`

// Entry describes a stored sheet without loading it.
type Entry struct {
	ID        string
	Source    string
	CreatedAt string // RFC3339 timestamp
	Rules     int
}

// Config holds store configuration options.
type Config struct {
	DBPath string // Path to the database (defaults to $CSSLITE_DB, then <user cache dir>/csslite/csslite.db)
}

// Store manages saved sheets.
type Store struct {
	db     *sql.DB
	dbPath string
	cache  map[string]*css.Sheet
	mu     sync.RWMutex
}

// Open opens (creating if needed) the database described by cfg.
// If cfg is nil, defaults are used.
func Open(cfg *Config) (*Store, error) {
	s := &Store{cache: make(map[string]*css.Sheet)}

	// Determine database path
	if cfg != nil && cfg.DBPath != "" {
		s.dbPath = cfg.DBPath
	} else if dbPath := os.Getenv("CSSLITE_DB"); dbPath != "" {
		s.dbPath = dbPath
	} else {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("getting cache dir: %w", err)
		}
		dir := filepath.Join(cacheDir, "csslite")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", dir, err)
		}
		s.dbPath = filepath.Join(dir, "csslite.db")
	}

	// Open database
	db, err := sql.Open("sqlite3", s.dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	s.db = db

	// Set busy timeout for concurrent writers
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}
	// Create schema
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = nil

	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save stores sheet under a new id and returns the id. source names where
// the sheet came from, typically its file path. The store keeps its own
// copy, so later changes to sheet do not affect what Load returns.
func (s *Store) Save(source string, sheet *css.Sheet) (string, error) {
	if sheet == nil {
		sheet = &css.Sheet{}
	}
	data, err := json.Marshal(sheet)
	if err != nil {
		return "", fmt.Errorf("marshaling sheet: %w", err)
	}

	// Insert with a fresh id
	id := "sheet_" + uuid.New().String()
	_, err = s.db.Exec(
		"INSERT INTO sheets (id, source, created_at, rule_count, data) VALUES (?, ?, ?, ?, json(?))",
		id, source, time.Now().UTC().Format(time.RFC3339), sheet.Len(), string(data),
	)
	if err != nil {
		return "", fmt.Errorf("saving sheet: %w", err)
	}

	s.mu.Lock()
	s.cache[id] = sheet.Clone()
	s.mu.Unlock()

	return id, nil
}

// Load returns the sheet stored under id. Each call returns a fresh copy
// the caller may modify.
func (s *Store) Load(id string) (*css.Sheet, error) {
	s.mu.RLock()
	if sheet, ok := s.cache[id]; ok {
		s.mu.RUnlock()
		return sheet.Clone(), nil
	}
	s.mu.RUnlock()

	var data string
	err := s.db.QueryRow("SELECT data FROM sheets WHERE id = ?", id).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSheetNotFound
		}
		return nil, fmt.Errorf("querying sheet: %w", err)
	}

	var sheet css.Sheet
	if err := json.Unmarshal([]byte(data), &sheet); err != nil {
		return nil, fmt.Errorf("unmarshaling sheet %s: %w", id, err)
	}

	// Cache
	s.mu.Lock()
	s.cache[id] = &sheet
	s.mu.Unlock()

	return sheet.Clone(), nil
}

// List returns every stored sheet, oldest first.
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query("SELECT id, source, created_at, rule_count FROM sheets ORDER BY created_at, rowid")
	if err != nil {
		return nil, fmt.Errorf("listing sheets: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Source, &e.CreatedAt, &e.Rules); err != nil {
			return nil, fmt.Errorf("scanning sheet row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes the sheet stored under id.
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec("DELETE FROM sheets WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting sheet: %w", err)
	}

	s.mu.Lock()
	delete(s.cache, id)
	s.mu.Unlock()

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrSheetNotFound
	}
	return nil
}
