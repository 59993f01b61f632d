// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists verified celestial events in an append-only
// SQLite database. Entries are never updated or deleted: a correction
// inserts a new entry carrying a back-reference to the one it
// supersedes, so the full derivation history of every event survives.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mwhitt/sky-engine/pkg/types"
)

const dbFile = "events.db"

// Store manages the event catalog SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the catalog database at dir/events.db,
// creating the schema if it does not exist.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 50
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS entries (
			id TEXT PRIMARY KEY,
			key TEXT NOT NULL,
			label TEXT NOT NULL,
			instant REAL NOT NULL,
			observer TEXT NOT NULL,
			description TEXT,
			criterion TEXT NOT NULL,
			scripture_refs TEXT,
			tags TEXT,
			focus_object TEXT,
			status TEXT NOT NULL,
			verification TEXT NOT NULL,
			positions TEXT,
			supersedes TEXT REFERENCES entries(id),
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_key ON entries(key)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_instant ON entries(instant)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_status ON entries(status)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Add appends an entry to the catalog. The entry's Key is derived from
// its label and instant; an entry with that key must not already exist,
// or Add fails with ErrDuplicateKey. The stored entry, with its
// assigned ID, key, and creation time, is returned.
func (s *Store) Add(ctx context.Context, entry types.CatalogEntry) (types.CatalogEntry, error) {
	return s.insert(ctx, entry, "")
}

// Supersede appends a corrected entry for an existing key. The new
// entry records the ID of the current latest entry in Supersedes; the
// old entry stays in the database untouched. Fails if the key has no
// existing entry.
func (s *Store) Supersede(ctx context.Context, entry types.CatalogEntry) (types.CatalogEntry, error) {
	key := types.EntryKey(entry.Label, entry.Instant)
	prev, err := s.Get(ctx, key)
	if err != nil {
		return types.CatalogEntry{}, fmt.Errorf("looking up entry to supersede: %w", err)
	}
	return s.insert(ctx, entry, prev.ID)
}

func (s *Store) insert(ctx context.Context, entry types.CatalogEntry, supersedes string) (types.CatalogEntry, error) {
	entry.ID = uuid.New().String()
	entry.Key = types.EntryKey(entry.Label, entry.Instant)
	entry.Supersedes = supersedes
	entry.CreatedAt = time.Now().UTC()

	if supersedes == "" {
		var n int
		err := s.db.QueryRowContext(ctx,
			`SELECT count(*) FROM entries WHERE key = ?`, entry.Key,
		).Scan(&n)
		if err != nil {
			return types.CatalogEntry{}, fmt.Errorf("checking key %s: %w", entry.Key, err)
		}
		if n > 0 {
			return types.CatalogEntry{}, fmt.Errorf("entry %s: %w", entry.Key, types.ErrDuplicateKey)
		}
	}

	observer, err := json.Marshal(entry.Observer)
	if err != nil {
		return types.CatalogEntry{}, fmt.Errorf("encoding observer: %w", err)
	}
	criterion, err := json.Marshal(entry.Criterion)
	if err != nil {
		return types.CatalogEntry{}, fmt.Errorf("encoding criterion: %w", err)
	}
	verification, err := json.Marshal(entry.Verification)
	if err != nil {
		return types.CatalogEntry{}, fmt.Errorf("encoding verification: %w", err)
	}
	refs, err := json.Marshal(entry.ScriptureRefs)
	if err != nil {
		return types.CatalogEntry{}, fmt.Errorf("encoding scripture refs: %w", err)
	}
	tags, err := json.Marshal(entry.Tags)
	if err != nil {
		return types.CatalogEntry{}, fmt.Errorf("encoding tags: %w", err)
	}
	positions, err := json.Marshal(entry.Positions)
	if err != nil {
		return types.CatalogEntry{}, fmt.Errorf("encoding positions: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return types.CatalogEntry{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO entries
			(id, key, label, instant, observer, description, criterion,
			 scripture_refs, tags, focus_object, status, verification,
			 positions, supersedes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Key, entry.Label, float64(entry.Instant),
		string(observer), entry.Description, string(criterion),
		string(refs), string(tags), entry.FocusObject,
		string(entry.Verification.Status), string(verification),
		string(positions), nullable(supersedes),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return types.CatalogEntry{}, fmt.Errorf("inserting entry %s: %w", entry.Key, err)
	}

	if err := tx.Commit(); err != nil {
		return types.CatalogEntry{}, fmt.Errorf("committing entry %s: %w", entry.Key, err)
	}
	return entry, nil
}

// Get returns the latest entry for a key: the one no other entry
// supersedes. Returns sql.ErrNoRows wrapped when the key is unknown.
func (s *Store) Get(ctx context.Context, key string) (types.CatalogEntry, error) {
	row := s.db.QueryRowContext(ctx,
		selectEntry+` WHERE key = ?
		 AND NOT EXISTS (SELECT 1 FROM entries e2 WHERE e2.supersedes = entries.id)`, key)
	entry, err := scanEntry(row)
	if err != nil {
		return types.CatalogEntry{}, fmt.Errorf("entry %s: %w", key, err)
	}
	return entry, nil
}

// History returns every entry recorded under a key, newest first, so
// the supersede chain and its provenance can be inspected.
func (s *Store) History(ctx context.Context, key string) ([]types.CatalogEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		selectEntry+` WHERE key = ? ORDER BY created_at DESC`, key)
	if err != nil {
		return nil, fmt.Errorf("querying history for %s: %w", key, err)
	}
	defer rows.Close()
	return collectEntries(rows)
}

// ListByDateRange returns the latest entries whose instants fall in
// [start, end], in ascending instant order.
func (s *Store) ListByDateRange(ctx context.Context, start, end types.JulianDay) ([]types.CatalogEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		selectEntry+` WHERE instant >= ? AND instant <= ?
		 AND NOT EXISTS (SELECT 1 FROM entries e2 WHERE e2.supersedes = entries.id)
		 ORDER BY instant ASC LIMIT ?`,
		float64(start), float64(end), s.maxResults)
	if err != nil {
		return nil, fmt.Errorf("querying date range: %w", err)
	}
	defer rows.Close()
	return collectEntries(rows)
}

// ListByStatus returns the latest entries with a given verification
// status, in ascending instant order.
func (s *Store) ListByStatus(ctx context.Context, status types.VerificationStatus) ([]types.CatalogEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		selectEntry+` WHERE status = ?
		 AND NOT EXISTS (SELECT 1 FROM entries e2 WHERE e2.supersedes = entries.id)
		 ORDER BY instant ASC LIMIT ?`,
		string(status), s.maxResults)
	if err != nil {
		return nil, fmt.Errorf("querying status %s: %w", status, err)
	}
	defer rows.Close()
	return collectEntries(rows)
}

const selectEntry = `SELECT id, key, label, instant, observer, description,
	criterion, scripture_refs, tags, focus_object, verification, positions,
	supersedes, created_at FROM entries`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (types.CatalogEntry, error) {
	var (
		entry        types.CatalogEntry
		instant      float64
		observer     string
		criterion    string
		refs         sql.NullString
		tags         sql.NullString
		verification string
		positions    sql.NullString
		supersedes   sql.NullString
		createdAt    string
	)
	err := row.Scan(&entry.ID, &entry.Key, &entry.Label, &instant,
		&observer, &entry.Description, &criterion, &refs, &tags,
		&entry.FocusObject, &verification, &positions, &supersedes, &createdAt)
	if err != nil {
		return types.CatalogEntry{}, err
	}

	entry.Instant = types.JulianDay(instant)
	if err := json.Unmarshal([]byte(observer), &entry.Observer); err != nil {
		return types.CatalogEntry{}, fmt.Errorf("decoding observer: %w", err)
	}
	if err := json.Unmarshal([]byte(criterion), &entry.Criterion); err != nil {
		return types.CatalogEntry{}, fmt.Errorf("decoding criterion: %w", err)
	}
	if err := json.Unmarshal([]byte(verification), &entry.Verification); err != nil {
		return types.CatalogEntry{}, fmt.Errorf("decoding verification: %w", err)
	}
	if refs.Valid && refs.String != "" {
		if err := json.Unmarshal([]byte(refs.String), &entry.ScriptureRefs); err != nil {
			return types.CatalogEntry{}, fmt.Errorf("decoding scripture refs: %w", err)
		}
	}
	if tags.Valid && tags.String != "" {
		if err := json.Unmarshal([]byte(tags.String), &entry.Tags); err != nil {
			return types.CatalogEntry{}, fmt.Errorf("decoding tags: %w", err)
		}
	}
	if positions.Valid && positions.String != "" {
		if err := json.Unmarshal([]byte(positions.String), &entry.Positions); err != nil {
			return types.CatalogEntry{}, fmt.Errorf("decoding positions: %w", err)
		}
	}
	if supersedes.Valid {
		entry.Supersedes = supersedes.String
	}
	entry.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return types.CatalogEntry{}, fmt.Errorf("parsing created_at: %w", err)
	}
	return entry, nil
}

func collectEntries(rows *sql.Rows) ([]types.CatalogEntry, error) {
	var entries []types.CatalogEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}
	return entries, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
