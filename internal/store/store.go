// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists saved citations in a SQLite database. The engine
// proper never touches the store; only the CLI layer reads and writes it.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/citeworks/citation-engine/pkg/types"
)

// Store manages the citations SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and ensures the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
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
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS citations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		style TEXT NOT NULL,
		text TEXT NOT NULL,
		meta TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Save inserts a new citation and fills in its ID and timestamps.
func (s *Store) Save(ctx context.Context, c *types.Citation) error {
	metaJSON, err := json.Marshal(c.Meta)
	if err != nil {
		return fmt.Errorf("marshaling metadata: %w", err)
	}

	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO citations (style, text, meta, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		string(c.Style), c.Text, string(metaJSON), stamp(now), stamp(now))
	if err != nil {
		return fmt.Errorf("inserting citation: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading inserted id: %w", err)
	}
	c.ID = id
	c.CreatedAt = now
	c.UpdatedAt = now
	return nil
}

// Update rewrites an existing citation's style, text, and metadata and bumps
// its updated_at. The created_at is preserved.
func (s *Store) Update(ctx context.Context, c *types.Citation) error {
	metaJSON, err := json.Marshal(c.Meta)
	if err != nil {
		return fmt.Errorf("marshaling metadata: %w", err)
	}

	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`UPDATE citations SET style = ?, text = ?, meta = ?, updated_at = ? WHERE id = ?`,
		string(c.Style), c.Text, string(metaJSON), stamp(now), c.ID)
	if err != nil {
		return fmt.Errorf("updating citation %d: %w", c.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no citation with id %d", c.ID)
	}
	c.UpdatedAt = now
	return nil
}

// Get returns the citation with the given id.
func (s *Store) Get(ctx context.Context, id int64) (*types.Citation, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, style, text, meta, created_at, updated_at FROM citations WHERE id = ?`, id)
	c, err := scanCitation(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no citation with id %d", id)
	}
	if err != nil {
		return nil, fmt.Errorf("reading citation %d: %w", id, err)
	}
	return c, nil
}

// List returns all saved citations, newest first.
func (s *Store) List(ctx context.Context) ([]types.Citation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, style, text, meta, created_at, updated_at FROM citations ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing citations: %w", err)
	}
	defer rows.Close()

	var out []types.Citation
	for rows.Next() {
		c, err := scanCitation(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning citation: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// Delete removes the citation with the given id.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM citations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting citation %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no citation with id %d", id)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCitation(row scanner) (*types.Citation, error) {
	var c types.Citation
	var style, metaJSON, createdAt, updatedAt string
	if err := row.Scan(&c.ID, &style, &c.Text, &metaJSON, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	c.Style = types.Style(style)
	if err := json.Unmarshal([]byte(metaJSON), &c.Meta); err != nil {
		return nil, fmt.Errorf("parsing stored metadata: %w", err)
	}
	var err error
	if c.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if c.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &c, nil
}

func stamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}
