// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package snapshot persists a cleaned dataset in SQLite. Every write
// replaces the papers table and appends a row to the runs table.
package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/paper-trends/pkg/types"
)

// ErrNoSnapshot is returned by Load and LastRun when nothing has been
// written yet.
var ErrNoSnapshot = errors.New("no snapshot written")

// Run describes one snapshot write.
type Run struct {
	ID        string    `json:"run_id" yaml:"run_id"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	Source    string    `json:"source" yaml:"source"`
	Rows      int       `json:"rows" yaml:"rows"`
}

// Store manages the snapshot SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens or creates the database at cfg.Path and creates the
// schema if it does not exist.
func NewStore(cfg types.SnapshotConfig) (*Store, error) {
	cfg = cfg.WithDefaults()
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating snapshot directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: cfg.Path}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS papers (
			row_index INTEGER PRIMARY KEY,
			fields TEXT NOT NULL,
			title TEXT,
			journal TEXT,
			source_x TEXT,
			publish_time TEXT,
			year INTEGER,
			month TEXT,
			title_word_count INTEGER,
			abstract_word_count INTEGER,
			is_preprint INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_year ON papers(year)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_journal ON papers(journal)`,
		`CREATE TABLE IF NOT EXISTS runs (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			created_at TEXT NOT NULL,
			source TEXT,
			rows INTEGER NOT NULL,
			columns TEXT NOT NULL,
			recognized TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Write replaces the stored dataset with ds and records run. run.Rows is
// set from ds. The write is a single transaction.
func (s *Store) Write(ctx context.Context, ds types.CleanedDataset, run Run) error {
	columnsJSON, err := json.Marshal(ds.Columns)
	if err != nil {
		return fmt.Errorf("encoding columns: %w", err)
	}
	recognizedJSON, err := json.Marshal(ds.Schema.Columns())
	if err != nil {
		return fmt.Errorf("encoding schema: %w", err)
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM papers`); err != nil {
		return fmt.Errorf("clearing papers: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO papers (row_index, fields, title, journal, source_x, publish_time, year, month,
			title_word_count, abstract_word_count, is_preprint)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range ds.Records {
		fieldsJSON, err := json.Marshal(rec.Fields)
		if err != nil {
			return fmt.Errorf("encoding row %d: %w", i, err)
		}
		_, err = stmt.ExecContext(ctx,
			i, string(fieldsJSON), rec.Title(), nullable(rec.Journal()), nullable(rec.Source()),
			formatTime(rec.PublishTime), nullableInt(rec.Year), formatTime(rec.Month),
			rec.TitleWordCount, rec.AbstractWordCount, rec.IsPreprint,
		)
		if err != nil {
			return fmt.Errorf("inserting row %d: %w", i, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, created_at, source, rows, columns, recognized) VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.CreatedAt.UTC().Format(time.RFC3339Nano), run.Source, len(ds.Records),
		string(columnsJSON), string(recognizedJSON),
	)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}

	return tx.Commit()
}

// LastRun returns the most recent run.
func (s *Store) LastRun(ctx context.Context) (Run, error) {
	run, _, _, err := s.lastRun(ctx)
	return run, err
}

func (s *Store) lastRun(ctx context.Context) (Run, []string, types.Schema, error) {
	var (
		run                         Run
		created, source             string
		columnsJSON, recognizedJSON string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT run_id, created_at, COALESCE(source, ''), rows, columns, recognized
		 FROM runs ORDER BY seq DESC LIMIT 1`,
	).Scan(&run.ID, &created, &source, &run.Rows, &columnsJSON, &recognizedJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, nil, types.Schema{}, ErrNoSnapshot
	}
	if err != nil {
		return Run{}, nil, types.Schema{}, fmt.Errorf("querying last run: %w", err)
	}
	run.Source = source
	if run.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return Run{}, nil, types.Schema{}, fmt.Errorf("parsing run time: %w", err)
	}

	var columns []string
	if err := json.Unmarshal([]byte(columnsJSON), &columns); err != nil {
		return Run{}, nil, types.Schema{}, fmt.Errorf("decoding columns: %w", err)
	}
	var recognized []types.Column
	if err := json.Unmarshal([]byte(recognizedJSON), &recognized); err != nil {
		return Run{}, nil, types.Schema{}, fmt.Errorf("decoding schema: %w", err)
	}
	return run, columns, types.NewSchema(recognized...), nil
}

// Load reads the stored dataset back in row order.
func (s *Store) Load(ctx context.Context) (types.CleanedDataset, error) {
	_, columns, schema, err := s.lastRun(ctx)
	if err != nil {
		return types.CleanedDataset{}, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT fields, COALESCE(publish_time, ''), COALESCE(year, 0), COALESCE(month, ''),
			title_word_count, abstract_word_count, is_preprint
		 FROM papers ORDER BY row_index`)
	if err != nil {
		return types.CleanedDataset{}, fmt.Errorf("querying papers: %w", err)
	}
	defer rows.Close()

	ds := types.CleanedDataset{Schema: schema, Columns: columns}
	for rows.Next() {
		var (
			rec                        types.CleanedRecord
			fieldsJSON, publish, month string
		)
		if err := rows.Scan(&fieldsJSON, &publish, &rec.Year, &month,
			&rec.TitleWordCount, &rec.AbstractWordCount, &rec.IsPreprint); err != nil {
			return types.CleanedDataset{}, fmt.Errorf("scanning paper: %w", err)
		}
		if err := json.Unmarshal([]byte(fieldsJSON), &rec.Fields); err != nil {
			return types.CleanedDataset{}, fmt.Errorf("decoding fields: %w", err)
		}
		if rec.PublishTime, err = parseTime(publish); err != nil {
			return types.CleanedDataset{}, fmt.Errorf("parsing publish_time: %w", err)
		}
		if rec.Month, err = parseTime(month); err != nil {
			return types.CleanedDataset{}, fmt.Errorf("parsing month: %w", err)
		}
		ds.Records = append(ds.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return types.CleanedDataset{}, fmt.Errorf("iterating papers: %w", err)
	}
	return ds, nil
}

func formatTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableInt(n int) any {
	if n == 0 {
		return nil
	}
	return n
}
