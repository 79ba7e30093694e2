// Package store is the SQLite catalog of extraction runs. Each run keeps
// the domain, a source excerpt, counts, and the full result as JSON, so
// past extractions can be listed and re-rendered without rerunning the
// engine. The engine itself never touches the store.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/Cortezjohannes/scorch-ai-sub008/internal/records"
)

// maxSourceExcerpt bounds how much raw input is kept per run.
const maxSourceExcerpt = 2000

// Run is one catalogued extraction.
type Run struct {
	ID            string         `json:"id"`
	Domain        records.Domain `json:"domain"`
	SourceExcerpt string         `json:"source_excerpt"`
	SourceChars   int            `json:"source_chars"`
	RecordCount   int            `json:"record_count"`
	CreatedAt     time.Time      `json:"created_at"`
	Result        records.Result `json:"result"`
}

// Store is the run catalog.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Open opens (or creates) the catalog at dbPath. Pass ":memory:" for an
// in-memory database in tests.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("empty database path")
	}
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db, dbPath: dbPath}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS runs (
	id             TEXT PRIMARY KEY,
	domain         TEXT NOT NULL,
	source_excerpt TEXT NOT NULL,
	source_chars   INTEGER NOT NULL,
	record_count   INTEGER NOT NULL,
	result_json    TEXT NOT NULL,
	created_at     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_runs_domain ON runs(domain);
`
	if _, err := s.db.Exec(ddl); err != nil {
		return fmt.Errorf("creating runs table: %w", err)
	}
	return nil
}

// SaveRun catalogs one extraction and returns the stored run.
func (s *Store) SaveRun(ctx context.Context, raw string, res records.Result) (*Run, error) {
	payload, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}

	run := &Run{
		ID:            uuid.NewString(),
		Domain:        res.Domain,
		SourceExcerpt: excerpt(raw),
		SourceChars:   len(raw),
		RecordCount:   res.Count(),
		CreatedAt:     time.Now().UTC(),
		Result:        res,
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO runs (id, domain, source_excerpt, source_chars, record_count, result_json, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, string(run.Domain), run.SourceExcerpt, run.SourceChars,
		run.RecordCount, string(payload), run.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("inserting run: %w", err)
	}
	return run, nil
}

// GetRun loads one run by ID, including its decoded result.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, domain, source_excerpt, source_chars, record_count, result_json, created_at
FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("loading run %s: %w", id, err)
	}
	return run, nil
}

// ListRuns returns the most recent runs, newest first. A domain filter
// of "" lists all domains.
func (s *Store) ListRuns(ctx context.Context, domain records.Domain, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
SELECT id, domain, source_excerpt, source_chars, record_count, result_json, created_at
FROM runs`
	args := []any{}
	if domain != "" {
		query += " WHERE domain = ?"
		args = append(args, string(domain))
	}
	query += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// DeleteRun removes a run from the catalog.
func (s *Store) DeleteRun(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting run %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("run %s not found", id)
	}
	return nil
}

// Stats reports per-domain run and record counts.
type Stats struct {
	Runs    int64                    `json:"runs"`
	Records int64                    `json:"records"`
	Domains map[records.Domain]int64 `json:"domains"`
}

func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{Domains: map[records.Domain]int64{}}

	row := s.db.QueryRowContext(ctx, "SELECT COUNT(*), COALESCE(SUM(record_count), 0) FROM runs")
	if err := row.Scan(&st.Runs, &st.Records); err != nil {
		return nil, fmt.Errorf("counting runs: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, "SELECT domain, COUNT(*) FROM runs GROUP BY domain")
	if err != nil {
		return nil, fmt.Errorf("counting domains: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var domain string
		var n int64
		if err := rows.Scan(&domain, &n); err != nil {
			return nil, fmt.Errorf("scanning domain count: %w", err)
		}
		st.Domains[records.Domain(domain)] = n
	}
	return st, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var run Run
	var domain, resultJSON, createdAt string
	if err := row.Scan(&run.ID, &domain, &run.SourceExcerpt, &run.SourceChars,
		&run.RecordCount, &resultJSON, &createdAt); err != nil {
		return nil, err
	}
	run.Domain = records.Domain(domain)

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing timestamp %q: %w", createdAt, err)
	}
	run.CreatedAt = ts

	if err := json.Unmarshal([]byte(resultJSON), &run.Result); err != nil {
		return nil, fmt.Errorf("decoding result: %w", err)
	}
	return &run, nil
}

func excerpt(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) <= maxSourceExcerpt {
		return raw
	}
	// Back off to a rune boundary so the excerpt stays valid UTF-8.
	cut := maxSourceExcerpt
	for cut > 0 && !utf8.RuneStart(raw[cut]) {
		cut--
	}
	return raw[:cut]
}
