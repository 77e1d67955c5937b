/*
Package sqlite provides the SQLite-backed saved-run archive.

PURPOSE:
  Persists completed simulation runs (the parameter snapshot that
  produced them and their serialized result) so policy experiments can
  be named, listed, and compared later. The engines themselves stay
  pure; only their outputs ever touch storage.

KEY TABLE:
  runs:
    id          TEXT PRIMARY KEY  (uuid)
    name        TEXT              caller-supplied label
    engine      TEXT              impact | timeline | agents
    params_json TEXT              parameter snapshot as submitted
    result_json TEXT              serialized engine output
    created_at  TIMESTAMP

CONCURRENCY:
  Uses sync.RWMutex for thread-safety on top of database/sql. SQLite is
  opened with WAL (Write-Ahead Logging): multiple readers don't block,
  one writer at a time, better crash recovery.

MIGRATION:
  Schema is auto-migrated on New(). Use ":memory:" for tests.

USAGE:
  archive, err := sqlite.New("./data/policylab.db")
  if err != nil {
      log.Fatal(err)
  }
  defer archive.Close()

SEE ALSO:
  - api/handlers.go: The /api/runs endpoints
  - economy/errors.go: ErrRunNotFound
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/policy-lab/economy"
)

// Engine names accepted by the archive.
const (
	EngineImpact   = "impact"
	EngineTimeline = "timeline"
	EngineAgents   = "agents"
)

// Run is one archived simulation run.
type Run struct {
	ID         string
	Name       string
	Engine     string
	ParamsJSON string
	ResultJSON string
	CreatedAt  time.Time
}

// Store implements the saved-run archive over SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New opens (or creates) the database at path and migrates the schema.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			engine      TEXT NOT NULL,
			params_json TEXT NOT NULL,
			result_json TEXT NOT NULL,
			created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_engine_created ON runs(engine, created_at);
	`)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun archives a run, assigning it a fresh uuid, and returns the
// stored record.
func (s *Store) SaveRun(ctx context.Context, name, engine, paramsJSON, resultJSON string) (*Run, error) {
	switch engine {
	case EngineImpact, EngineTimeline, EngineAgents:
	default:
		return nil, &economy.ConfigError{Field: "engine", Reason: "must be impact, timeline, or agents"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	run := &Run{
		ID:         uuid.NewString(),
		Name:       name,
		Engine:     engine,
		ParamsJSON: paramsJSON,
		ResultJSON: resultJSON,
		CreatedAt:  time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, name, engine, params_json, result_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Name, run.Engine, run.ParamsJSON, run.ResultJSON, run.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("save run: %w", err)
	}
	return run, nil
}

// GetRun returns one archived run, or economy.ErrRunNotFound.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var run Run
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, engine, params_json, result_json, created_at FROM runs WHERE id = ?`, id).
		Scan(&run.ID, &run.Name, &run.Engine, &run.ParamsJSON, &run.ResultJSON, &run.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, economy.ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return &run, nil
}

// ListRuns returns archived runs, newest first. An empty engine filter
// returns every run.
func (s *Store) ListRuns(ctx context.Context, engine string) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, name, engine, params_json, result_json, created_at FROM runs`
	args := []any{}
	if engine != "" {
		query += ` WHERE engine = ?`
		args = append(args, engine)
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Name, &run.Engine, &run.ParamsJSON, &run.ResultJSON, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// DeleteRun removes one archived run. Deleting a missing run returns
// economy.ErrRunNotFound.
func (s *Store) DeleteRun(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return economy.ErrRunNotFound
	}
	return nil
}

// Reset clears the archive. Dev/demo use only.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM runs`)
	return err
}
