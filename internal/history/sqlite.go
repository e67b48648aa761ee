package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const createRunsTableSQL = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	hand1 TEXT NOT NULL,
	hand2 TEXT NOT NULL,
	requested INTEGER NOT NULL,
	trials INTEGER NOT NULL,
	seed INTEGER NOT NULL,
	workers INTEGER NOT NULL,
	hand1_wins INTEGER NOT NULL,
	hand2_wins INTEGER NOT NULL,
	ties INTEGER NOT NULL,
	elapsed_ns INTEGER NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC)`

const selectRunSQL = `SELECT id, hand1, hand2, requested, trials, seed, workers,
	hand1_wins, hand2_wins, ties, elapsed_ns, created_at FROM runs`

// SQLiteRepository implements Repository using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens or creates the database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if _, err := db.Exec(createRunsTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating runs table: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, rec *Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO runs (id, hand1, hand2, requested, trials, seed, workers,
			hand1_wins, hand2_wins, ties, elapsed_ns, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			hand1 = excluded.hand1,
			hand2 = excluded.hand2,
			requested = excluded.requested,
			trials = excluded.trials,
			seed = excluded.seed,
			workers = excluded.workers,
			hand1_wins = excluded.hand1_wins,
			hand2_wins = excluded.hand2_wins,
			ties = excluded.ties,
			elapsed_ns = excluded.elapsed_ns,
			created_at = excluded.created_at
	`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID.String(), rec.Hand1, rec.Hand2, rec.Requested, rec.Trials, rec.Seed, rec.Workers,
		rec.Tally.Hand1Wins, rec.Tally.Hand2Wins, rec.Tally.Ties,
		int64(rec.Elapsed), rec.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("error saving run %s: %w", rec.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	row := r.db.QueryRowContext(ctx, selectRunSQL+` WHERE id = ?`, id.String())
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRunNotFound
		}
		return nil, fmt.Errorf("error getting run %s: %w", id, err)
	}
	return rec, nil
}

func (r *SQLiteRepository) List(ctx context.Context, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, selectRunSQL+` ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing runs: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning run: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}
	return records, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*Record, error) {
	var (
		rec       Record
		id        string
		elapsed   int64
		createdAt int64
	)
	err := s.Scan(&id, &rec.Hand1, &rec.Hand2, &rec.Requested, &rec.Trials, &rec.Seed, &rec.Workers,
		&rec.Tally.Hand1Wins, &rec.Tally.Hand2Wins, &rec.Tally.Ties, &elapsed, &createdAt)
	if err != nil {
		return nil, err
	}

	rec.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid run id %q: %w", id, err)
	}
	rec.Elapsed = time.Duration(elapsed)
	rec.CreatedAt = time.Unix(0, createdAt).UTC()
	return &rec, nil
}
