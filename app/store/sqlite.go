package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // sqlite driver

	"github.com/umputun/primes/app/prime"
)

// TimeLayout used for created_at column
const TimeLayout = "2006-01-02 15:04:05"

// SQLite implements Engine with a single append-only primes table
type SQLite struct {
	db *sqlx.DB
}

type primeRow struct {
	Number    int64   `db:"number"`
	CreatedAt string  `db:"created_at"`
	Elapsed   float64 `db:"elapsed"`
}

// NewSQLite makes the parent directory for dbPath and opens the database in WAL mode
func NewSQLite(dbPath string) (*SQLite, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to make db location %s: %w", dir, err)
		}
	}

	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to set WAL mode: %w (also failed to close db: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}
	log.Printf("[DEBUG] sqlite database %s opened", dbPath)
	return &SQLite{db: db}, nil
}

// Initialize creates primes table if missing
func (s *SQLite) Initialize(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS primes (
			number INTEGER,
			created_at TEXT,
			elapsed REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_primes_number ON primes(number)`,
	}

	for _, query := range queries {
		if _, err := s.db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

// InsertBatch writes all records in a single transaction. Nothing is written if any insert fails.
func (s *SQLite) InsertBatch(ctx context.Context, recs []prime.Record) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // nolint errcheck, no-op after commit

	stmt, err := tx.PreparexContext(ctx, `INSERT INTO primes (number, created_at, elapsed) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range recs {
		if r.Number > math.MaxInt64 {
			return fmt.Errorf("prime %d exceeds storage range", r.Number)
		}
		if _, err := stmt.ExecContext(ctx, int64(r.Number), r.DiscoveredAt.Format(TimeLayout), r.Elapsed.Seconds()); err != nil {
			return fmt.Errorf("failed to insert prime %d: %w", r.Number, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// MaxNumber returns the largest stored prime, ErrEmpty if nothing stored yet
func (s *SQLite) MaxNumber(ctx context.Context) (uint64, error) {
	var res sql.NullInt64
	err := s.db.GetContext(ctx, &res, "SELECT MAX(number) FROM primes")
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrEmpty
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query max prime: %w", err)
	}
	if !res.Valid || res.Int64 < 0 {
		return 0, ErrEmpty
	}
	return uint64(res.Int64), nil
}

// Count returns number of stored primes
func (s *SQLite) Count(ctx context.Context) (int, error) {
	var res int
	if err := s.db.GetContext(ctx, &res, "SELECT COUNT(*) FROM primes"); err != nil {
		return 0, fmt.Errorf("failed to count primes: %w", err)
	}
	return res, nil
}

// Recent returns up to limit largest stored primes, largest first
func (s *SQLite) Recent(ctx context.Context, limit int) ([]prime.Record, error) {
	rows := []primeRow{}
	err := s.db.SelectContext(ctx, &rows,
		"SELECT number, created_at, elapsed FROM primes ORDER BY number DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent primes: %w", err)
	}

	res := make([]prime.Record, 0, len(rows))
	for _, row := range rows {
		rec := prime.Record{Number: uint64(row.Number), Elapsed: time.Duration(row.Elapsed * float64(time.Second))}
		if ts, err := time.ParseInLocation(TimeLayout, row.CreatedAt, time.Local); err == nil {
			rec.DiscoveredAt = ts
		} else {
			log.Printf("[WARN] invalid created_at %q for prime %d: %v", row.CreatedAt, row.Number, err)
		}
		res = append(res, rec)
	}
	return res, nil
}

// Close closes the database connection
func (s *SQLite) Close() error {
	return s.db.Close()
}
