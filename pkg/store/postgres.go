// pkg/store/postgres.go

// Package store is the storage collaborator: a Postgres products table keyed
// uniquely on id, with schema bootstrap and an all-or-nothing batch upsert.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// ErrUnavailable indicates the persistent store cannot be reached.
var ErrUnavailable = errors.New("storage unavailable")

// Options configures the store connection and write behavior.
type Options struct {
	// MultiSelectAsArrays persists the multi-select fields as native text[]
	// columns instead of delimited text.
	MultiSelectAsArrays bool

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// Store wraps the products table connection.
type Store struct {
	db       *sqlx.DB
	logger   *zap.Logger
	asArrays bool
}

// Open connects to Postgres and verifies the connection. A failed ping is
// reported as ErrUnavailable so callers can distinguish it from a rejected
// write.
func Open(ctx context.Context, databaseURL string, opts Options, logger *zap.Logger) (*Store, error) {
	if databaseURL == "" {
		return nil, errors.New("database URL cannot be empty")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	db, err := sqlx.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize PostgreSQL connection: %w", err)
	}

	applyConnectionSettings(db.DB, opts)

	if err := pingWithTimeout(ctx, db.DB, 5*time.Second); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	s := &Store{
		db:       db,
		logger:   logger.Named("store"),
		asArrays: opts.MultiSelectAsArrays,
	}
	s.logger.Info("Connected to PostgreSQL",
		zap.Bool("multiSelectAsArrays", opts.MultiSelectAsArrays))

	return s, nil
}

// NewWithDB wraps an existing connection; used by tests.
func NewWithDB(db *sqlx.DB, asArrays bool, logger *zap.Logger) *Store {
	return &Store{db: db, logger: logger.Named("store"), asArrays: asArrays}
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.logger.Info("Closing PostgreSQL connection")
	return s.db.Close()
}

// applyConnectionSettings configures the connection pool.
func applyConnectionSettings(db *sql.DB, opts Options) {
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}
	if opts.ConnMaxIdleTime > 0 {
		db.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}
}

// pingWithTimeout attempts to ping the database within a bounded window.
func pingWithTimeout(ctx context.Context, db *sql.DB, timeout time.Duration) error {
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("ping failed after %v: %w", timeout, err)
	}
	return nil
}
