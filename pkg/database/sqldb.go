package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// Options bounds the store pool.
type Options struct {
	MaxConns       int
	IdleTimeout    time.Duration
	ConnectTimeout time.Duration
	// Ping verifies the connection before returning.
	Ping bool
}

// NewSQLDB opens a PostgreSQL pool through the pgx stdlib driver and wraps it for sqlx.
func NewSQLDB(ctx context.Context, databaseURL string, opts Options) (*sqlx.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	config, err := pgx.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config from URL: %w", err)
	}
	if opts.ConnectTimeout > 0 {
		config.ConnectTimeout = opts.ConnectTimeout
	}

	db := stdlib.OpenDB(*config)
	if opts.MaxConns > 0 {
		db.SetMaxOpenConns(opts.MaxConns)
		db.SetMaxIdleConns(opts.MaxConns)
	}
	if opts.IdleTimeout > 0 {
		db.SetConnMaxIdleTime(opts.IdleTimeout)
	}

	sqlDB := sqlx.NewDb(db, "pgx")
	if opts.Ping {
		if err := PingSQLDB(ctx, sqlDB, opts.ConnectTimeout); err != nil {
			db.Close()
			return nil, err
		}
	}
	return sqlDB, nil
}

// PingSQLDB checks that the store answers within timeout. A timeout <= 0 leaves ctx's deadline in charge.
// The pool stays usable after a failed ping and reconnects on its next query.
func PingSQLDB(ctx context.Context, db *sqlx.DB, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	log.Println("Successfully connected to PostgreSQL database.")
	return nil
}

// CloseSQLDB closes the pool.
func CloseSQLDB(db *sqlx.DB) {
	if db != nil {
		db.Close()
		log.Println("PostgreSQL connection pool closed.")
	}
}
