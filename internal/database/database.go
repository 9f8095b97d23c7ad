package database

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is a lazily-initialized database handle. It captures the connection
// string at construction but does not touch the database until the first
// call to Get, so process startup never depends on database availability.
type DB struct {
	databaseURL string

	mu   sync.Mutex
	pool *pgxpool.Pool
}

// New creates a lazy database handle. No connection is established.
func New(databaseURL string) *DB {
	return &DB{databaseURL: databaseURL}
}

// Get returns the connection pool, constructing it and applying migrations
// on first use. The mutex serializes racing first requests so the pool and
// schema are constructed at most once; a successful pool is cached for the
// process lifetime. A failed attempt leaves the handle uninitialized so the
// next caller retries.
func (db *DB) Get(ctx context.Context) (*pgxpool.Pool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.pool != nil {
		return db.pool, nil
	}

	config, err := pgxpool.ParseConfig(db.databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	slog.Info("database initialized")

	db.pool = pool
	return db.pool, nil
}

// Ping reports whether the database is reachable, initializing it if needed.
func (db *DB) Ping(ctx context.Context) error {
	pool, err := db.Get(ctx)
	if err != nil {
		return err
	}
	return pool.Ping(ctx)
}

// Close closes the connection pool if it was ever initialized.
func (db *DB) Close() {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.pool == nil {
		return
	}
	db.pool.Close()
	db.pool = nil
	slog.Info("database connection closed")
}
