// Package database provides the PostgreSQL connection pool.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a pgx connection pool.
type DB struct {
	Pool *pgxpool.Pool
}

// New connects to databaseURL and verifies the connection.
func New(ctx context.Context, databaseURL string) (*DB, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = 30 * time.Minute
	config.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// Health pings the database.
func (db *DB) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return db.Pool.Ping(ctx)
}

// Close releases all pool connections.
func (db *DB) Close() {
	db.Pool.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS employees (
	id         TEXT PRIMARY KEY,
	seq        BIGSERIAL,
	position   TEXT NOT NULL,
	name       TEXT NOT NULL,
	birthdate  TEXT NOT NULL DEFAULT '',
	contact    TEXT NOT NULL,
	department TEXT NOT NULL DEFAULT '',
	status     TEXT NOT NULL,
	note       TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS work_items (
	id            TEXT PRIMARY KEY,
	seq           BIGSERIAL,
	location      TEXT NOT NULL,
	type          TEXT NOT NULL,
	size          TEXT NOT NULL DEFAULT '',
	material_cost BIGINT NOT NULL DEFAULT 0,
	labor_cost    BIGINT NOT NULL DEFAULT 0,
	expense_cost  BIGINT NOT NULL DEFAULT 0,
	status        TEXT NOT NULL
);
`

// Migrate creates the tables if they do not exist.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
