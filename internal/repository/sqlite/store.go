package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"records-api/internal/repository"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS user (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	age INTEGER NOT NULL,
	password TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS ix_user_name ON user(name)`,
	`CREATE INDEX IF NOT EXISTS ix_user_age ON user(age)`,
	`CREATE INDEX IF NOT EXISTS ix_user_password ON user(password)`,
	`CREATE TABLE IF NOT EXISTS product (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	price INTEGER NOT NULL,
	obs TEXT NULL
)`,
	`CREATE INDEX IF NOT EXISTS ix_product_name ON product(name)`,
	`CREATE INDEX IF NOT EXISTS ix_product_price ON product(price)`,
	`CREATE INDEX IF NOT EXISTS ix_product_obs ON product(obs)`,
}

// Store hands out per-request sessions over a shared database handle.
type Store struct {
	db *sql.DB
}

// NewStore wraps an opened database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Init creates the user and product tables and their indexes when missing.
// Running it against an initialized database is a no-op.
func (s *Store) Init(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() // safe no-op on commit

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

// Begin reserves a dedicated connection for a new session.
func (s *Store) Begin(ctx context.Context) (repository.Session, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	return newSession(conn), nil
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
