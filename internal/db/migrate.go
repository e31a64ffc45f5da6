package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the schema if it does not exist. The UNIQUE constraint on
// username backs the duplicate-registration check: registration is a single
// INSERT, not a read-then-write, so concurrent identical registrations cannot
// both succeed.
func Migrate(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'user',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			user_id BIGINT NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		ctxExec, cancel := context.WithTimeout(ctx, timeout)
		_, err := pool.Exec(ctxExec, stmt)
		cancel()
		if err != nil {
			return fmt.Errorf("migrate schema: %w", err)
		}
	}
	return nil
}
