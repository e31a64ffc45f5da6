package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// EnsureAdminUser inserts a default admin account so the admin-only routes
// are reachable on a fresh database. Existing rows are left untouched.
func EnsureAdminUser(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration) error {
	exists, err := userExists(ctx, pool, timeout, "admin")
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	ctxInsert, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	_, err = pool.Exec(ctxInsert, `
		INSERT INTO users (username, name, password_hash, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (username) DO NOTHING
	`, "admin", "Administrator", string(hash), "admin")
	if err != nil {
		return fmt.Errorf("insert seed admin: %w", err)
	}
	return nil
}

func userExists(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration, username string) (bool, error) {
	ctxCheck, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	row := pool.QueryRow(ctxCheck, "SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)", username)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return exists, nil
}
