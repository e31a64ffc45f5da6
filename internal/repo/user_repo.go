package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrDuplicateUsername is returned when an insert trips the unique
// constraint on users.username.
var ErrDuplicateUsername = errors.New("username already exists")

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

const uniqueViolationCode = "23505"

type UserRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewUserRepo(pool *pgxpool.Pool, timeout time.Duration) *UserRepo {
	return &UserRepo{pool: pool, timeout: timeout}
}

// Create inserts a user in a single statement. Duplicate usernames surface
// as ErrDuplicateUsername via the unique constraint rather than a separate
// existence check, so concurrent registrations cannot race past each other.
func (r *UserRepo) Create(ctx context.Context, username, name, passwordHash, role string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, name, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, username, name, passwordHash, role)

	user := models.User{
		Username:     username,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         role,
	}
	if err := row.Scan(&user.ID, &user.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &user, nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT id, username, name, password_hash, role, created_at
		FROM users
		WHERE username = $1
	`, username)

	var user models.User
	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Name,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &user, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT id, username, name, password_hash, role, created_at
		FROM users
		WHERE id = $1
	`, id)

	var user models.User
	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Name,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &user, nil
}
