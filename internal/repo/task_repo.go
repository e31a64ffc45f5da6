package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewTaskRepo(pool *pgxpool.Pool, timeout time.Duration) *TaskRepo {
	return &TaskRepo{pool: pool, timeout: timeout}
}

func (r *TaskRepo) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (title, description, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, task.Title, task.Description, task.UserID)

	if err := row.Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt); err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return task, nil
}

// List returns every task regardless of owner.
func (r *TaskRepo) List(ctx context.Context) ([]models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, user_id, created_at, updated_at
		FROM tasks
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.UserID,
			&task.CreatedAt,
			&task.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepo) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT id, title, description, user_id, created_at, updated_at
		FROM tasks
		WHERE id = $1
	`, id)

	var task models.Task
	if err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.UserID,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &task, nil
}

func (r *TaskRepo) Update(ctx context.Context, id int64, title, description string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.pool.Exec(ctx, `
		UPDATE tasks
		SET title = $1, description = $2, updated_at = NOW()
		WHERE id = $3
	`, title, description, id)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
