package services

import (
	"context"
	"errors"

	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/models"
	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/repo"
	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/utils"
)

// TaskStore is the slice of the task repository the task service needs.
type TaskStore interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	List(ctx context.Context) ([]models.Task, error)
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	Update(ctx context.Context, id int64, title, description string) error
	Delete(ctx context.Context, id int64) error
}

type TaskService struct {
	tasks TaskStore
	users UserStore

	// enforceOwnership gates the owner-or-admin check on update. Off by
	// default: updates are unconditional by id, matching the deployed
	// behavior. See DESIGN.md.
	enforceOwnership bool
}

func NewTaskService(tasks TaskStore, users UserStore, enforceOwnership bool) *TaskService {
	return &TaskService{tasks: tasks, users: users, enforceOwnership: enforceOwnership}
}

// Create attributes the task to the caller resolved from the token identity,
// never from the request body.
func (s *TaskService) Create(ctx context.Context, username, title, description string) (*models.Task, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, utils.ErrInternal("could not resolve task owner")
	}

	task := &models.Task{
		Title:       title,
		Description: description,
		UserID:      user.ID,
	}
	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		return nil, utils.ErrInternal("could not create task")
	}
	return created, nil
}

func (s *TaskService) List(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, utils.ErrInternal("could not list tasks")
	}
	return tasks, nil
}

func (s *TaskService) Update(ctx context.Context, username, role string, id int64, title, description string) error {
	if s.enforceOwnership {
		task, err := s.tasks.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return utils.NewAppError(404, "NOT_FOUND", "task not found", nil)
			}
			return utils.ErrInternal("could not load task")
		}
		if role != models.RoleAdmin {
			owner, err := s.users.GetByUsername(ctx, username)
			if err != nil || task.UserID != owner.ID {
				return utils.ErrForbidden()
			}
		}
	}

	if err := s.tasks.Update(ctx, id, title, description); err != nil {
		return utils.ErrInternal("could not update task")
	}
	return nil
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		return utils.ErrInternal("could not delete task")
	}
	return nil
}
