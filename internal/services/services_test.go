package services

import (
	"context"
	"sync"

	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/models"
	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/repo"
)

// In-memory stores standing in for the pgx repos.

type fakeUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User)}
}

func (s *fakeUserStore) Create(_ context.Context, username, name, passwordHash, role string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[username]; ok {
		return nil, repo.ErrDuplicateUsername
	}
	s.nextID++
	user := &models.User{
		ID:           s.nextID,
		Username:     username,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         role,
	}
	s.users[username] = user
	copied := *user
	return &copied, nil
}

func (s *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[username]
	if !ok {
		return nil, repo.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repo.ErrNotFound
}

type fakeTaskStore struct {
	mu     sync.Mutex
	nextID int64
	tasks  map[int64]*models.Task
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[int64]*models.Task)}
}

func (s *fakeTaskStore) Create(_ context.Context, task *models.Task) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	task.ID = s.nextID
	copied := *task
	s.tasks[task.ID] = &copied
	return task, nil
}

func (s *fakeTaskStore) List(_ context.Context) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Task{}
	for id := int64(1); id <= s.nextID; id++ {
		if task, ok := s.tasks[id]; ok {
			out = append(out, *task)
		}
	}
	return out, nil
}

func (s *fakeTaskStore) GetByID(_ context.Context, id int64) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	copied := *task
	return &copied, nil
}

func (s *fakeTaskStore) Update(_ context.Context, id int64, title, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if task, ok := s.tasks[id]; ok {
		task.Title = title
		task.Description = description
	}
	return nil
}

func (s *fakeTaskStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tasks, id)
	return nil
}
