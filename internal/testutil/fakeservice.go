// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"todo/internal/service"
)

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found (status 404)")

// FakeService is an in-memory implementation of service.Service for
// testing. Every operation counts its calls so tests can assert that
// guarded operations never reach the backend.
type FakeService struct {
	mu sync.RWMutex

	// User is the profile returned by Me and updated by UpdateProfile.
	User service.User

	// AccessToken is handed out by Login.
	AccessToken string

	// LoginOmitsUser makes Login return a token with no user id, which
	// forces the session manager down its profile-fetch branch.
	LoginOmitsUser bool

	// UpdateTaskResult, when set, overrides UpdateTask's response so
	// tests can make the server disagree with the client's payload.
	UpdateTaskResult *service.Task

	token  string
	tasks  map[string][]service.Task
	nextID int64

	calls map[string]int

	// Error injection per operation.
	LoginErr         error
	MeErr            error
	UpdateProfileErr error
	ListTasksErr     error
	CreateTaskErr    error
	UpdateTaskErr    error
	ToggleTaskErr    error
	DeleteTaskErr    error
}

// NewFakeService creates a FakeService with one known user.
func NewFakeService() *FakeService {
	return &FakeService{
		User:        service.User{ID: "u1", Email: "user@example.com", CreatedAt: "2024-01-01T00:00:00Z"},
		AccessToken: "fake-token",
		tasks:       make(map[string][]service.Task),
		calls:       make(map[string]int),
	}
}

// Calls returns how many times the named operation was invoked.
func (f *FakeService) Calls(op string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.calls[op]
}

// Token returns the currently installed bearer token.
func (f *FakeService) Token() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.token
}

// AddTask seeds a task for a user and returns it.
func (f *FakeService) AddTask(userID, title string, completed bool) service.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	t := service.Task{
		ID:        f.nextID,
		UserID:    userID,
		Title:     title,
		Completed: completed,
		CreatedAt: "2024-01-01T00:00:00Z",
	}
	f.tasks[userID] = append(f.tasks[userID], t)
	return t
}

func (f *FakeService) count(op string) {
	f.mu.Lock()
	f.calls[op]++
	f.mu.Unlock()
}

// Login implements service.Service.
func (f *FakeService) Login(ctx context.Context, email string) (service.LoginResult, error) {
	f.count("Login")
	if f.LoginErr != nil {
		return service.LoginResult{}, f.LoginErr
	}
	if f.LoginOmitsUser {
		return service.LoginResult{AccessToken: f.AccessToken}, nil
	}
	return service.LoginResult{
		AccessToken: f.AccessToken,
		UserID:      f.User.ID,
		Email:       email,
	}, nil
}

// Me implements service.Service.
func (f *FakeService) Me(ctx context.Context) (service.User, error) {
	f.count("Me")
	if f.MeErr != nil {
		return service.User{}, f.MeErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.User, nil
}

// UpdateProfile implements service.Service.
func (f *FakeService) UpdateProfile(ctx context.Context, patch service.ProfileUpdate) (service.User, error) {
	f.count("UpdateProfile")
	if f.UpdateProfileErr != nil {
		return service.User{}, f.UpdateProfileErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if patch.Name != nil {
		f.User.Name = *patch.Name
	}
	if patch.ThemePreference != nil {
		f.User.ThemePreference = *patch.ThemePreference
	}
	return f.User, nil
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context, userID string) ([]service.Task, error) {
	f.count("ListTasks")
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]service.Task, len(f.tasks[userID]))
	copy(out, f.tasks[userID])
	return out, nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, userID string, input service.TaskInput) (service.Task, error) {
	f.count("CreateTask")
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	t := service.Task{
		ID:        f.nextID,
		UserID:    userID,
		CreatedAt: fmt.Sprintf("2024-01-01T00:00:%02dZ", f.nextID%60),
	}
	if input.Title != nil {
		t.Title = *input.Title
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	if input.Completed != nil {
		t.Completed = *input.Completed
	}
	f.tasks[userID] = append(f.tasks[userID], t)
	return t, nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, userID string, taskID int64, input service.TaskInput) (service.Task, error) {
	f.count("UpdateTask")
	if f.UpdateTaskErr != nil {
		return service.Task{}, f.UpdateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks[userID] {
		if t.ID != taskID {
			continue
		}
		if input.Title != nil {
			t.Title = *input.Title
		}
		if input.Description != nil {
			t.Description = *input.Description
		}
		if input.Completed != nil {
			t.Completed = *input.Completed
		}
		t.UpdatedAt = "2024-01-02T00:00:00Z"
		f.tasks[userID][i] = t
		if f.UpdateTaskResult != nil {
			return *f.UpdateTaskResult, nil
		}
		return t, nil
	}
	return service.Task{}, ErrNotFound
}

// ToggleTask implements service.Service.
func (f *FakeService) ToggleTask(ctx context.Context, userID string, taskID int64) error {
	f.count("ToggleTask")
	if f.ToggleTaskErr != nil {
		return f.ToggleTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks[userID] {
		if t.ID == taskID {
			f.tasks[userID][i].Completed = !t.Completed
			return nil
		}
	}
	return ErrNotFound
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, userID string, taskID int64) error {
	f.count("DeleteTask")
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks[userID] {
		if t.ID == taskID {
			f.tasks[userID] = append(f.tasks[userID][:i], f.tasks[userID][i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// SetToken implements service.Service.
func (f *FakeService) SetToken(token string) {
	f.count("SetToken")
	f.mu.Lock()
	f.token = token
	f.mu.Unlock()
}

// ClearToken implements service.Service.
func (f *FakeService) ClearToken() {
	f.count("ClearToken")
	f.mu.Lock()
	f.token = ""
	f.mu.Unlock()
}
