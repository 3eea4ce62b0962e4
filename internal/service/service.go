// Package service defines the backend-agnostic interface for auth and task operations.
package service

import "context"

// Service defines the interface for backend operations.
// All HTTP calls go through this interface; the session manager and
// task store never touch the transport directly.
type Service interface {
	// Login authenticates by email and returns a bearer token plus a
	// partial profile. The backend registers unknown emails on the fly,
	// so login and sign-up are the same call.
	Login(ctx context.Context, email string) (LoginResult, error)

	// Me returns the profile for the active token.
	Me(ctx context.Context) (User, error)

	// UpdateProfile sends a partial profile update and returns the
	// updated profile.
	UpdateProfile(ctx context.Context, patch ProfileUpdate) (User, error)

	// ListTasks returns the full task collection for a user.
	ListTasks(ctx context.Context, userID string) ([]Task, error)

	// CreateTask creates a task and returns the server's copy with
	// assigned id and timestamps.
	CreateTask(ctx context.Context, userID string, input TaskInput) (Task, error)

	// UpdateTask replaces a task's fields and returns the server's copy.
	UpdateTask(ctx context.Context, userID string, taskID int64, input TaskInput) (Task, error)

	// ToggleTask flips a task's completed flag server-side. Callers
	// ignore the returned body and trust the flip on success.
	ToggleTask(ctx context.Context, userID string, taskID int64) error

	// DeleteTask deletes a task.
	DeleteTask(ctx context.Context, userID string, taskID int64) error

	// SetToken installs the bearer token used for authenticated calls.
	SetToken(token string)

	// ClearToken removes the active bearer token.
	ClearToken()
}
