// Package tasks keeps an in-memory ordered sequence of the current
// user's tasks consistent with server state.
package tasks

import (
	"context"
	"time"

	"todo/internal/config"
	"todo/internal/service"
	"todo/internal/validate"
)

// Session is the slice of the session manager the store depends on:
// whether a token is present and whether the user id has resolved.
type Session interface {
	IsAuthenticated() bool
	UserID() string
}

// Options configure a Store.
type Options struct {
	// PollInterval and PollMaxAttempts bound the startup wait for the
	// user id to resolve. Zero values take the config defaults.
	PollInterval    time.Duration
	PollMaxAttempts int

	// Logf receives diagnostic lines (fetch failures are logged, not
	// surfaced). Nil discards.
	Logf func(format string, args ...any)
}

// Store owns the task sequence for the current session. Newest task
// first. All mutating operations are guarded: without an authenticated
// session and a resolved user id they return without calling the
// backend. Like the session manager, a Store is single-writer; two
// in-flight mutations resolve last-write-wins on the affected element.
type Store struct {
	svc  service.Service
	sess Session

	tasks   []service.Task
	loading bool

	pollInterval    time.Duration
	pollMaxAttempts int
	logf            func(format string, args ...any)
}

// NewStore creates a Store bound to a session.
func NewStore(svc service.Service, sess Session, opts Options) *Store {
	s := &Store{
		svc:             svc,
		sess:            sess,
		pollInterval:    opts.PollInterval,
		pollMaxAttempts: opts.PollMaxAttempts,
		logf:            opts.Logf,
	}
	if s.pollInterval <= 0 {
		s.pollInterval = config.DefaultPollInterval
	}
	if s.pollMaxAttempts <= 0 {
		s.pollMaxAttempts = config.DefaultPollMaxAttempts
	}
	if s.logf == nil {
		s.logf = func(string, ...any) {}
	}
	return s
}

// InitialSync performs the startup fetch. Profile resolution may lag
// behind token adoption, so if the session is authenticated but the
// user id is unresolved this waits for it with a bounded poll, then
// attempts one fetch regardless of the wait's outcome.
func (s *Store) InitialSync(ctx context.Context) error {
	if !s.sess.IsAuthenticated() {
		return nil
	}
	if s.sess.UserID() == "" {
		if !s.waitForUser(ctx) {
			s.logf("user id unresolved after %d attempts", s.pollMaxAttempts)
		}
	}
	return s.Refresh(ctx)
}

// waitForUser polls for user-id resolution. Returns true once the id
// is available, false on timeout or context cancellation.
func (s *Store) waitForUser(ctx context.Context) bool {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for attempt := 0; attempt < s.pollMaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
		}
		if s.sess.UserID() != "" {
			return true
		}
	}
	return false
}

// Refresh loads the full task collection, replacing local state
// wholesale. On failure the failure is logged and the previous state
// is preserved, so callers do not observe an empty list on a transient
// error.
func (s *Store) Refresh(ctx context.Context) error {
	if !s.ready() {
		return nil
	}
	s.loading = true
	defer func() { s.loading = false }()

	fetched, err := s.svc.ListTasks(ctx, s.sess.UserID())
	if err != nil {
		s.logf("fetch tasks: %v", err)
		return err
	}
	s.tasks = fetched
	return nil
}

// Create sends a creation request and prepends the server's returned
// task, so the newest task is always first.
func (s *Store) Create(ctx context.Context, title, description string) (service.Task, error) {
	if !s.ready() {
		return service.Task{}, nil
	}
	if err := validate.TaskTitle(title); err != nil {
		return service.Task{}, err
	}
	if err := validate.TaskDescription(description); err != nil {
		return service.Task{}, err
	}

	input := service.TaskInput{Title: &title}
	if description != "" {
		input.Description = &description
	}

	created, err := s.svc.CreateTask(ctx, s.sess.UserID(), input)
	if err != nil {
		return service.Task{}, err
	}
	s.tasks = append([]service.Task{created}, s.tasks...)
	return created, nil
}

// Update sends the full current field set for the task and replaces
// the matching element with the server's returned representation. The
// server copy is authoritative; no client-side merge.
func (s *Store) Update(ctx context.Context, task service.Task) (service.Task, error) {
	if !s.ready() {
		return service.Task{}, nil
	}
	if err := validate.TaskTitle(task.Title); err != nil {
		return service.Task{}, err
	}
	if err := validate.TaskDescription(task.Description); err != nil {
		return service.Task{}, err
	}

	input := service.TaskInput{
		Title:     &task.Title,
		Completed: &task.Completed,
	}
	if task.Description != "" {
		input.Description = &task.Description
	}

	updated, err := s.svc.UpdateTask(ctx, s.sess.UserID(), task.ID, input)
	if err != nil {
		return service.Task{}, err
	}
	for i := range s.tasks {
		if s.tasks[i].ID == task.ID {
			s.tasks[i] = updated
			break
		}
	}
	return updated, nil
}

// Toggle flips the task's completed flag server-side, then applies an
// optimistic local flip. The server's returned value is not consulted:
// a successful call is trusted to mean the flip happened. This is
// deliberately asymmetric with Update's authoritative replacement.
func (s *Store) Toggle(ctx context.Context, taskID int64) error {
	if !s.ready() {
		return nil
	}
	if err := s.svc.ToggleTask(ctx, s.sess.UserID(), taskID); err != nil {
		return err
	}
	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			s.tasks[i].Completed = !s.tasks[i].Completed
			break
		}
	}
	return nil
}

// Delete removes the task from the backend first; only on success is
// it removed locally. A failed delete leaves the task visible so the
// user can retry.
func (s *Store) Delete(ctx context.Context, taskID int64) error {
	if !s.ready() {
		return nil
	}
	if err := s.svc.DeleteTask(ctx, s.sess.UserID(), taskID); err != nil {
		return err
	}
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID != taskID {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	return nil
}

// Tasks returns a copy of the current sequence, newest first.
func (s *Store) Tasks() []service.Task {
	out := make([]service.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Loading reports whether a fetch is outstanding.
func (s *Store) Loading() bool {
	return s.loading
}

// Stats summarizes the current sequence.
func (s *Store) Stats() (total, completed, pending int) {
	for _, t := range s.tasks {
		if t.Completed {
			completed++
		} else {
			pending++
		}
	}
	return len(s.tasks), completed, pending
}

func (s *Store) ready() bool {
	return s.sess.IsAuthenticated() && s.sess.UserID() != ""
}
