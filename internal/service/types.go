// Package service defines the backend-agnostic interface for auth and task operations.
package service

// DefaultTheme is the theme preference assumed when the backend omits one.
const DefaultTheme = "system"

// User is the profile record for the authenticated identity.
// Name is empty when the backend has no name on file.
type User struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	Name            string `json:"name,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
	UpdatedAt       string `json:"updated_at,omitempty"`
	ThemePreference string `json:"theme_preference,omitempty"`
}

// Task is a unit of user work. IDs and timestamps are server-assigned.
type Task struct {
	ID          int64  `json:"id"`
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// LoginResult is the backend's answer to a login/register call.
// UserID and Email form a partial profile; the rest comes from Me.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
}

// ProfileUpdate carries the fields a profile update may change.
// Nil means "leave unchanged".
type ProfileUpdate struct {
	Name            *string `json:"name,omitempty"`
	ThemePreference *string `json:"theme_preference,omitempty"`
}

// ThemeOnly reports whether the update touches nothing but the theme
// preference. Theme-only updates are applied client-side without a
// backend call.
func (p ProfileUpdate) ThemeOnly() bool {
	return p.Name == nil && p.ThemePreference != nil
}

// TaskInput carries the fields for task create and update calls.
// Nil means "omit from the request body".
type TaskInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}
