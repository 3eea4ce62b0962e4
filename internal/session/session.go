// Package session owns the authenticated identity for the lifetime of
// the process: the bearer token, the user profile, and the durable
// token slot.
package session

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/singleflight"

	"todo/internal/service"
	"todo/internal/validate"
)

// ErrNotSignedIn is returned by operations that require an active token.
var ErrNotSignedIn = errors.New("not signed in")

// TokenStore is the durable single-slot token storage.
// *config.Config implements it.
type TokenStore interface {
	ReadToken() (string, error)
	WriteToken(token string) error
	RemoveToken() error
}

// Manager establishes, persists, and tears down the authenticated
// identity. It is single-writer: callers must not invoke mutating
// operations from multiple goroutines. The one concession to
// interleaving is that concurrent profile fetches collapse into a
// single backend call.
type Manager struct {
	svc    service.Service
	tokens TokenStore

	token   string
	user    *service.User
	loading bool

	fetch singleflight.Group
}

// NewManager creates a Manager. The session starts empty and loading
// until Bootstrap resolves it.
func NewManager(svc service.Service, tokens TokenStore) *Manager {
	return &Manager{
		svc:     svc,
		tokens:  tokens,
		loading: true,
	}
}

// Bootstrap rehydrates the session from the durable token slot. An
// absent slot leaves the session unauthenticated. A present token is
// adopted as the active credential before the profile fetch resolves;
// a failed fetch signs the session out so a token with no hope of
// profile resolution is never left active.
func (m *Manager) Bootstrap(ctx context.Context) error {
	defer func() { m.loading = false }()

	token, err := m.tokens.ReadToken()
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	m.token = token
	m.svc.SetToken(token)

	// Invalid or expired token: fetchProfile has already signed out.
	if err := m.fetchProfile(ctx); err != nil {
		return nil
	}
	return nil
}

// SignIn authenticates with the backend. The password is validated
// client-side but never transmitted: the backend authenticates purely
// by email. If the login response carries no user id, the profile is
// fetched separately.
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	if err := validate.Email(email); err != nil {
		return err
	}
	if err := validate.Password(password); err != nil {
		return err
	}

	m.loading = true
	defer func() { m.loading = false }()

	result, err := m.svc.Login(ctx, email)
	if err != nil {
		return err
	}

	if err := m.adopt(result.AccessToken); err != nil {
		return err
	}

	if result.UserID == "" {
		return m.fetchProfile(ctx)
	}

	// Partial profile until the next fetch: no name, default theme.
	m.user = &service.User{
		ID:              result.UserID,
		Email:           result.Email,
		ThemePreference: service.DefaultTheme,
	}
	return nil
}

// SignUp registers a new user. The backend does not distinguish
// registration from login when authentication is email-only, so this
// delegates to SignIn; the name is validated but not persisted
// server-side on this path.
func (m *Manager) SignUp(ctx context.Context, email, password, name string) error {
	if err := validate.Name(name); err != nil {
		return err
	}
	return m.SignIn(ctx, email, password)
}

// SignOut clears the active token, the in-memory user, and the durable
// copy. Calling it when already signed out is a no-op.
func (m *Manager) SignOut() error {
	m.token = ""
	m.user = nil
	m.svc.ClearToken()
	return m.tokens.RemoveToken()
}

// UpdateProfile sends backend-relevant fields to the update endpoint
// and refreshes the local user from the response. A theme-preference-
// only change is applied locally without a network call; the theme is
// also applied locally when the backend rejects a mixed update with a
// not-found-style error.
func (m *Manager) UpdateProfile(ctx context.Context, patch service.ProfileUpdate) error {
	if !m.IsAuthenticated() {
		return ErrNotSignedIn
	}
	if patch.Name != nil {
		if err := validate.Name(*patch.Name); err != nil {
			return err
		}
	}

	if patch.ThemeOnly() {
		m.applyTheme(*patch.ThemePreference)
		return nil
	}

	user, err := m.svc.UpdateProfile(ctx, patch)
	if err != nil {
		if patch.ThemePreference != nil && isNotFound(err) {
			m.applyTheme(*patch.ThemePreference)
			return nil
		}
		return err
	}

	if user.ThemePreference == "" {
		user.ThemePreference = service.DefaultTheme
	}
	m.user = &user
	return nil
}

// Token returns the active bearer token, or "".
func (m *Manager) Token() string {
	return m.token
}

// User returns a copy of the profile and whether it is resolved.
func (m *Manager) User() (service.User, bool) {
	if m.user == nil {
		return service.User{}, false
	}
	return *m.user, true
}

// UserID returns the resolved user id, or "" while the profile fetch
// is outstanding or failed.
func (m *Manager) UserID() string {
	if m.user == nil {
		return ""
	}
	return m.user.ID
}

// IsAuthenticated reports whether a token is present. It does not
// require the profile to be resolved.
func (m *Manager) IsAuthenticated() bool {
	return m.token != ""
}

// IsLoading reports whether a session-establishing operation is
// outstanding.
func (m *Manager) IsLoading() bool {
	return m.loading
}

// adopt persists the token and installs it as the active credential.
func (m *Manager) adopt(token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	if err := m.tokens.WriteToken(token); err != nil {
		return err
	}
	m.token = token
	m.svc.SetToken(token)
	return nil
}

// fetchProfile populates the user from the "who am I" endpoint.
// Failure signs the session out as a side effect. Concurrent calls
// share one backend request.
func (m *Manager) fetchProfile(ctx context.Context) error {
	v, err, _ := m.fetch.Do("profile", func() (any, error) {
		return m.svc.Me(ctx)
	})
	if err != nil {
		_ = m.SignOut()
		return err
	}

	user := v.(service.User)
	if user.ThemePreference == "" {
		user.ThemePreference = service.DefaultTheme
	}
	m.user = &user
	return nil
}

func (m *Manager) applyTheme(theme string) {
	if m.user == nil {
		return
	}
	m.user.ThemePreference = theme
}

// isNotFound matches not-found-style backend errors by message, the
// only signal the error surface carries.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "404") || strings.Contains(strings.ToLower(msg), "not found")
}
