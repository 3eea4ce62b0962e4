// Package todoapi implements the service.Service interface over the
// todo backend's REST API.
package todoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"todo/internal/config"
	"todo/internal/service"
)

const (
	// APITimeout is the timeout for API calls.
	APITimeout = 10 * time.Second
)

// Client implements service.Service against the REST backend.
// A Client is a per-session instance: it carries the base URL and the
// active bearer token, with no module-level state.
type Client struct {
	baseURL string
	token   string

	// base performs unauthenticated calls (login). authed wraps it
	// with an oauth2 transport injecting "Authorization: Bearer".
	base   *http.Client
	authed *http.Client
}

// New creates a client for the backend at cfg.BaseURL.
func New(cfg *config.Config) *Client {
	return NewWithHTTPClient(cfg.BaseURL, &http.Client{})
}

// NewWithHTTPClient creates a client with a custom base HTTP client
// (for testing).
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		base:    httpClient,
	}
}

// SetToken installs the bearer token for authenticated calls.
func (c *Client) SetToken(token string) {
	c.token = token
	src := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	})
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, c.base)
	c.authed = oauth2.NewClient(ctx, src)
}

// ClearToken removes the active bearer token.
func (c *Client) ClearToken() {
	c.token = ""
	c.authed = nil
}

// Token returns the active bearer token, or "".
func (c *Client) Token() string {
	return c.token
}

// Login implements service.Service. The backend authenticates by email
// alone and registers unknown emails, so this covers sign-up too.
func (c *Client) Login(ctx context.Context, email string) (service.LoginResult, error) {
	var result service.LoginResult
	path := "/auth/login?email=" + url.QueryEscape(email)
	if err := c.do(ctx, http.MethodPost, path, false, nil, &result); err != nil {
		return service.LoginResult{}, err
	}
	if result.AccessToken == "" {
		return service.LoginResult{}, errors.New("login response missing access token")
	}
	return result, nil
}

// Me implements service.Service.
func (c *Client) Me(ctx context.Context) (service.User, error) {
	var user service.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", true, nil, &user); err != nil {
		return service.User{}, err
	}
	return user, nil
}

// UpdateProfile implements service.Service.
func (c *Client) UpdateProfile(ctx context.Context, patch service.ProfileUpdate) (service.User, error) {
	var user service.User
	if err := c.do(ctx, http.MethodPatch, "/auth/update", true, patch, &user); err != nil {
		return service.User{}, err
	}
	return user, nil
}

// ListTasks implements service.Service.
func (c *Client) ListTasks(ctx context.Context, userID string) ([]service.Task, error) {
	var tasks []service.Task
	if err := c.do(ctx, http.MethodGet, c.tasksPath(userID), true, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask implements service.Service.
func (c *Client) CreateTask(ctx context.Context, userID string, input service.TaskInput) (service.Task, error) {
	var task service.Task
	if err := c.do(ctx, http.MethodPost, c.tasksPath(userID), true, input, &task); err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// UpdateTask implements service.Service.
func (c *Client) UpdateTask(ctx context.Context, userID string, taskID int64, input service.TaskInput) (service.Task, error) {
	var task service.Task
	path := c.taskPath(userID, taskID)
	if err := c.do(ctx, http.MethodPut, path, true, input, &task); err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// ToggleTask implements service.Service. The response body is
// discarded; a 2xx status means the flip happened.
func (c *Client) ToggleTask(ctx context.Context, userID string, taskID int64) error {
	path := c.taskPath(userID, taskID) + "/complete"
	return c.do(ctx, http.MethodPatch, path, true, nil, nil)
}

// DeleteTask implements service.Service.
func (c *Client) DeleteTask(ctx context.Context, userID string, taskID int64) error {
	return c.do(ctx, http.MethodDelete, c.taskPath(userID, taskID), true, nil, nil)
}

func (c *Client) tasksPath(userID string) string {
	return "/api/" + url.PathEscape(userID) + "/tasks"
}

func (c *Client) taskPath(userID string, taskID int64) string {
	return fmt.Sprintf("%s/%d", c.tasksPath(userID), taskID)
}

// do performs one request. Non-2xx bodies are parsed for a JSON "error"
// field when possible, else reduced to a status-code message. A 204 or
// empty body is success and leaves out untouched.
func (c *Client) do(ctx context.Context, method, path string, auth bool, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	httpClient := c.base
	if auth && c.authed != nil {
		httpClient = c.authed
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return wrapError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return wrapError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, data)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("invalid response body: %w", err)
	}
	return nil
}

// statusError extracts the backend's error message from a non-2xx body.
func statusError(status int, body []byte) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return fmt.Errorf("%s (status %d)", payload.Error, status)
	}
	return fmt.Errorf("HTTP error: status %d", status)
}

// wrapError maps transport errors to user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "context deadline exceeded") {
		return errors.New("request timed out")
	}
	return err
}
