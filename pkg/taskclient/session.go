package taskclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
)

// Session represents an authenticated session. It holds the bearer token and
// the logged-in user, and is cleared by Logout or automatically when the
// server rejects the token; after that every method returns
// ErrSessionExpired.
type Session struct {
	client *Client

	mu    sync.RWMutex
	token string
	user  *User
}

// newSession creates a session from a successful login response.
func newSession(client *Client, token string, user User) *Session {
	return &Session{
		client: client,
		token:  token,
		user:   &user,
	}
}

// User returns the logged-in user as known at login time, or nil after the
// session has been cleared.
func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Token returns the bearer token, or the empty string after the session has
// been cleared.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Logout clears the session.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
}

// doAuthRequest performs an authenticated request. An authentication failure
// from the server clears the session.
func (s *Session) doAuthRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	token := s.Token()
	if token == "" {
		return nil, ErrSessionExpired
	}

	resp, err := s.client.doRequest(ctx, method, path, body, token)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		s.Logout()
		apiErr := apiErrorFromResponse(resp)
		resp.Body.Close()
		return nil, apiErr
	}

	return resp, nil
}

// decodeResponse closes the body and decodes a success response into v, or
// returns the server error for any other status.
func decodeResponse(resp *http.Response, wantStatus int, v any) error {
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return apiErrorFromResponse(resp)
	}
	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Me fetches the current user's profile from the server.
func (s *Session) Me(ctx context.Context) (*User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/users/me", nil)
	if err != nil {
		return nil, err
	}

	var body meResponse
	if err := decodeResponse(resp, http.StatusOK, &body); err != nil {
		return nil, err
	}
	return &body.User, nil
}

// CreateTask creates a new task owned by the session user.
func (s *Session) CreateTask(ctx context.Context, fields TaskFields) (*Task, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/tasks", fields)
	if err != nil {
		return nil, err
	}

	var body taskResponse
	if err := decodeResponse(resp, http.StatusCreated, &body); err != nil {
		return nil, err
	}
	return &body.Task, nil
}

// ListTasks returns all tasks owned by the session user, newest first.
func (s *Session) ListTasks(ctx context.Context) ([]Task, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/tasks", nil)
	if err != nil {
		return nil, err
	}

	var body taskListResponse
	if err := decodeResponse(resp, http.StatusOK, &body); err != nil {
		return nil, err
	}
	return body.Tasks, nil
}

// GetTask fetches a single task by id.
func (s *Session) GetTask(ctx context.Context, id int64) (*Task, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, fmt.Sprintf("/api/tasks/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var body taskResponse
	if err := decodeResponse(resp, http.StatusOK, &body); err != nil {
		return nil, err
	}
	return &body.Task, nil
}

// UpdateTask replaces all fields of a task. Fields left empty revert to
// server defaults, not to their previous values.
func (s *Session) UpdateTask(ctx context.Context, id int64, fields TaskFields) (*Task, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, fmt.Sprintf("/api/tasks/%d", id), fields)
	if err != nil {
		return nil, err
	}

	var body taskResponse
	if err := decodeResponse(resp, http.StatusOK, &body); err != nil {
		return nil, err
	}
	return &body.Task, nil
}

// DeleteTask removes a task by id.
func (s *Session) DeleteTask(ctx context.Context, id int64) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), nil)
	if err != nil {
		return err
	}

	return decodeResponse(resp, http.StatusOK, &messageResponse{})
}
