package taskclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TrimsTrailingSlash(t *testing.T) {
	c := New("http://localhost:8080/")
	assert.Equal(t, "http://localhost:8080", c.BaseURL)
	assert.Equal(t, "http://localhost:8080/health", c.url("/health"))
}

func TestClient_Signup(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/auth/signup", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req signupRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "alice@example.com", req.Email)
			assert.Equal(t, "secret123", req.Password)
			assert.Equal(t, "Alice", req.Name)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(signupResponse{User: User{
				ID:        1,
				Email:     "alice@example.com",
				Name:      "Alice",
				CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
			}})
		}))
		defer srv.Close()

		user, err := New(srv.URL).Signup(context.Background(), "alice@example.com", "secret123", "Alice")
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("email already registered", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"error":"Email already registered"}`))
		}))
		defer srv.Close()

		user, err := New(srv.URL).Signup(context.Background(), "alice@example.com", "secret123", "Alice")
		assert.Nil(t, user)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
		assert.Equal(t, "Email already registered", apiErr.Message)
	})
}

func TestClient_Login(t *testing.T) {
	t.Run("success returns session", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/auth/login", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(loginResponse{
				Token: "sometoken",
				User:  User{ID: 1, Email: "alice@example.com", Name: "Alice"},
			})
		}))
		defer srv.Close()

		sess, err := New(srv.URL).Login(context.Background(), "alice@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "sometoken", sess.Token())
		require.NotNil(t, sess.User())
		assert.Equal(t, "alice@example.com", sess.User().Email)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"Invalid email or password"}`))
		}))
		defer srv.Close()

		sess, err := New(srv.URL).Login(context.Background(), "alice@example.com", "wrong")
		assert.Nil(t, sess)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		assert.Equal(t, "Invalid email or password", apiErr.Message)
	})
}

func TestClient_Health(t *testing.T) {
	t.Run("up", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"ok"}`))
		}))
		defer srv.Close()

		assert.NoError(t, New(srv.URL).Health(context.Background()))
	})

	t.Run("down", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		err := New(srv.URL).Health(context.Background())

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
		// No JSON body, so the message falls back to the status text.
		assert.Equal(t, "Service Unavailable", apiErr.Message)
	})
}
