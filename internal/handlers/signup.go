package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nkarpova/taskboard/internal/logger"
	"github.com/nkarpova/taskboard/internal/models"
	"github.com/nkarpova/taskboard/internal/services"
)

// Registerer defines the interface that the signup service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password, name string) (*models.UserDB, error)
}

// SignupRequest represents the JSON body for user signup
// swagger:model SignupRequest
type SignupRequest struct {
	// Email
	// required: true
	// example: alice@example.com
	Email string `json:"email"`

	// Password, at least 6 characters
	// required: true
	// example: secret123
	Password string `json:"password"`

	// Display name
	// required: true
	// example: Alice
	Name string `json:"name"`
}

// SignupResponse represents a successful signup response
// swagger:model SignupResponse
type SignupResponse struct {
	User UserResponse `json:"user"`
}

// NewSignupHandler returns an HTTP handler for user signup.
// @Summary Sign up a new user
// @Description Creates a new user account. Ensures unique email. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "User signup request"
// @Success 201 {object} handlers.SignupResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request fields"
// @Failure 409 {object} handlers.ErrorResponse "Email already registered"
// @Router /api/auth/signup [post]
func NewSignupHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user, err := svc.Register(r.Context(), req.Email, req.Password, req.Name)
		if err != nil {
			var validationErr *services.ValidationError
			switch {
			case errors.As(err, &validationErr):
				writeError(w, http.StatusBadRequest, validationErr.Error())
			case errors.Is(err, services.ErrEmailAlreadyExists):
				writeError(w, http.StatusConflict, "Email already registered")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, SignupResponse{User: newUserResponse(user)})
	}
}
