package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/nkarpova/taskboard/internal/logger"
	"github.com/nkarpova/taskboard/internal/middlewares"
	"github.com/nkarpova/taskboard/internal/models"
	"github.com/nkarpova/taskboard/internal/services"
)

// UserGetter defines the interface that the profile service must implement.
type UserGetter interface {
	GetUser(ctx context.Context, id int64) (*models.UserDB, error)
}

// MeResponse represents the current user's profile
// swagger:model MeResponse
type MeResponse struct {
	User UserResponse `json:"user"`
}

// NewMeHandler returns an HTTP handler for the current user's profile.
// @Summary Current user profile
// @Description Returns the profile of the authenticated user
// @Tags users
// @Produce json
// @Success 200 {object} handlers.MeResponse "Current user"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User no longer exists"
// @Router /api/users/me [get]
// @Security BearerAuth
func NewMeHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := svc.GetUser(r.Context(), claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, MeResponse{User: newUserResponse(user)})
	}
}
