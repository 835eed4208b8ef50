package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nkarpova/taskboard/internal/logger"
	"github.com/nkarpova/taskboard/internal/middlewares"
	"github.com/nkarpova/taskboard/internal/models"
	"github.com/nkarpova/taskboard/internal/services"
)

// TaskCreator defines the interface that the task creation service must implement.
type TaskCreator interface {
	Create(ctx context.Context, userID int64, in models.TaskInput) (*models.TaskDB, error)
}

// TaskCreateResponse represents a successful task creation response
// swagger:model TaskCreateResponse
type TaskCreateResponse struct {
	Task TaskResponse `json:"task"`
}

// NewTaskCreateHandler returns an HTTP handler for creating a task.
// @Summary Create a task
// @Description Creates a task owned by the authenticated user. Absent optional fields receive defaults.
// @Tags tasks
// @Accept json
// @Produce json
// @Param taskRequest body handlers.TaskRequest true "Task fields"
// @Success 201 {object} handlers.TaskCreateResponse "Task created"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /api/tasks [post]
// @Security BearerAuth
func NewTaskCreateHandler(svc TaskCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req TaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		task, err := svc.Create(r.Context(), claims.UserID, req.toInput())
		if err != nil {
			var validationErr *services.ValidationError
			switch {
			case errors.As(err, &validationErr):
				writeError(w, http.StatusBadRequest, validationErr.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, TaskCreateResponse{Task: newTaskResponse(task)})
	}
}
