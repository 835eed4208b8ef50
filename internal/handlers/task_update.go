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

// TaskUpdater defines the interface that the task update service must implement.
type TaskUpdater interface {
	Update(ctx context.Context, userID, taskID int64, in models.TaskInput) (*models.TaskDB, error)
}

// TaskUpdateResponse represents a successful task update response
// swagger:model TaskUpdateResponse
type TaskUpdateResponse struct {
	Task TaskResponse `json:"task"`
}

// NewTaskUpdateHandler returns an HTTP handler for replacing a task.
// @Summary Update a task
// @Description Full-record replace: omitted optional fields reset to their defaults, not to previous values
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task id"
// @Param taskRequest body handlers.TaskRequest true "Task fields"
// @Success 200 {object} handlers.TaskUpdateResponse "Task updated"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure or non-numeric id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Task not found"
// @Router /api/tasks/{id} [put]
// @Security BearerAuth
func NewTaskUpdateHandler(svc TaskUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		taskID, err := taskIDFromRequest(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "task id must be numeric")
			return
		}

		var req TaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		task, err := svc.Update(r.Context(), claims.UserID, taskID, req.toInput())
		if err != nil {
			var validationErr *services.ValidationError
			switch {
			case errors.As(err, &validationErr):
				writeError(w, http.StatusBadRequest, validationErr.Error())
			case errors.Is(err, services.ErrTaskNotFound):
				writeError(w, http.StatusNotFound, "Task not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, TaskUpdateResponse{Task: newTaskResponse(task)})
	}
}
