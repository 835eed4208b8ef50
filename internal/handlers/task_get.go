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

// TaskGetter defines the interface that the task fetch service must implement.
type TaskGetter interface {
	Get(ctx context.Context, userID, taskID int64) (*models.TaskDB, error)
}

// TaskGetResponse represents a single task response
// swagger:model TaskGetResponse
type TaskGetResponse struct {
	Task TaskResponse `json:"task"`
}

// NewTaskGetHandler returns an HTTP handler for fetching a single task.
// @Summary Get a task
// @Description Returns the task only if it is owned by the authenticated user
// @Tags tasks
// @Produce json
// @Param id path int true "Task id"
// @Success 200 {object} handlers.TaskGetResponse "Task"
// @Failure 400 {object} handlers.ErrorResponse "Non-numeric id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Task not found"
// @Router /api/tasks/{id} [get]
// @Security BearerAuth
func NewTaskGetHandler(svc TaskGetter) http.HandlerFunc {
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

		task, err := svc.Get(r.Context(), claims.UserID, taskID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTaskNotFound):
				writeError(w, http.StatusNotFound, "Task not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, TaskGetResponse{Task: newTaskResponse(task)})
	}
}
