package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/nkarpova/taskboard/internal/logger"
	"github.com/nkarpova/taskboard/internal/middlewares"
	"github.com/nkarpova/taskboard/internal/services"
)

// TaskDeleter defines the interface that the task deletion service must implement.
type TaskDeleter interface {
	Delete(ctx context.Context, userID, taskID int64) error
}

// TaskDeleteResponse represents a successful task deletion response
// swagger:model TaskDeleteResponse
type TaskDeleteResponse struct {
	// Success message
	// example: Task deleted successfully
	Message string `json:"message"`
}

// NewTaskDeleteHandler returns an HTTP handler for deleting a task.
// @Summary Delete a task
// @Description Removes the task if it is owned by the authenticated user
// @Tags tasks
// @Produce json
// @Param id path int true "Task id"
// @Success 200 {object} handlers.TaskDeleteResponse "Task deleted"
// @Failure 400 {object} handlers.ErrorResponse "Non-numeric id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Task not found"
// @Router /api/tasks/{id} [delete]
// @Security BearerAuth
func NewTaskDeleteHandler(svc TaskDeleter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), claims.UserID, taskID); err != nil {
			switch {
			case errors.Is(err, services.ErrTaskNotFound):
				writeError(w, http.StatusNotFound, "Task not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, TaskDeleteResponse{Message: "Task deleted successfully"})
	}
}
