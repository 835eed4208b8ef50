package handlers

import (
	"context"
	"net/http"

	"github.com/nkarpova/taskboard/internal/logger"
	"github.com/nkarpova/taskboard/internal/middlewares"
	"github.com/nkarpova/taskboard/internal/models"
)

// TaskLister defines the interface that the task listing service must implement.
type TaskLister interface {
	List(ctx context.Context, userID int64) ([]models.TaskDB, error)
}

// TaskListResponse represents the authenticated user's tasks, newest first
// swagger:model TaskListResponse
type TaskListResponse struct {
	Count int            `json:"count"`
	Tasks []TaskResponse `json:"tasks"`
}

// NewTaskListHandler returns an HTTP handler for listing the caller's tasks.
// @Summary List tasks
// @Description Returns all tasks owned by the authenticated user, newest-created first
// @Tags tasks
// @Produce json
// @Success 200 {object} handlers.TaskListResponse "Tasks"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /api/tasks [get]
// @Security BearerAuth
func NewTaskListHandler(svc TaskLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		tasks, err := svc.List(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		resp := TaskListResponse{
			Count: len(tasks),
			Tasks: make([]TaskResponse, 0, len(tasks)),
		}
		for i := range tasks {
			resp.Tasks = append(resp.Tasks, newTaskResponse(&tasks[i]))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
