package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nkarpova/taskboard/internal/models"
)

// ErrorResponse is the JSON body for every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: task not found
	Error string `json:"error"`
}

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError serializes a standard error body.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// UserResponse is the public view of a user. The password hash never
// appears here.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func newUserResponse(u *models.UserDB) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

// TaskResponse is the public view of a task.
type TaskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	DueDate     *string   `json:"dueDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newTaskResponse(t *models.TaskDB) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.DueDate != nil {
		due := t.DueDate.Format("2006-01-02")
		resp.DueDate = &due
	}
	return resp
}

// TaskRequest represents the JSON body for creating or replacing a task
// swagger:model TaskRequest
type TaskRequest struct {
	// Title
	// required: true
	// example: Buy milk
	Title string `json:"title"`

	// Description
	// example: Two liters, lactose free
	Description string `json:"description"`

	// Priority, one of low/medium/high
	// example: medium
	Priority string `json:"priority"`

	// Status, one of pending/in_progress/completed
	// example: pending
	Status string `json:"status"`

	// Due date in YYYY-MM-DD format
	// example: 2026-09-01
	DueDate string `json:"dueDate"`
}

func (req TaskRequest) toInput() models.TaskInput {
	return models.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		DueDate:     req.DueDate,
	}
}

// taskIDFromRequest parses the {id} URL parameter. Non-numeric ids are a
// client error, not a lookup miss.
func taskIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
