package taskclient

import "time"

// User is the public view of a user account.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Task is a single to-do item owned by the authenticated user.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	DueDate     *string   `json:"dueDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TaskFields carries the fields for creating or replacing a task. Empty
// optional fields receive server-side defaults; the server treats a PUT as a
// full replace, so send every field you want to keep.
type TaskFields struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Status      string `json:"status,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type signupResponse struct {
	User User `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type meResponse struct {
	User User `json:"user"`
}

type taskResponse struct {
	Task Task `json:"task"`
}

type taskListResponse struct {
	Count int    `json:"count"`
	Tasks []Task `json:"tasks"`
}

type messageResponse struct {
	Message string `json:"message"`
}
