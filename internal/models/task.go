package models

import "time"

// Task priority levels.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task statuses.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// ValidPriority reports whether p is a known priority value.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ValidStatus reports whether s is a known status value.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// TaskDB represents a task record in the database
type TaskDB struct {
	ID          int64      `db:"id"`          // Primary key
	UserID      int64      `db:"user_id"`     // Owning user
	Title       string     `db:"title"`       // Non-empty, trimmed
	Description *string    `db:"description"` // Optional
	Priority    string     `db:"priority"`    // low / medium / high
	Status      string     `db:"status"`      // pending / in_progress / completed
	DueDate     *time.Time `db:"due_date"`    // Optional calendar date
	CreatedAt   time.Time  `db:"created_at"`  // Creation timestamp
	UpdatedAt   time.Time  `db:"updated_at"`  // Refreshed on every mutation
}

// TaskInput carries the client-supplied fields for creating or replacing a
// task. Empty optional fields mean "absent" and receive defaults; invalid
// values are rejected, never coerced.
type TaskInput struct {
	Title       string
	Description string
	Priority    string
	Status      string
	DueDate     string // YYYY-MM-DD
}
