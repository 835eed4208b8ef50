package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/nkarpova/taskboard/internal/logger"
	"github.com/nkarpova/taskboard/internal/models"
)

// ErrTaskNotFound is returned when a task does not exist or belongs to a
// different user. The two cases are deliberately indistinguishable.
var ErrTaskNotFound = errors.New("task not found")

// dueDateLayout is the accepted due date format.
const dueDateLayout = "2006-01-02"

// TaskReader defines owner-scoped read operations for tasks.
type TaskReader interface {
	GetByID(ctx context.Context, userID, taskID int64) (*models.TaskDB, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.TaskDB, error)
}

// TaskWriter defines owner-scoped write operations for tasks.
type TaskWriter interface {
	Save(ctx context.Context, userID int64, title string, description *string, priority, status string, dueDate *time.Time) (*models.TaskDB, error)
	Update(ctx context.Context, userID, taskID int64, title string, description *string, priority, status string, dueDate *time.Time) (*models.TaskDB, error)
	Delete(ctx context.Context, userID, taskID int64) (bool, error)
}

// TaskService handles task CRUD, always scoped to the calling user.
type TaskService struct {
	reader TaskReader
	writer TaskWriter
}

// NewTaskService creates a new TaskService instance.
func NewTaskService(reader TaskReader, writer TaskWriter) *TaskService {
	return &TaskService{
		reader: reader,
		writer: writer,
	}
}

// taskFields is the validated, default-applied form of a TaskInput.
type taskFields struct {
	title       string
	description *string
	priority    string
	status      string
	dueDate     *time.Time
}

// validateInput checks a TaskInput and applies defaults to absent optional
// fields. Invalid priority, status, or due date values are rejected, never
// coerced to defaults.
func validateInput(in models.TaskInput) (*taskFields, error) {
	f := &taskFields{
		priority: models.PriorityMedium,
		status:   models.StatusPending,
	}

	f.title = strings.TrimSpace(in.Title)
	if f.title == "" {
		return nil, newValidationError("title", "is required")
	}

	if desc := strings.TrimSpace(in.Description); desc != "" {
		f.description = &desc
	}

	if in.Priority != "" {
		if !models.ValidPriority(in.Priority) {
			return nil, newValidationError("priority", "must be one of: low, medium, high")
		}
		f.priority = in.Priority
	}

	if in.Status != "" {
		if !models.ValidStatus(in.Status) {
			return nil, newValidationError("status", "must be one of: pending, in_progress, completed")
		}
		f.status = in.Status
	}

	if in.DueDate != "" {
		due, err := time.Parse(dueDateLayout, in.DueDate)
		if err != nil {
			return nil, newValidationError("dueDate", "must be a date in YYYY-MM-DD format")
		}
		f.dueDate = &due
	}

	return f, nil
}

// Create validates the input and persists a new task owned by userID.
func (svc *TaskService) Create(ctx context.Context, userID int64, in models.TaskInput) (*models.TaskDB, error) {
	f, err := validateInput(in)
	if err != nil {
		return nil, err
	}

	task, err := svc.writer.Save(ctx, userID, f.title, f.description, f.priority, f.status, f.dueDate)
	if err != nil {
		logger.Log.Errorw("failed to save task", "userID", userID, "err", err)
		return nil, err
	}

	return task, nil
}

// List returns all tasks owned by userID, newest-created first.
func (svc *TaskService) List(ctx context.Context, userID int64) ([]models.TaskDB, error) {
	tasks, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list tasks", "userID", userID, "err", err)
		return nil, err
	}
	return tasks, nil
}

// Get returns the task only if both id and owner match.
func (svc *TaskService) Get(ctx context.Context, userID, taskID int64) (*models.TaskDB, error) {
	task, err := svc.reader.GetByID(ctx, userID, taskID)
	if err != nil {
		logger.Log.Errorw("failed to get task", "userID", userID, "taskID", taskID, "err", err)
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// Update replaces all mutable fields of the task. Omitted optional fields
// fall back to defaults, not to previous values, and updated_at is
// refreshed.
func (svc *TaskService) Update(ctx context.Context, userID, taskID int64, in models.TaskInput) (*models.TaskDB, error) {
	f, err := validateInput(in)
	if err != nil {
		return nil, err
	}

	task, err := svc.writer.Update(ctx, userID, taskID, f.title, f.description, f.priority, f.status, f.dueDate)
	if err != nil {
		logger.Log.Errorw("failed to update task", "userID", userID, "taskID", taskID, "err", err)
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	return task, nil
}

// Delete removes the task if the owner matches. ErrTaskNotFound is returned
// when no owned row was removed.
func (svc *TaskService) Delete(ctx context.Context, userID, taskID int64) error {
	deleted, err := svc.writer.Delete(ctx, userID, taskID)
	if err != nil {
		logger.Log.Errorw("failed to delete task", "userID", userID, "taskID", taskID, "err", err)
		return err
	}
	if !deleted {
		return ErrTaskNotFound
	}
	return nil
}
