package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nkarpova/taskboard/internal/logger"
	"github.com/nkarpova/taskboard/internal/models"
)

// TaskReadRepository provides owner-scoped read access to task rows. Every
// query filters by user_id, so a task is invisible to anyone but its owner.
type TaskReadRepository struct {
	db *sqlx.DB
}

func NewTaskReadRepository(db *sqlx.DB) *TaskReadRepository {
	return &TaskReadRepository{db: db}
}

// GetByID returns the task with the given id owned by userID, or nil when no
// such row exists. A foreign-owned id yields the same nil as a missing one.
func (r *TaskReadRepository) GetByID(ctx context.Context, userID, taskID int64) (*models.TaskDB, error) {
	const query = `
		SELECT id, user_id, title, description, priority, status, due_date, created_at, updated_at
		FROM tasks
		WHERE id = $1 AND user_id = $2
	`

	var task models.TaskDB
	err := r.db.GetContext(ctx, &task, query, taskID, userID)

	logger.Log.Infow("task query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{taskID, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &task, nil
}

// ListByUserID returns all tasks owned by userID, newest-created first.
func (r *TaskReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.TaskDB, error) {
	const query = `
		SELECT id, user_id, title, description, priority, status, due_date, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	tasks := []models.TaskDB{}
	err := r.db.SelectContext(ctx, &tasks, query, userID)

	logger.Log.Infow("task query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"count", len(tasks),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return tasks, nil
}

// TaskWriteRepository persists task rows.
type TaskWriteRepository struct {
	db *sqlx.DB
}

func NewTaskWriteRepository(db *sqlx.DB) *TaskWriteRepository {
	return &TaskWriteRepository{db: db}
}

// Save inserts a new task for userID and returns the stored row including
// generated id and timestamps.
func (r *TaskWriteRepository) Save(ctx context.Context, userID int64, title string, description *string, priority, status string, dueDate *time.Time) (*models.TaskDB, error) {
	const query = `
		INSERT INTO tasks (user_id, title, description, priority, status, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, title, description, priority, status, due_date, created_at, updated_at
	`
	args := []any{userID, title, description, priority, status, dueDate}

	var task models.TaskDB
	err := r.db.GetContext(ctx, &task, query, args...)

	logger.Log.Infow("task insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &task, nil
}

// Update replaces all mutable fields of the task owned by userID and
// refreshes updated_at. Returns nil when no owned row matches taskID.
func (r *TaskWriteRepository) Update(ctx context.Context, userID, taskID int64, title string, description *string, priority, status string, dueDate *time.Time) (*models.TaskDB, error) {
	const query = `
		UPDATE tasks
		SET title = $3, description = $4, priority = $5, status = $6, due_date = $7, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, title, description, priority, status, due_date, created_at, updated_at
	`
	args := []any{taskID, userID, title, description, priority, status, dueDate}

	var task models.TaskDB
	err := r.db.GetContext(ctx, &task, query, args...)

	logger.Log.Infow("task update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &task, nil
}

// Delete removes the task owned by userID and reports whether a row was
// actually removed.
func (r *TaskWriteRepository) Delete(ctx context.Context, userID, taskID int64) (bool, error) {
	const query = `
		DELETE FROM tasks
		WHERE id = $1 AND user_id = $2
	`

	res, err := r.db.ExecContext(ctx, query, taskID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("task delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{taskID, userID},
		"rows_affected", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
