package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/nkarpova/taskboard/internal/models"
	"github.com/nkarpova/taskboard/internal/services"
)

func TestTaskService_Create_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		in        models.TaskInput
		wantField string
	}{
		{
			name:      "missing title",
			in:        models.TaskInput{},
			wantField: "title",
		},
		{
			name:      "blank title",
			in:        models.TaskInput{Title: "   "},
			wantField: "title",
		},
		{
			name:      "invalid priority",
			in:        models.TaskInput{Title: "Buy milk", Priority: "urgent"},
			wantField: "priority",
		},
		{
			name:      "invalid status",
			in:        models.TaskInput{Title: "Buy milk", Status: "done"},
			wantField: "status",
		},
		{
			name:      "invalid due date",
			in:        models.TaskInput{Title: "Buy milk", DueDate: "tomorrow"},
			wantField: "dueDate",
		},
		{
			name:      "due date with wrong layout",
			in:        models.TaskInput{Title: "Buy milk", DueDate: "01-09-2026"},
			wantField: "dueDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockTaskReader(ctrl)
			mockWriter := services.NewMockTaskWriter(ctrl)
			svc := services.NewTaskService(mockReader, mockWriter)

			// Invalid input must never reach the writer
			task, err := svc.Create(context.Background(), 1, tt.in)
			assert.Nil(t, task)

			var validationErr *services.ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestTaskService_Create_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTaskReader(ctrl)
	mockWriter := services.NewMockTaskWriter(ctrl)
	svc := services.NewTaskService(mockReader, mockWriter)

	// Absent optional fields receive defaults: medium priority, pending
	// status, no description, no due date.
	mockWriter.EXPECT().
		Save(gomock.Any(), int64(1), "Buy milk", nil, models.PriorityMedium, models.StatusPending, nil).
		Return(&models.TaskDB{
			ID:       10,
			UserID:   1,
			Title:    "Buy milk",
			Priority: models.PriorityMedium,
			Status:   models.StatusPending,
		}, nil)

	task, err := svc.Create(context.Background(), 1, models.TaskInput{Title: "  Buy milk  "})
	assert.NoError(t, err)
	assert.Equal(t, int64(10), task.ID)
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.Equal(t, models.StatusPending, task.Status)
	assert.Nil(t, task.DueDate)
}

func TestTaskService_Create_AllFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTaskReader(ctrl)
	mockWriter := services.NewMockTaskWriter(ctrl)
	svc := services.NewTaskService(mockReader, mockWriter)

	desc := "Two liters"
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	mockWriter.EXPECT().
		Save(gomock.Any(), int64(1), "Buy milk", &desc, models.PriorityHigh, models.StatusInProgress, &due).
		Return(&models.TaskDB{
			ID:          11,
			UserID:      1,
			Title:       "Buy milk",
			Description: &desc,
			Priority:    models.PriorityHigh,
			Status:      models.StatusInProgress,
			DueDate:     &due,
		}, nil)

	task, err := svc.Create(context.Background(), 1, models.TaskInput{
		Title:       "Buy milk",
		Description: "Two liters",
		Priority:    "high",
		Status:      "in_progress",
		DueDate:     "2026-09-01",
	})
	assert.NoError(t, err)
	assert.Equal(t, &desc, task.Description)
	assert.Equal(t, &due, task.DueDate)
}

func TestTaskService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTaskReader(ctrl)
	mockWriter := services.NewMockTaskWriter(ctrl)
	svc := services.NewTaskService(mockReader, mockWriter)

	t.Run("empty list is not an error", func(t *testing.T) {
		mockReader.EXPECT().ListByUserID(gomock.Any(), int64(1)).Return([]models.TaskDB{}, nil)

		tasks, err := svc.List(context.Background(), 1)
		assert.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().ListByUserID(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))

		tasks, err := svc.List(context.Background(), 1)
		assert.Error(t, err)
		assert.Nil(t, tasks)
	})
}

func TestTaskService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTaskReader(ctrl)
	mockWriter := services.NewMockTaskWriter(ctrl)
	svc := services.NewTaskService(mockReader, mockWriter)

	t.Run("owned task", func(t *testing.T) {
		want := &models.TaskDB{ID: 10, UserID: 1, Title: "Buy milk"}
		mockReader.EXPECT().GetByID(gomock.Any(), int64(1), int64(10)).Return(want, nil)

		task, err := svc.Get(context.Background(), 1, 10)
		assert.NoError(t, err)
		assert.Equal(t, want, task)
	})

	t.Run("missing or foreign-owned task", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), int64(1), int64(99)).Return(nil, nil)

		task, err := svc.Get(context.Background(), 1, 99)
		assert.ErrorIs(t, err, services.ErrTaskNotFound)
		assert.Nil(t, task)
	})
}

func TestTaskService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTaskReader(ctrl)
	mockWriter := services.NewMockTaskWriter(ctrl)
	svc := services.NewTaskService(mockReader, mockWriter)

	t.Run("full replace resets omitted fields to defaults", func(t *testing.T) {
		mockWriter.EXPECT().
			Update(gomock.Any(), int64(1), int64(10), "New title", nil, models.PriorityMedium, models.StatusPending, nil).
			Return(&models.TaskDB{
				ID:       10,
				UserID:   1,
				Title:    "New title",
				Priority: models.PriorityMedium,
				Status:   models.StatusPending,
			}, nil)

		task, err := svc.Update(context.Background(), 1, 10, models.TaskInput{Title: "New title"})
		assert.NoError(t, err)
		assert.Equal(t, models.PriorityMedium, task.Priority)
		assert.Equal(t, models.StatusPending, task.Status)
		assert.Nil(t, task.DueDate)
	})

	t.Run("missing or foreign-owned task", func(t *testing.T) {
		mockWriter.EXPECT().
			Update(gomock.Any(), int64(1), int64(99), "New title", nil, models.PriorityMedium, models.StatusPending, nil).
			Return(nil, nil)

		task, err := svc.Update(context.Background(), 1, 99, models.TaskInput{Title: "New title"})
		assert.ErrorIs(t, err, services.ErrTaskNotFound)
		assert.Nil(t, task)
	})

	t.Run("invalid input never reaches the writer", func(t *testing.T) {
		task, err := svc.Update(context.Background(), 1, 10, models.TaskInput{Title: "ok", Priority: "urgent"})

		var validationErr *services.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Nil(t, task)
	})
}

func TestTaskService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTaskReader(ctrl)
	mockWriter := services.NewMockTaskWriter(ctrl)
	svc := services.NewTaskService(mockReader, mockWriter)

	t.Run("owned task removed", func(t *testing.T) {
		mockWriter.EXPECT().Delete(gomock.Any(), int64(1), int64(10)).Return(true, nil)

		assert.NoError(t, svc.Delete(context.Background(), 1, 10))
	})

	t.Run("missing or foreign-owned task", func(t *testing.T) {
		mockWriter.EXPECT().Delete(gomock.Any(), int64(1), int64(99)).Return(false, nil)

		assert.ErrorIs(t, svc.Delete(context.Background(), 1, 99), services.ErrTaskNotFound)
	})

	t.Run("writer error", func(t *testing.T) {
		mockWriter.EXPECT().Delete(gomock.Any(), int64(1), int64(10)).Return(false, errors.New("db error"))

		assert.Error(t, svc.Delete(context.Background(), 1, 10))
	})
}
