package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

var userColumns = []string{"id", "email", "name", "password_hash", "created_at"}

func TestUserReadRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()

	query := regexp.QuoteMeta("SELECT id, email, name, password_hash, created_at FROM users WHERE email = $1")

	t.Run("found", func(t *testing.T) {
		createdAt := time.Now()
		mock.ExpectQuery(query).
			WithArgs("alice@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(int64(1), "alice@example.com", "Alice", "$2a$10$hash", createdAt))

		user, err := repo.GetByEmail(ctx, "alice@example.com")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "$2a$10$hash", user.PasswordHash)
	})

	t.Run("not found yields nil, not error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("ghost@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns))

		user, err := repo.GetByEmail(ctx, "ghost@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("alice@example.com").
			WillReturnError(errors.New("db down"))

		user, err := repo.GetByEmail(ctx, "alice@example.com")
		assert.Error(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()

	query := regexp.QuoteMeta("SELECT id, email, name, password_hash, created_at FROM users WHERE id = $1")

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(int64(1), "alice@example.com", "Alice", "$2a$10$hash", time.Now()))

		user, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "Alice", user.Name)
	})

	t.Run("not found yields nil, not error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows(userColumns))

		user, err := repo.GetByID(ctx, 42)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	query := regexp.QuoteMeta("INSERT INTO users (email, name, password_hash) VALUES ($1, $2, $3) RETURNING id, email, name, password_hash, created_at")

	t.Run("inserted row returned", func(t *testing.T) {
		createdAt := time.Now()
		mock.ExpectQuery(query).
			WithArgs("alice@example.com", "Alice", "$2a$10$hash").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(int64(1), "alice@example.com", "Alice", "$2a$10$hash", createdAt))

		user, err := repo.Save(ctx, "alice@example.com", "Alice", "$2a$10$hash")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, createdAt, user.CreatedAt)
	})

	t.Run("constraint violation surfaces untranslated", func(t *testing.T) {
		uniqueErr := errors.New("duplicate key value violates unique constraint \"users_email_key\"")
		mock.ExpectQuery(query).
			WithArgs("alice@example.com", "Alice", "$2a$10$hash").
			WillReturnError(uniqueErr)

		user, err := repo.Save(ctx, "alice@example.com", "Alice", "$2a$10$hash")
		assert.ErrorIs(t, err, uniqueErr)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
