package repository

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"batshit/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestUserRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	tests := []struct {
		name          string
		userID        uint
		mockBehavior  func()
		expectedUser  *models.User
		expectedError bool
	}{
		{
			name:   "Success",
			userID: 1,
			mockBehavior: func() {
				rows := sqlmock.NewRows([]string{"id", "username", "email"}).
					AddRow(1, "testuser", "test@example.com")
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1 AND "users"."deleted_at" IS NULL ORDER BY "users"."id" LIMIT $2`)).
					WithArgs(1, 1).
					WillReturnRows(rows)
			},
			expectedUser: &models.User{ID: 1, Username: "testuser", Email: "test@example.com"},
		},
		{
			name:   "Not Found",
			userID: 99,
			mockBehavior: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1 AND "users"."deleted_at" IS NULL ORDER BY "users"."id" LIMIT $2`)).
					WithArgs(99, 1).
					WillReturnError(gorm.ErrRecordNotFound)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockBehavior()
			user, err := repo.GetByID(ctx, tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else if assert.NotNil(t, user) {
				assert.Equal(t, tt.expectedUser.Username, user.Username)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("absent user returns nil without error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1 AND "users"."deleted_at" IS NULL ORDER BY "users"."id" LIMIT $2`)).
			WithArgs("nobody@example.com", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		user, err := repo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_Search(t *testing.T) {
	repo := NewUserRepository(testDB)
	ctx := context.Background()

	ts := time.Now().UnixNano()
	alpha := &models.User{
		Username:  fmt.Sprintf("searchable_alpha_%d", ts),
		Email:     fmt.Sprintf("alpha_%d@example.com", ts),
		FirstName: "Zelda",
	}
	beta := &models.User{
		Username: fmt.Sprintf("searchable_beta_%d", ts),
		Email:    fmt.Sprintf("beta_%d@example.com", ts),
	}
	require.NoError(t, testDB.Create(alpha).Error)
	require.NoError(t, testDB.Create(beta).Error)

	t.Run("matches username substring case-insensitively", func(t *testing.T) {
		users, err := repo.Search(ctx, "SEARCHABLE", 0, 10)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(users), 2)
	})

	t.Run("matches first name", func(t *testing.T) {
		users, err := repo.Search(ctx, "zelda", 0, 10)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, alpha.Username, users[0].Username)
	})

	t.Run("excludes the requesting user", func(t *testing.T) {
		users, err := repo.Search(ctx, "searchable", alpha.ID, 10)
		require.NoError(t, err)
		for _, u := range users {
			assert.NotEqual(t, alpha.ID, u.ID)
		}
	})

	t.Run("caps results at ten", func(t *testing.T) {
		users, err := repo.Search(ctx, "searchable", 0, 50)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(users), 10)
	})
}

func TestUserRepository_CreateConflict(t *testing.T) {
	repo := NewUserRepository(testDB)
	ctx := context.Background()

	first := newTestUser(t, "conflict")

	dup := &models.User{
		Username: first.Username,
		Email:    first.Email,
		Password: "irrelevant",
	}
	err := repo.Create(ctx, dup)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestUserRepository_GetByUsername(t *testing.T) {
	repo := NewUserRepository(testDB)
	ctx := context.Background()

	user := newTestUser(t, "byname")

	found, err := repo.GetByUsername(ctx, user.Username)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)

	// Absent username is nil, nil — not an error.
	missing, err := repo.GetByUsername(ctx, fmt.Sprintf("nobody_%d", time.Now().UnixNano()))
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_UpdateAndDelete(t *testing.T) {
	repo := NewUserRepository(testDB)
	ctx := context.Background()

	user := newTestUser(t, "mutable")

	user.Bio = "updated bio"
	user.FirstName = "Edith"
	require.NoError(t, repo.Update(ctx, user))

	reloaded, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "updated bio", reloaded.Bio)
	assert.Equal(t, "Edith", reloaded.FirstName)

	require.NoError(t, repo.Delete(ctx, user.ID))

	_, err = repo.GetByID(ctx, user.ID)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)

	// Soft delete: the row survives with deleted_at set.
	var count int64
	require.NoError(t, testDB.Unscoped().Model(&models.User{}).
		Where("id = ? AND deleted_at IS NOT NULL", user.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
