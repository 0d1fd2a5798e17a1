package user_repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-service/internal/custom_errors"
	"blog-service/internal/logger"
	"blog-service/internal/model"
	user_repository "blog-service/internal/repository/user"
	"blog-service/internal/repository/user/memory"
)

func setupUserTest(t *testing.T) user_repository.Repository {
	log := logger.New("test")
	return memory.NewUserRepository(log)
}

func TestUserRepository_Create(t *testing.T) {
	repo := setupUserTest(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.User{Email: "a@x.com", Username: "a", Name: "A", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	tests := []struct {
		name string
		user *model.User
	}{
		{name: "duplicate email", user: &model.User{Email: "a@x.com", Username: "other"}},
		{name: "duplicate username", user: &model.User{Email: "other@x.com", Username: "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Create(ctx, tt.user)
			assert.ErrorIs(t, err, custom_errors.ErrUserAlreadyExists)
			assert.Nil(t, got)
		})
	}
}

func TestUserRepository_Lookups(t *testing.T) {
	repo := setupUserTest(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.User{Email: "a@x.com", Username: "a", Name: "A"})
	require.NoError(t, err)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, byID.Email)

	byEmail, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)

	_, err = repo.GetByEmail(ctx, "missing@x.com")
	assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)

	exists, err := repo.ExistsByEmailOrUsername(ctx, "nobody@x.com", "a")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmailOrUsername(ctx, "nobody@x.com", "nobody")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	repo := setupUserTest(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.User{Email: "a@x.com", Username: "a", Name: "A", Bio: "old"})
	require.NoError(t, err)

	updated, err := repo.UpdateProfile(ctx, created.ID, &model.UpdateProfileDTO{Name: "B"})
	require.NoError(t, err)
	assert.Equal(t, "B", updated.Name)
	assert.Empty(t, updated.Bio)
	assert.Empty(t, updated.Avatar)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	_, err = repo.UpdateProfile(ctx, uuid.New(), &model.UpdateProfileDTO{Name: "B"})
	assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)
}
