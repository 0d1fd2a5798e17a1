package user_service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-service/internal/custom_errors"
	"blog-service/internal/logger"
	"blog-service/internal/model"
	user_repository_mock "blog-service/mocks/user"
)

func TestUserService_GetProfile(t *testing.T) {
	log := logger.New("test")
	userID := uuid.New()

	tests := []struct {
		name        string
		mocks       func(userRepo *user_repository_mock.Repository)
		want        *model.User
		wantErrType error
	}{
		{
			name: "Success strips password hash",
			mocks: func(userRepo *user_repository_mock.Repository) {
				userRepo.On("GetByID", mock.Anything, userID).Return(&model.User{ID: userID, Username: "alice", PasswordHash: "hash"}, nil)
			},
			want: &model.User{ID: userID, Username: "alice"},
		},
		{
			name: "Not found",
			mocks: func(userRepo *user_repository_mock.Repository) {
				userRepo.On("GetByID", mock.Anything, userID).Return(nil, custom_errors.ErrUserNotFound)
			},
			wantErrType: custom_errors.ErrUserNotFound,
		},
		{
			name: "Database error",
			mocks: func(userRepo *user_repository_mock.Repository) {
				userRepo.On("GetByID", mock.Anything, userID).Return(nil, custom_errors.ErrDatabaseQuery)
			},
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(user_repository_mock.Repository)
			tt.mocks(userRepo)

			s := NewUserService(userRepo, log)
			got, err := s.GetProfile(context.Background(), userID)

			if tt.wantErrType != nil {
				assert.True(t, errors.Is(err, tt.wantErrType), "expected %v, got %v", tt.wantErrType, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
			userRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_UpdateProfile(t *testing.T) {
	log := logger.New("test")
	identity := model.Identity{UserID: uuid.New(), Email: "a@x.com", Username: "alice"}

	t.Run("Name is required", func(t *testing.T) {
		userRepo := new(user_repository_mock.Repository)
		s := NewUserService(userRepo, log)

		_, err := s.UpdateProfile(context.Background(), identity, &model.UpdateProfileDTO{Bio: "bio"})
		require.Error(t, err)
		assert.ErrorIs(t, err, custom_errors.ErrInvalidInput)
		assert.Equal(t, MsgNameRequired, err.Error())
		userRepo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success", func(t *testing.T) {
		userRepo := new(user_repository_mock.Repository)
		dto := &model.UpdateProfileDTO{Name: "Alice"}
		userRepo.On("UpdateProfile", mock.Anything, identity.UserID, dto).Return(&model.User{ID: identity.UserID, Name: "Alice", PasswordHash: "hash"}, nil)
		s := NewUserService(userRepo, log)

		got, err := s.UpdateProfile(context.Background(), identity, dto)
		require.NoError(t, err)
		assert.Equal(t, "Alice", got.Name)
		assert.Empty(t, got.PasswordHash)
		userRepo.AssertExpectations(t)
	})

	t.Run("User vanished", func(t *testing.T) {
		userRepo := new(user_repository_mock.Repository)
		userRepo.On("UpdateProfile", mock.Anything, identity.UserID, mock.Anything).Return(nil, custom_errors.ErrUserNotFound)
		s := NewUserService(userRepo, log)

		_, err := s.UpdateProfile(context.Background(), identity, &model.UpdateProfileDTO{Name: "Alice"})
		assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)
		userRepo.AssertExpectations(t)
	})
}
