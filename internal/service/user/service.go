package user_service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"blog-service/internal/custom_errors"
	"blog-service/internal/logger"
	"blog-service/internal/model"
	user_repository "blog-service/internal/repository/user"
)

const MsgNameRequired = "Name is required"

type UserService struct {
	userRepo user_repository.Repository
	log      *logger.Logger
}

func NewUserService(userRepo user_repository.Repository, log *logger.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		log:      log,
	}
}

func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("User not found", slog.String("user_id", userID.String()))
			return nil, custom_errors.ErrUserNotFound
		}
		s.log.Error("Failed to get user", slog.String("user_id", userID.String()), slog.String("error", err.Error()))
		return nil, err
	}
	return user.Sanitized(), nil
}

func (s *UserService) UpdateProfile(ctx context.Context, identity model.Identity, dto *model.UpdateProfileDTO) (*model.User, error) {
	if dto.Name == "" {
		return nil, custom_errors.NewInputError(MsgNameRequired)
	}

	user, err := s.userRepo.UpdateProfile(ctx, identity.UserID, dto)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("User not found for profile update", slog.String("user_id", identity.UserID.String()))
			return nil, custom_errors.ErrUserNotFound
		}
		s.log.Error("Failed to update profile", slog.String("user_id", identity.UserID.String()), slog.String("error", err.Error()))
		return nil, err
	}

	return user.Sanitized(), nil
}
