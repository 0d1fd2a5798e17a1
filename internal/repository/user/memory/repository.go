package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"blog-service/internal/custom_errors"
	"blog-service/internal/logger"
	"blog-service/internal/model"
)

type UserRepository struct {
	log   *logger.Logger
	mu    sync.RWMutex
	users map[uuid.UUID]*model.User
}

func NewUserRepository(log *logger.Logger) *UserRepository {
	return &UserRepository{
		log:   log,
		users: make(map[uuid.UUID]*model.User),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return nil, custom_errors.ErrUserAlreadyExists
		}
	}

	now := time.Now().UTC()
	newUser := *user
	newUser.ID = uuid.New()
	newUser.CreatedAt = now
	newUser.UpdatedAt = now
	r.users[newUser.ID] = &newUser

	result := newUser
	return &result, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[id]
	if !exists {
		r.log.Debug("User not found by id", slog.String("id", id.String()))
		return nil, custom_errors.ErrUserNotFound
	}

	result := *user
	return &result, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			result := *user
			return &result, nil
		}
	}
	return nil, custom_errors.ErrUserNotFound
}

func (r *UserRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email || user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, update *model.UpdateProfileDTO) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[id]
	if !exists {
		return nil, custom_errors.ErrUserNotFound
	}

	user.Name = update.Name
	user.Bio = update.Bio
	user.Avatar = update.Avatar
	user.UpdatedAt = time.Now().UTC()

	result := *user
	return &result, nil
}
