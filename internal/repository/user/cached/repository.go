package cached

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"blog-service/internal/cache"
	"blog-service/internal/custom_errors"
	"blog-service/internal/logger"
	"blog-service/internal/metrics"
	"blog-service/internal/model"
	user_repository "blog-service/internal/repository/user"
)

// UserRepository reads users through a cache and drops the cached entry
// whenever the profile changes. Cache failures never fail the call.
type UserRepository struct {
	repo    user_repository.Repository
	cache   cache.UserCache
	log     *logger.Logger
	metrics metrics.MetricsProvider
}

func NewUserRepository(
	repo user_repository.Repository,
	cache cache.UserCache,
	log *logger.Logger,
	metrics metrics.MetricsProvider,
) *UserRepository {
	return &UserRepository{
		repo:    repo,
		cache:   cache,
		log:     log,
		metrics: metrics,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	return r.repo.Create(ctx, user)
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	start := time.Now()
	cached, err := r.cache.GetUser(ctx, id)
	r.metrics.RecordCacheOperationDuration("user_get", time.Since(start))
	if err == nil {
		r.metrics.IncrementCacheHits()
		return cached, nil
	}

	r.metrics.IncrementCacheMisses()
	if !errors.Is(err, custom_errors.ErrCacheMiss) {
		r.log.Warn("Failed to read user from cache", slog.String("user_id", id.String()), slog.String("error", err.Error()))
	}

	user, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	start = time.Now()
	if err := r.cache.SetUser(ctx, user); err != nil {
		r.log.Warn("Failed to cache user", slog.String("user_id", id.String()), slog.String("error", err.Error()))
	}
	r.metrics.RecordCacheOperationDuration("user_set", time.Since(start))

	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.repo.GetByEmail(ctx, email)
}

func (r *UserRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	return r.repo.ExistsByEmailOrUsername(ctx, email, username)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, update *model.UpdateProfileDTO) (*model.User, error) {
	user, err := r.repo.UpdateProfile(ctx, id, update)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if err := r.cache.DeleteUser(ctx, id); err != nil {
		r.log.Warn("Failed to invalidate user cache", slog.String("user_id", id.String()), slog.String("error", err.Error()))
	}
	r.metrics.RecordCacheOperationDuration("user_delete", time.Since(start))

	return user, nil
}
