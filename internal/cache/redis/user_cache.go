package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"blog-service/internal/custom_errors"
	"blog-service/internal/logger"
	"blog-service/internal/model"
)

const (
	userCacheKeyPrefix = "user:"
	userCacheTTL       = 15 * time.Minute
)

type UserCache struct {
	client *Client
	log    *logger.Logger
	ttl    time.Duration
}

func NewUserCache(client *Client, log *logger.Logger) *UserCache {
	return &UserCache{
		client: client,
		log:    log,
		ttl:    userCacheTTL,
	}
}

func (u *UserCache) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	var user model.User
	err := u.client.Get(ctx, userKey(userID), &user)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			return nil, custom_errors.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get user from cache: %w", err)
	}

	u.log.Debug("User cache hit", slog.String("user_id", userID.String()))
	return &user, nil
}

func (u *UserCache) SetUser(ctx context.Context, user *model.User) error {
	if user == nil {
		return fmt.Errorf("user cannot be nil")
	}

	if err := u.client.Set(ctx, userKey(user.ID), user.Sanitized(), u.ttl); err != nil {
		return fmt.Errorf("failed to set user cache: %w", err)
	}

	u.log.Debug("User cached successfully",
		slog.String("user_id", user.ID.String()),
		slog.Duration("ttl", u.ttl))
	return nil
}

func (u *UserCache) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := u.client.Delete(ctx, userKey(userID)); err != nil {
		return fmt.Errorf("failed to delete user from cache: %w", err)
	}
	return nil
}

func userKey(userID uuid.UUID) string {
	return userCacheKeyPrefix + userID.String()
}
