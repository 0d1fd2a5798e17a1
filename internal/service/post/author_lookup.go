package post_service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"blog-service/internal/custom_errors"
	"blog-service/internal/model"
	user_repository "blog-service/internal/repository/user"
)

// authorLookup resolves authors once per request. A missing author is
// remembered as nil so orphaned posts still render.
type authorLookup struct {
	userRepo user_repository.Repository
	seen     map[uuid.UUID]*model.User
}

func newAuthorLookup(userRepo user_repository.Repository) *authorLookup {
	return &authorLookup{
		userRepo: userRepo,
		seen:     make(map[uuid.UUID]*model.User),
	}
}

func (a *authorLookup) get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if user, ok := a.seen[id]; ok {
		return user, nil
	}

	user, err := a.userRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, custom_errors.ErrUserNotFound) {
			return nil, err
		}
		user = nil
	}

	a.seen[id] = user
	return user, nil
}
