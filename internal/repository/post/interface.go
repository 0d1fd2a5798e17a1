package post_repository

import (
	"context"

	"github.com/google/uuid"

	"blog-service/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/post --outpkg mocks --filename Repository.go
type Repository interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	// IncrementViews bumps the view counter and returns the post as stored after the bump.
	IncrementViews(ctx context.Context, id uuid.UUID) (*model.Post, error)
	Update(ctx context.Context, post *model.Post) (*model.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters model.PostFilters) ([]*model.Post, error)
}
