package post_service

import (
	"context"

	"github.com/google/uuid"

	"blog-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/post --outpkg mocks --filename PostService.go
type Service interface {
	ListPublished(ctx context.Context) ([]*model.PostDetailed, error)
	ListByAuthor(ctx context.Context, userID uuid.UUID) ([]*model.PostDetailed, error)
	ListByAuthorID(ctx context.Context, userID uuid.UUID) ([]*model.PostDetailed, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.PostDetailed, error)
	Create(ctx context.Context, post *model.CreatePostDTO) (*model.PostDetailed, error)
	Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, post *model.UpdatePostDTO) (*model.PostDetailed, error)
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}
