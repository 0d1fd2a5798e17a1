package user_service

import (
	"context"

	"github.com/google/uuid"

	"blog-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/user --outpkg mocks --filename UserService.go
type Service interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error)
	UpdateProfile(ctx context.Context, identity model.Identity, dto *model.UpdateProfileDTO) (*model.User, error)
}
