package auth_service

import (
	"context"

	"blog-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/auth --outpkg mocks --filename AuthService.go
type Service interface {
	Register(ctx context.Context, dto *model.RegisterUserDTO) (*model.AuthResult, error)
	Authenticate(ctx context.Context, email, password string) (*model.AuthResult, error)
	VerifyToken(ctx context.Context, token string) (model.Identity, error)
}
