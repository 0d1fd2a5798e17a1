package auth_service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"blog-service/internal/custom_errors"
	"blog-service/internal/logger"
	"blog-service/internal/metrics"
	"blog-service/internal/model"
	user_repository "blog-service/internal/repository/user"
	"blog-service/internal/token"
)

const (
	MinPasswordLength = 6
	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72

	MsgAllFieldsRequired   = "All fields are required"
	MsgPasswordTooShort    = "Password must be at least 6 characters"
	MsgPasswordTooLong     = "Password must be at most 72 bytes"
	MsgCredentialsRequired = "Email and password are required"
	MsgInvalidCredentials  = "Invalid email or password"
	MsgUserAlreadyExists   = "User with this email or username already exists"
)

type AuthService struct {
	userRepo user_repository.Repository
	tokens   token.Issuer
	log      *logger.Logger
	metrics  metrics.MetricsProvider
	hashCost int
}

func NewAuthService(
	userRepo user_repository.Repository,
	tokens token.Issuer,
	log *logger.Logger,
	metrics metrics.MetricsProvider,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		log:      log,
		metrics:  metrics,
		hashCost: bcrypt.DefaultCost,
	}
}

func (s *AuthService) Register(ctx context.Context, dto *model.RegisterUserDTO) (*model.AuthResult, error) {
	result, err := s.register(ctx, dto)
	s.metrics.IncrementAuthOperations("register", err == nil)
	return result, err
}

func (s *AuthService) register(ctx context.Context, dto *model.RegisterUserDTO) (*model.AuthResult, error) {
	if dto.Email == "" || dto.Username == "" || dto.Password == "" || dto.Name == "" {
		return nil, custom_errors.NewInputError(MsgAllFieldsRequired)
	}
	if utf8.RuneCountInString(dto.Password) < MinPasswordLength {
		return nil, custom_errors.NewInputError(MsgPasswordTooShort)
	}
	if len(dto.Password) > MaxPasswordBytes {
		return nil, custom_errors.NewInputError(MsgPasswordTooLong)
	}

	exists, err := s.userRepo.ExistsByEmailOrUsername(ctx, dto.Email, dto.Username)
	if err != nil {
		s.log.Error("Failed to check user existence", slog.String("error", err.Error()))
		return nil, err
	}
	if exists {
		s.log.Debug("User already exists", slog.String("email", dto.Email), slog.String("username", dto.Username))
		return nil, custom_errors.ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.hashCost)
	if err != nil {
		s.log.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", custom_errors.ErrPasswordHash, err)
	}

	user, err := s.userRepo.Create(ctx, &model.User{
		Email:        dto.Email,
		Username:     dto.Username,
		Name:         dto.Name,
		PasswordHash: string(hash),
	})
	if err != nil {
		if !errors.Is(err, custom_errors.ErrUserAlreadyExists) {
			s.log.Error("Failed to create user", slog.String("error", err.Error()))
		}
		return nil, err
	}

	signed, err := s.tokens.Issue(user.Identity())
	if err != nil {
		s.log.Error("Failed to issue token", slog.String("user_id", user.ID.String()), slog.String("error", err.Error()))
		return nil, err
	}

	s.log.Info("User registered", slog.String("user_id", user.ID.String()))
	return &model.AuthResult{User: user.Sanitized(), Token: signed}, nil
}

func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*model.AuthResult, error) {
	result, err := s.authenticate(ctx, email, password)
	s.metrics.IncrementAuthOperations("login", err == nil)
	return result, err
}

func (s *AuthService) authenticate(ctx context.Context, email, password string) (*model.AuthResult, error) {
	if email == "" || password == "" {
		return nil, custom_errors.NewInputError(MsgCredentialsRequired)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			return nil, custom_errors.ErrInvalidCredentials
		}
		s.log.Error("Failed to get user by email", slog.String("error", err.Error()))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.log.Debug("Password mismatch", slog.String("user_id", user.ID.String()))
		return nil, custom_errors.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.Identity())
	if err != nil {
		s.log.Error("Failed to issue token", slog.String("user_id", user.ID.String()), slog.String("error", err.Error()))
		return nil, err
	}

	return &model.AuthResult{User: user.Sanitized(), Token: signed}, nil
}

func (s *AuthService) VerifyToken(ctx context.Context, tokenString string) (model.Identity, error) {
	identity, err := s.tokens.Verify(tokenString)
	if err != nil {
		s.log.Debug("Token rejected", slog.String("error", err.Error()))
		return model.Identity{}, custom_errors.ErrUnauthenticated
	}
	return identity, nil
}
