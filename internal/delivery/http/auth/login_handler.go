package auth_http

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"

	"blog-service/internal/custom_errors"
	"blog-service/internal/delivery/http/response"
	"blog-service/internal/logger"
	"blog-service/internal/model"
	auth_service "blog-service/internal/service/auth"
)

type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*model.AuthResult, error)
}

type LoginHandler struct {
	authService Authenticator
	validate    *validator.Validate
	log         *logger.Logger
}

func NewLoginHandler(authService Authenticator, validate *validator.Validate, log *logger.Logger) *LoginHandler {
	return &LoginHandler{
		authService: authService,
		validate:    validate,
		log:         log,
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, h.log, err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.Error(w, h.log, custom_errors.NewInputError(auth_service.MsgCredentialsRequired))
		return
	}

	result, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Login successful", response.Envelope{
		"user":  result.User,
		"token": result.Token,
	})
}
