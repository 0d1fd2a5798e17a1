package auth_http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"blog-service/internal/custom_errors"
	"blog-service/internal/delivery/http/response"
	"blog-service/internal/logger"
	"blog-service/internal/model"
	auth_service "blog-service/internal/service/auth"
)

type Registrar interface {
	Register(ctx context.Context, dto *model.RegisterUserDTO) (*model.AuthResult, error)
}

type SignupHandler struct {
	authService Registrar
	validate    *validator.Validate
	log         *logger.Logger
}

func NewSignupHandler(authService Registrar, validate *validator.Validate, log *logger.Logger) *SignupHandler {
	return &SignupHandler{
		authService: authService,
		validate:    validate,
		log:         log,
	}
}

type SignupRequest struct {
	Email    string `json:"email" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name" validate:"required"`
}

func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, h.log, err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.Error(w, h.log, signupValidationError(err))
		return
	}

	result, err := h.authService.Register(r.Context(), &model.RegisterUserDTO{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.Success(w, http.StatusCreated, "User created successfully", response.Envelope{
		"user":  result.User,
		"token": result.Token,
	})
}

func signupValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fe := range validationErrs {
			if fe.Tag() == "required" {
				return custom_errors.NewInputError(auth_service.MsgAllFieldsRequired)
			}
		}
		for _, fe := range validationErrs {
			if fe.Tag() == "max" {
				return custom_errors.NewInputError(auth_service.MsgPasswordTooLong)
			}
		}
		return custom_errors.NewInputError(auth_service.MsgPasswordTooShort)
	}
	return custom_errors.NewInputError(auth_service.MsgAllFieldsRequired)
}
