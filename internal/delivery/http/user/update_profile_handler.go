package user_http

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"

	"blog-service/internal/custom_errors"
	"blog-service/internal/delivery/http/middleware"
	"blog-service/internal/delivery/http/response"
	"blog-service/internal/logger"
	"blog-service/internal/model"
	user_service "blog-service/internal/service/user"
)

type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, identity model.Identity, dto *model.UpdateProfileDTO) (*model.User, error)
}

type UpdateProfileHandler struct {
	userService ProfileUpdater
	validate    *validator.Validate
	log         *logger.Logger
}

func NewUpdateProfileHandler(userService ProfileUpdater, validate *validator.Validate, log *logger.Logger) *UpdateProfileHandler {
	return &UpdateProfileHandler{
		userService: userService,
		validate:    validate,
		log:         log,
	}
}

type UpdateProfileRequest struct {
	Name   string `json:"name" validate:"required"`
	Bio    string `json:"bio"`
	Avatar string `json:"avatar"`
}

func (h *UpdateProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, h.log, custom_errors.ErrUnauthenticated)
		return
	}

	var req UpdateProfileRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, h.log, err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.Error(w, h.log, custom_errors.NewInputError(user_service.MsgNameRequired))
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), identity, &model.UpdateProfileDTO{
		Name:   req.Name,
		Bio:    req.Bio,
		Avatar: req.Avatar,
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", response.Envelope{"user": user})
}
