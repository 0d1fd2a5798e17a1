package user_http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"blog-service/internal/delivery/http/middleware"
	"blog-service/internal/logger"
	user_service "blog-service/internal/service/user"
)

type UserAPI struct {
	getUserHandler       *GetUserHandler
	updateProfileHandler *UpdateProfileHandler
}

func NewUserAPI(userService user_service.Service, validate *validator.Validate, log *logger.Logger) *UserAPI {
	return &UserAPI{
		getUserHandler:       NewGetUserHandler(userService, log),
		updateProfileHandler: NewUpdateProfileHandler(userService, validate, log),
	}
}

func (a *UserAPI) Routes(r chi.Router) {
	r.With(middleware.RequireAuth).Put("/profile", a.updateProfileHandler.ServeHTTP)
	r.Get("/{id}", a.getUserHandler.ServeHTTP)
}
