package auth_http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"blog-service/internal/delivery/http/middleware"
	"blog-service/internal/logger"
	auth_service "blog-service/internal/service/auth"
	user_service "blog-service/internal/service/user"
)

type AuthAPI struct {
	signupHandler *SignupHandler
	loginHandler  *LoginHandler
	meHandler     *MeHandler
}

func NewAuthAPI(authService auth_service.Service, userService user_service.Service, validate *validator.Validate, log *logger.Logger) *AuthAPI {
	return &AuthAPI{
		signupHandler: NewSignupHandler(authService, validate, log),
		loginHandler:  NewLoginHandler(authService, validate, log),
		meHandler:     NewMeHandler(userService, log),
	}
}

func (a *AuthAPI) Routes(r chi.Router) {
	r.Post("/signup", a.signupHandler.ServeHTTP)
	r.Post("/login", a.loginHandler.ServeHTTP)
	r.With(middleware.RequireAuth).Get("/me", a.meHandler.ServeHTTP)
}
