package auth_http

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"blog-service/internal/custom_errors"
	"blog-service/internal/delivery/http/middleware"
	"blog-service/internal/delivery/http/response"
	"blog-service/internal/logger"
	"blog-service/internal/model"
)

type ProfileGetter interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

type MeHandler struct {
	userService ProfileGetter
	log         *logger.Logger
}

func NewMeHandler(userService ProfileGetter, log *logger.Logger) *MeHandler {
	return &MeHandler{
		userService: userService,
		log:         log,
	}
}

func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, h.log, custom_errors.ErrUnauthenticated)
		return
	}

	user, err := h.userService.GetProfile(r.Context(), identity.UserID)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "User data retrieved", response.Envelope{"user": user})
}
