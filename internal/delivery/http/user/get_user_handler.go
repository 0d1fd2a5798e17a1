package user_http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"blog-service/internal/delivery/http/response"
	"blog-service/internal/logger"
	"blog-service/internal/model"
)

const MsgInvalidUserID = "Invalid user ID"

type ProfileGetter interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

type GetUserHandler struct {
	userService ProfileGetter
	log         *logger.Logger
}

func NewGetUserHandler(userService ProfileGetter, log *logger.Logger) *GetUserHandler {
	return &GetUserHandler{
		userService: userService,
		log:         log,
	}
}

func (h *GetUserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Fail(w, http.StatusBadRequest, MsgInvalidUserID)
		return
	}

	user, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "User profile fetched successfully", response.Envelope{"user": user})
}
