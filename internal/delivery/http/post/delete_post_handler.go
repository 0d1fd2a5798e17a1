package post_http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"blog-service/internal/custom_errors"
	"blog-service/internal/delivery/http/middleware"
	"blog-service/internal/delivery/http/response"
	"blog-service/internal/logger"
)

type PostDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}

type DeletePostHandler struct {
	postService PostDeleter
	log         *logger.Logger
}

func NewDeletePostHandler(postService PostDeleter, log *logger.Logger) *DeletePostHandler {
	return &DeletePostHandler{
		postService: postService,
		log:         log,
	}
}

func (h *DeletePostHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, h.log, custom_errors.ErrUnauthenticated)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Fail(w, http.StatusBadRequest, MsgInvalidPostID)
		return
	}

	if err := h.postService.Delete(r.Context(), identity.UserID, id); err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Post deleted successfully", nil)
}
