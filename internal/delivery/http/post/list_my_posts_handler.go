package post_http

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

type AuthorLister interface {
	ListByAuthor(ctx context.Context, userID uuid.UUID) ([]*model.PostDetailed, error)
}

type ListMyPostsHandler struct {
	postService AuthorLister
	log         *logger.Logger
}

func NewListMyPostsHandler(postService AuthorLister, log *logger.Logger) *ListMyPostsHandler {
	return &ListMyPostsHandler{
		postService: postService,
		log:         log,
	}
}

func (h *ListMyPostsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, h.log, custom_errors.ErrUnauthenticated)
		return
	}

	posts, err := h.postService.ListByAuthor(r.Context(), identity.UserID)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "My posts fetched successfully", response.Envelope{"posts": posts})
}
