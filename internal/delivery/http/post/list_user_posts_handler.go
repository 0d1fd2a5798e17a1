package post_http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"blog-service/internal/delivery/http/response"
	"blog-service/internal/logger"
	"blog-service/internal/model"
)

type UserPostsLister interface {
	ListByAuthorID(ctx context.Context, userID uuid.UUID) ([]*model.PostDetailed, error)
}

type ListUserPostsHandler struct {
	postService UserPostsLister
	log         *logger.Logger
}

func NewListUserPostsHandler(postService UserPostsLister, log *logger.Logger) *ListUserPostsHandler {
	return &ListUserPostsHandler{
		postService: postService,
		log:         log,
	}
}

func (h *ListUserPostsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		response.Fail(w, http.StatusBadRequest, MsgInvalidUserID)
		return
	}

	posts, err := h.postService.ListByAuthorID(r.Context(), userID)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "User posts fetched successfully", response.Envelope{"posts": posts})
}
