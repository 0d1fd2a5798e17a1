package post_http

import (
	"context"
	"net/http"

	"blog-service/internal/delivery/http/response"
	"blog-service/internal/logger"
	"blog-service/internal/model"
)

type PublishedLister interface {
	ListPublished(ctx context.Context) ([]*model.PostDetailed, error)
}

type ListPostsHandler struct {
	postService PublishedLister
	log         *logger.Logger
}

func NewListPostsHandler(postService PublishedLister, log *logger.Logger) *ListPostsHandler {
	return &ListPostsHandler{
		postService: postService,
		log:         log,
	}
}

func (h *ListPostsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.ListPublished(r.Context())
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Posts fetched successfully", response.Envelope{"posts": posts})
}
