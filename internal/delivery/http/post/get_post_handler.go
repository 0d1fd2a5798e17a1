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

type PostGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.PostDetailed, error)
}

type GetPostHandler struct {
	postService PostGetter
	log         *logger.Logger
}

func NewGetPostHandler(postService PostGetter, log *logger.Logger) *GetPostHandler {
	return &GetPostHandler{
		postService: postService,
		log:         log,
	}
}

func (h *GetPostHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Fail(w, http.StatusBadRequest, MsgInvalidPostID)
		return
	}

	post, err := h.postService.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Post fetched successfully", response.Envelope{"post": post})
}
