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
	"blog-service/internal/model"
)

type PostUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, post *model.UpdatePostDTO) (*model.PostDetailed, error)
}

type UpdatePostHandler struct {
	postService PostUpdater
	log         *logger.Logger
}

func NewUpdatePostHandler(postService PostUpdater, log *logger.Logger) *UpdatePostHandler {
	return &UpdatePostHandler{
		postService: postService,
		log:         log,
	}
}

type UpdatePostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category,omitempty"`
}

func (h *UpdatePostHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	var req UpdatePostRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, h.log, err)
		return
	}

	// Empty title or content is rejected by the service after the ownership check.
	post, err := h.postService.Update(r.Context(), identity.UserID, id, &model.UpdatePostDTO{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Post updated successfully", response.Envelope{"post": post})
}
