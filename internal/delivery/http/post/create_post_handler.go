package post_http

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"

	"blog-service/internal/custom_errors"
	"blog-service/internal/delivery/http/middleware"
	"blog-service/internal/delivery/http/response"
	"blog-service/internal/logger"
	"blog-service/internal/model"
	post_service "blog-service/internal/service/post"
)

type PostCreator interface {
	Create(ctx context.Context, post *model.CreatePostDTO) (*model.PostDetailed, error)
}

type CreatePostHandler struct {
	postService PostCreator
	validate    *validator.Validate
	log         *logger.Logger
}

func NewCreatePostHandler(postService PostCreator, validate *validator.Validate, log *logger.Logger) *CreatePostHandler {
	return &CreatePostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

type CreatePostRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category,omitempty"`
}

func (h *CreatePostHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, h.log, custom_errors.ErrUnauthenticated)
		return
	}

	var req CreatePostRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, h.log, err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.Error(w, h.log, custom_errors.NewInputError(post_service.MsgTitleContentRequired))
		return
	}

	post, err := h.postService.Create(r.Context(), &model.CreatePostDTO{
		AuthorID: identity.UserID,
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.Success(w, http.StatusCreated, "Post created successfully", response.Envelope{"post": post})
}
