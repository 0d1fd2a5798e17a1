package post_http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"blog-service/internal/delivery/http/middleware"
	"blog-service/internal/logger"
	post_service "blog-service/internal/service/post"
)

const (
	MsgInvalidPostID = "Invalid post ID"
	MsgInvalidUserID = "Invalid user ID"
)

type PostAPI struct {
	listPostsHandler     *ListPostsHandler
	listMyPostsHandler   *ListMyPostsHandler
	listUserPostsHandler *ListUserPostsHandler
	getPostHandler       *GetPostHandler
	createPostHandler    *CreatePostHandler
	updatePostHandler    *UpdatePostHandler
	deletePostHandler    *DeletePostHandler
}

func NewPostAPI(postService post_service.Service, validate *validator.Validate, log *logger.Logger) *PostAPI {
	return &PostAPI{
		listPostsHandler:     NewListPostsHandler(postService, log),
		listMyPostsHandler:   NewListMyPostsHandler(postService, log),
		listUserPostsHandler: NewListUserPostsHandler(postService, log),
		getPostHandler:       NewGetPostHandler(postService, log),
		createPostHandler:    NewCreatePostHandler(postService, validate, log),
		updatePostHandler:    NewUpdatePostHandler(postService, log),
		deletePostHandler:    NewDeletePostHandler(postService, log),
	}
}

func (a *PostAPI) Routes(r chi.Router) {
	r.Get("/", a.listPostsHandler.ServeHTTP)
	r.Get("/by-user/{userId}", a.listUserPostsHandler.ServeHTTP)
	r.Get("/{id}", a.getPostHandler.ServeHTTP)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/", a.createPostHandler.ServeHTTP)
		r.Get("/mine", a.listMyPostsHandler.ServeHTTP)
		r.Put("/{id}", a.updatePostHandler.ServeHTTP)
		r.Delete("/{id}", a.deletePostHandler.ServeHTTP)
	})
}
