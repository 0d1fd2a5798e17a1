package post_service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"blog-service/internal/custom_errors"
	"blog-service/internal/logger"
	"blog-service/internal/metrics"
	"blog-service/internal/model"
	post_repository "blog-service/internal/repository/post"
	user_repository "blog-service/internal/repository/user"
)

const MsgTitleContentRequired = "Title and content are required"

type PostService struct {
	postRepo post_repository.Repository
	userRepo user_repository.Repository
	log      *logger.Logger
	metrics  metrics.MetricsProvider
}

func NewPostService(
	postRepo post_repository.Repository,
	userRepo user_repository.Repository,
	log *logger.Logger,
	metrics metrics.MetricsProvider,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		log:      log,
		metrics:  metrics,
	}
}

func (s *PostService) ListPublished(ctx context.Context) ([]*model.PostDetailed, error) {
	return s.list(ctx, "list_published", model.PostFilters{PublishedOnly: true})
}

func (s *PostService) ListByAuthor(ctx context.Context, userID uuid.UUID) ([]*model.PostDetailed, error) {
	return s.list(ctx, "list_mine", model.PostFilters{AuthorID: &userID})
}

func (s *PostService) ListByAuthorID(ctx context.Context, userID uuid.UUID) ([]*model.PostDetailed, error) {
	return s.list(ctx, "list_by_user", model.PostFilters{AuthorID: &userID, PublishedOnly: true})
}

func (s *PostService) list(ctx context.Context, operation string, filters model.PostFilters) ([]*model.PostDetailed, error) {
	posts, err := s.postRepo.List(ctx, filters)
	if err != nil {
		s.log.Error("Failed to list posts", slog.String("operation", operation), slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations(operation, false)
		return nil, err
	}

	authors := newAuthorLookup(s.userRepo)
	result := make([]*model.PostDetailed, 0, len(posts))
	for _, post := range posts {
		author, err := authors.get(ctx, post.AuthorID)
		if err != nil {
			s.log.Error("Failed to get author", slog.String("author_id", post.AuthorID.String()), slog.String("error", err.Error()))
			s.metrics.IncrementPostOperations(operation, false)
			return nil, err
		}
		result = append(result, model.NewPostDetailed(post, author))
	}

	s.metrics.IncrementPostOperations(operation, true)
	return result, nil
}

func (s *PostService) GetByID(ctx context.Context, id uuid.UUID) (*model.PostDetailed, error) {
	post, err := s.postRepo.IncrementViews(ctx, id)
	if err != nil {
		s.metrics.IncrementPostOperations("get", false)
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found", slog.String("id", id.String()))
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post by id", slog.String("id", id.String()), slog.String("error", err.Error()))
		return nil, err
	}

	detailed, err := s.detailed(ctx, post)
	s.metrics.IncrementPostOperations("get", err == nil)
	return detailed, err
}

func (s *PostService) Create(ctx context.Context, dto *model.CreatePostDTO) (*model.PostDetailed, error) {
	if dto.Title == "" || dto.Content == "" {
		return nil, custom_errors.NewInputError(MsgTitleContentRequired)
	}

	author, err := s.userRepo.GetByID(ctx, dto.AuthorID)
	if err != nil {
		s.metrics.IncrementPostOperations("create", false)
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("Author not found for new post", slog.String("author_id", dto.AuthorID.String()))
			return nil, custom_errors.ErrUserNotFound
		}
		s.log.Error("Failed to get author", slog.String("author_id", dto.AuthorID.String()), slog.String("error", err.Error()))
		return nil, err
	}

	post := &model.Post{
		AuthorID:  dto.AuthorID,
		Published: true,
	}
	post.SetContent(dto.Title, dto.Content, dto.Category)

	created, err := s.postRepo.Create(ctx, post)
	if err != nil {
		s.log.Error("Failed to create post", slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("create", false)
		return nil, err
	}

	s.log.Info("Post created", slog.String("id", created.ID.String()), slog.String("author_id", created.AuthorID.String()))
	s.metrics.IncrementPostOperations("create", true)
	return model.NewPostDetailed(created, author), nil
}

func (s *PostService) Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, dto *model.UpdatePostDTO) (*model.PostDetailed, error) {
	existing, err := s.ownedPost(ctx, userID, id)
	if err != nil {
		s.metrics.IncrementPostOperations("update", false)
		return nil, err
	}

	if dto.Title == "" || dto.Content == "" {
		s.metrics.IncrementPostOperations("update", false)
		return nil, custom_errors.NewInputError(MsgTitleContentRequired)
	}

	existing.SetContent(dto.Title, dto.Content, dto.Category)
	updated, err := s.postRepo.Update(ctx, existing)
	if err != nil {
		s.metrics.IncrementPostOperations("update", false)
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to update post", slog.String("id", id.String()), slog.String("error", err.Error()))
		return nil, err
	}

	detailed, err := s.detailed(ctx, updated)
	s.metrics.IncrementPostOperations("update", err == nil)
	return detailed, err
}

func (s *PostService) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if _, err := s.ownedPost(ctx, userID, id); err != nil {
		s.metrics.IncrementPostOperations("delete", false)
		return err
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		s.metrics.IncrementPostOperations("delete", false)
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to delete post", slog.String("id", id.String()), slog.String("error", err.Error()))
		return err
	}

	s.log.Info("Post deleted", slog.String("id", id.String()))
	s.metrics.IncrementPostOperations("delete", true)
	return nil
}

// ownedPost loads the post and checks that userID wrote it.
func (s *PostService) ownedPost(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found", slog.String("id", id.String()))
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post by id", slog.String("id", id.String()), slog.String("error", err.Error()))
		return nil, err
	}

	if !post.IsOwnedBy(userID) {
		s.log.Debug("User is not author of post", slog.String("user_id", userID.String()), slog.String("author_id", post.AuthorID.String()))
		return nil, custom_errors.ErrForbidden
	}

	return post, nil
}

func (s *PostService) detailed(ctx context.Context, post *model.Post) (*model.PostDetailed, error) {
	author, err := newAuthorLookup(s.userRepo).get(ctx, post.AuthorID)
	if err != nil {
		s.log.Error("Failed to get author", slog.String("author_id", post.AuthorID.String()), slog.String("error", err.Error()))
		return nil, err
	}
	return model.NewPostDetailed(post, author), nil
}
