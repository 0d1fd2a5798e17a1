package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"blog-service/internal/custom_errors"
	"blog-service/internal/logger"
	"blog-service/internal/model"
)

type PostRepository struct {
	log   *logger.Logger
	mu    sync.RWMutex
	posts map[uuid.UUID]*model.Post
	// seq breaks created_at ties so listing order is stable.
	seq   map[uuid.UUID]int64
	next  int64
	clock func() time.Time
}

func NewPostRepository(log *logger.Logger) *PostRepository {
	return &PostRepository{
		log:   log,
		posts: make(map[uuid.UUID]*model.Post),
		seq:   make(map[uuid.UUID]int64),
		clock: func() time.Time { return time.Now().UTC() },
	}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.clock()
	newPost := clonePost(post)
	newPost.ID = uuid.New()
	newPost.CreatedAt = now
	newPost.UpdatedAt = now
	if newPost.Tags == nil {
		newPost.Tags = []string{}
	}

	p.posts[newPost.ID] = newPost
	p.next++
	p.seq[newPost.ID] = p.next

	return clonePost(newPost), nil
}

func (p *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	post, exists := p.posts[id]
	if !exists {
		p.log.Debug("Post not found by id", slog.String("id", id.String()))
		return nil, custom_errors.ErrPostNotFound
	}

	return clonePost(post), nil
}

func (p *PostRepository) IncrementViews(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	post, exists := p.posts[id]
	if !exists {
		return nil, custom_errors.ErrPostNotFound
	}
	post.Views++

	return clonePost(post), nil
}

func (p *PostRepository) Update(ctx context.Context, update *model.Post) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	post, exists := p.posts[update.ID]
	if !exists {
		return nil, custom_errors.ErrPostNotFound
	}

	post.Title = update.Title
	post.Content = update.Content
	post.Excerpt = update.Excerpt
	post.Tags = append([]string{}, update.Tags...)
	post.UpdatedAt = p.clock()

	return clonePost(post), nil
}

func (p *PostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.posts[id]; !exists {
		return custom_errors.ErrPostNotFound
	}

	delete(p.posts, id)
	delete(p.seq, id)
	return nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make([]*model.Post, 0)
	for _, post := range p.posts {
		if filters.AuthorID != nil && post.AuthorID != *filters.AuthorID {
			continue
		}
		if filters.PublishedOnly && !post.Published {
			continue
		}
		result = append(result, clonePost(post))
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return p.seq[result[i].ID] > p.seq[result[j].ID]
	})

	return result, nil
}

func clonePost(post *model.Post) *model.Post {
	c := *post
	if post.Tags != nil {
		c.Tags = append([]string{}, post.Tags...)
	}
	return &c
}
