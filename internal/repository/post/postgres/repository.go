package post_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"blog-service/internal/custom_errors"
	"blog-service/internal/logger"
	"blog-service/internal/metrics"
	"blog-service/internal/model"
	"blog-service/internal/repository/postgres/db"
)

const postColumns = `id, author_id, title, content, excerpt, tags, published, likes, views, created_at, updated_at`

type PostRepository struct {
	log     *logger.Logger
	db      db.PgDB
	metrics metrics.MetricsProvider
}

func NewPostRepository(db db.PgDB, log *logger.Logger, metrics metrics.MetricsProvider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metrics}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	start := time.Now()
	now := time.Now().UTC()

	tags := post.Tags
	if tags == nil {
		tags = []string{}
	}

	args := pgx.NamedArgs{
		"id":         uuid.New(),
		"author_id":  post.AuthorID,
		"title":      post.Title,
		"content":    post.Content,
		"excerpt":    post.Excerpt,
		"tags":       tags,
		"published":  post.Published,
		"likes":      post.Likes,
		"views":      post.Views,
		"created_at": now,
		"updated_at": now,
	}

	query := `
		INSERT INTO posts (id, author_id, title, content, excerpt, tags, published, likes, views, created_at, updated_at)
		VALUES (@id, @author_id, @title, @content, @excerpt, @tags, @published, @likes, @views, @created_at, @updated_at)
		RETURNING ` + postColumns

	createdPost, err := scanPost(p.db.QueryRow(ctx, query, args))
	p.observe("post_create", start, err)
	if err != nil {
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return createdPost, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	start := time.Now()
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = @id`

	post, err := scanPost(p.db.QueryRow(ctx, query, pgx.NamedArgs{"id": id}))
	p.observe("post_get_by_id", start, err)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id", slog.String("id", id.String()))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by id", slog.String("id", id.String()), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return post, nil
}

func (p *PostRepository) IncrementViews(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	start := time.Now()
	query := `UPDATE posts SET views = views + 1 WHERE id = @id RETURNING ` + postColumns

	post, err := scanPost(p.db.QueryRow(ctx, query, pgx.NamedArgs{"id": id}))
	p.observe("post_increment_views", start, err)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id during IncrementViews", slog.String("id", id.String()))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error incrementing post views", slog.String("id", id.String()), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return post, nil
}

func (p *PostRepository) Update(ctx context.Context, post *model.Post) (*model.Post, error) {
	start := time.Now()

	tags := post.Tags
	if tags == nil {
		tags = []string{}
	}

	args := pgx.NamedArgs{
		"id":         post.ID,
		"title":      post.Title,
		"content":    post.Content,
		"excerpt":    post.Excerpt,
		"tags":       tags,
		"updated_at": time.Now().UTC(),
	}

	query := `
		UPDATE posts SET title = @title, content = @content, excerpt = @excerpt, tags = @tags, updated_at = @updated_at
		WHERE id = @id
		RETURNING ` + postColumns

	updatedPost, err := scanPost(p.db.QueryRow(ctx, query, args))
	p.observe("post_update", start, err)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id during Update", slog.String("id", post.ID.String()))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error updating post", slog.String("id", post.ID.String()), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return updatedPost, nil
}

func (p *PostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	result, err := p.db.Exec(ctx, `DELETE FROM posts WHERE id = @id`, pgx.NamedArgs{"id": id})
	p.observe("post_delete", start, err)
	if err != nil {
		p.log.Error("Error deleting post", slog.String("id", id.String()), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		return custom_errors.ErrPostNotFound
	}
	return nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, error) {
	start := time.Now()
	args := pgx.NamedArgs{}
	query := `SELECT ` + postColumns + ` FROM posts`

	var whereClauses []string
	if filters.AuthorID != nil {
		whereClauses = append(whereClauses, "author_id = @author_id")
		args["author_id"] = *filters.AuthorID
	}
	if filters.PublishedOnly {
		whereClauses = append(whereClauses, "published = TRUE")
	}
	if len(whereClauses) > 0 {
		query += " WHERE " + strings.Join(whereClauses, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		p.observe("post_list", start, err)
		p.log.Error("Error listing posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	posts := make([]*model.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			p.observe("post_list", start, err)
			p.log.Error("Error scanning post during List", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, post)
	}

	err = rows.Err()
	p.observe("post_list", start, err)
	if err != nil {
		p.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return posts, nil
}

func (p *PostRepository) observe(queryType string, start time.Time, err error) {
	success := err == nil || errors.Is(err, pgx.ErrNoRows)
	p.metrics.IncrementDatabaseQueries(queryType, success)
	p.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func scanPost(row pgx.Row) (*model.Post, error) {
	post := &model.Post{}
	err := row.Scan(
		&post.ID,
		&post.AuthorID,
		&post.Title,
		&post.Content,
		&post.Excerpt,
		&post.Tags,
		&post.Published,
		&post.Likes,
		&post.Views,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return post, nil
}
