package user_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"blog-service/internal/custom_errors"
	"blog-service/internal/logger"
	"blog-service/internal/metrics"
	"blog-service/internal/model"
	"blog-service/internal/repository/postgres"
	"blog-service/internal/repository/postgres/db"
)

const userColumns = `id, email, username, name, password_hash, bio, avatar, created_at, updated_at`

type UserRepository struct {
	log     *logger.Logger
	db      db.PgDB
	metrics metrics.MetricsProvider
}

func NewUserRepository(db db.PgDB, log *logger.Logger, metrics metrics.MetricsProvider) *UserRepository {
	return &UserRepository{db: db, log: log, metrics: metrics}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	start := time.Now()
	now := time.Now().UTC()

	args := pgx.NamedArgs{
		"id":            uuid.New(),
		"email":         user.Email,
		"username":      user.Username,
		"name":          user.Name,
		"password_hash": user.PasswordHash,
		"bio":           user.Bio,
		"avatar":        user.Avatar,
		"created_at":    now,
		"updated_at":    now,
	}

	query := `
		INSERT INTO users (id, email, username, name, password_hash, bio, avatar, created_at, updated_at)
		VALUES (@id, @email, @username, @name, @password_hash, @bio, @avatar, @created_at, @updated_at)
		RETURNING ` + userColumns

	createdUser, err := scanUser(r.db.QueryRow(ctx, query, args))
	r.observe("user_create", start, err)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			r.log.Debug("User already exists", slog.String("email", user.Email), slog.String("username", user.Username))
			return nil, custom_errors.ErrUserAlreadyExists
		}
		r.log.Error("Error creating user", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return createdUser, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	start := time.Now()
	query := `SELECT ` + userColumns + ` FROM users WHERE id = @id`

	user, err := scanUser(r.db.QueryRow(ctx, query, pgx.NamedArgs{"id": id}))
	r.observe("user_get_by_id", start, err)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug("User not found by id", slog.String("id", id.String()))
			return nil, custom_errors.ErrUserNotFound
		}
		r.log.Error("Error getting user by id", slog.String("id", id.String()), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	start := time.Now()
	query := `SELECT ` + userColumns + ` FROM users WHERE email = @email`

	user, err := scanUser(r.db.QueryRow(ctx, query, pgx.NamedArgs{"email": email}))
	r.observe("user_get_by_email", start, err)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug("User not found by email")
			return nil, custom_errors.ErrUserNotFound
		}
		r.log.Error("Error getting user by email", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return user, nil
}

func (r *UserRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	start := time.Now()
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = @email OR username = @username)`

	var exists bool
	err := r.db.QueryRow(ctx, query, pgx.NamedArgs{"email": email, "username": username}).Scan(&exists)
	r.observe("user_exists", start, err)
	if err != nil {
		r.log.Error("Error checking user existence", slog.String("error", err.Error()))
		return false, custom_errors.ErrDatabaseQuery
	}
	return exists, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, update *model.UpdateProfileDTO) (*model.User, error) {
	start := time.Now()
	args := pgx.NamedArgs{
		"id":         id,
		"name":       update.Name,
		"bio":        update.Bio,
		"avatar":     update.Avatar,
		"updated_at": time.Now().UTC(),
	}

	query := `
		UPDATE users SET name = @name, bio = @bio, avatar = @avatar, updated_at = @updated_at
		WHERE id = @id
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, args))
	r.observe("user_update", start, err)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug("User not found by id during UpdateProfile", slog.String("id", id.String()))
			return nil, custom_errors.ErrUserNotFound
		}
		r.log.Error("Error updating user profile", slog.String("id", id.String()), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return user, nil
}

func (r *UserRepository) observe(queryType string, start time.Time, err error) {
	success := err == nil || errors.Is(err, pgx.ErrNoRows)
	r.metrics.IncrementDatabaseQueries(queryType, success)
	r.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.Name,
		&user.PasswordHash,
		&user.Bio,
		&user.Avatar,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}
