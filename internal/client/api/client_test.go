package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-service/internal/client/api"
	"blog-service/internal/client/storage"
	"blog-service/internal/client/store"
	delivery_http "blog-service/internal/delivery/http"
	"blog-service/internal/logger"
	"blog-service/internal/metrics/prometheus"
	"blog-service/internal/model"
	post_memory "blog-service/internal/repository/post/memory"
	user_memory "blog-service/internal/repository/user/memory"
	auth_service "blog-service/internal/service/auth"
	post_service "blog-service/internal/service/post"
	user_service "blog-service/internal/service/user"
	"blog-service/internal/token"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logger.New("test")
	metrics := prometheus.NewPrometheusMetricsProvider()

	userRepo := user_memory.NewUserRepository(log)
	postRepo := post_memory.NewPostRepository(log)
	tokens := token.NewManager("test-secret", time.Hour)

	srv := httptest.NewServer(delivery_http.NewRouter(delivery_http.RouterDeps{
		AuthService: auth_service.NewAuthService(userRepo, tokens, log, metrics),
		UserService: user_service.NewUserService(userRepo, log),
		PostService: post_service.NewPostService(postRepo, userRepo, log, metrics),
		Metrics:     metrics,
		Log:         log,
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, baseURL string, tokens store.TokenStorage) *api.Client {
	t.Helper()
	log := logger.New("test")
	return api.NewClient(baseURL, nil, store.New(tokens, log), log)
}

func signup(t *testing.T, c *api.Client, name string) {
	t.Helper()
	require.NoError(t, c.Signup(context.Background(), &model.RegisterUserDTO{
		Email:    name + "@example.com",
		Username: name,
		Password: "secret1",
		Name:     name,
	}))
}

func TestClient_AuthFlow(t *testing.T) {
	srv := newTestServer(t)
	tokens := storage.NewMemoryTokenStorage("")
	c := newTestClient(t, srv.URL, tokens)
	ctx := context.Background()

	signup(t, c, "alice")

	state := c.Store().GetState()
	require.NotNil(t, state.Auth.User)
	assert.Equal(t, "alice", state.Auth.User.Username)
	assert.Equal(t, store.StatusSucceeded, state.Auth.Status)
	saved, _ := tokens.Load()
	assert.Equal(t, state.Auth.Token, saved)

	c.Logout()
	assert.Equal(t, store.GuardRedirectLogin, c.Store().RequireAuth())
	saved, _ = tokens.Load()
	assert.Empty(t, saved)

	err := c.Login(ctx, "alice@example.com", "wrong-password")
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	state = c.Store().GetState()
	assert.Equal(t, store.StatusFailed, state.Auth.Status)
	assert.Equal(t, "Invalid email or password", state.Auth.Error)

	require.NoError(t, c.Login(ctx, "alice@example.com", "secret1"))
	state = c.Store().GetState()
	assert.Empty(t, state.Auth.Error)
	assert.Equal(t, store.GuardAllow, c.Store().RequireAuth())

	// A second client sharing the persisted token only knows the token.
	restored := newTestClient(t, srv.URL, tokens)
	assert.Equal(t, store.GuardFetchUser, restored.Store().RequireAuth())
	require.NoError(t, restored.EnsureUser(ctx))
	assert.Equal(t, "alice", restored.Store().GetState().Auth.User.Username)

	name := "Alice A."
	user, err := restored.UpdateProfile(ctx, &model.UpdateProfileDTO{Name: name, Bio: "hi"})
	require.NoError(t, err)
	assert.Equal(t, name, user.Name)
	assert.Equal(t, name, restored.Store().GetState().Auth.User.Name)

	fetched, err := restored.GetUser(ctx, user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "hi", fetched.Bio)
}

func TestClient_SignupRejected(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(t, srv.URL, storage.NewMemoryTokenStorage(""))

	err := c.Signup(context.Background(), &model.RegisterUserDTO{
		Email:    "a@example.com",
		Username: "a",
		Password: "123",
		Name:     "A",
	})
	require.Error(t, err)

	state := c.Store().GetState().Auth
	assert.Equal(t, store.StatusFailed, state.Status)
	assert.Equal(t, "Password must be at least 6 characters", state.Error)
	assert.Empty(t, state.Token)
}

func TestClient_GetCurrentUserWithBadToken(t *testing.T) {
	srv := newTestServer(t)
	tokens := storage.NewMemoryTokenStorage("not-a-token")
	c := newTestClient(t, srv.URL, tokens)

	err := c.GetCurrentUser(context.Background())
	require.Error(t, err)

	state := c.Store().GetState().Auth
	assert.Equal(t, store.StatusFailed, state.Status)
	assert.Empty(t, state.Token)
	assert.Nil(t, state.User)
	saved, _ := tokens.Load()
	assert.Empty(t, saved)
}

func TestClient_GetCurrentUserWithoutToken(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(t, srv.URL, storage.NewMemoryTokenStorage(""))

	err := c.GetCurrentUser(context.Background())
	require.Error(t, err)
	assert.Equal(t, api.MsgNoToken, c.Store().GetState().Auth.Error)

	err = c.EnsureUser(context.Background())
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestClient_PostFlow(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(t, srv.URL, storage.NewMemoryTokenStorage(""))
	ctx := context.Background()

	signup(t, c, "bob")

	created, err := c.CreatePost(ctx, &model.UpdatePostDTO{Title: "Hello", Content: "World", Category: "intro"})
	require.NoError(t, err)
	assert.Equal(t, []string{"intro"}, created.Tags)
	assert.Equal(t, "bob", created.Author.Username)

	// Writes do not touch the post slice.
	assert.Equal(t, store.StatusIdle, c.Store().GetState().Post.Status)
	assert.Empty(t, c.Store().GetState().Post.Posts)

	require.NoError(t, c.FetchPosts(ctx))
	posts := c.Store().GetState().Post
	assert.Equal(t, store.StatusSucceeded, posts.Status)
	require.Len(t, posts.Posts, 1)
	assert.Equal(t, created.ID, posts.Posts[0].ID)

	require.NoError(t, c.FetchPost(ctx, created.ID.String()))
	current := c.Store().GetState().Post.CurrentPost
	require.NotNil(t, current)
	assert.Equal(t, int64(1), current.Views)

	updated, err := c.UpdatePost(ctx, created.ID.String(), &model.UpdatePostDTO{Title: "Hello again", Content: "World"})
	require.NoError(t, err)
	assert.Equal(t, "Hello again", updated.Title)
	assert.Equal(t, "World", c.Store().GetState().Post.CurrentPost.Content)
	assert.Equal(t, "Hello", c.Store().GetState().Post.CurrentPost.Title)

	mine, err := c.ListMyPosts(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	byUser, err := c.ListUserPosts(ctx, created.AuthorID.String())
	require.NoError(t, err)
	require.Len(t, byUser, 1)

	require.NoError(t, c.DeletePost(ctx, created.ID.String()))

	err = c.FetchPost(ctx, created.ID.String())
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	post := c.Store().GetState().Post
	assert.Equal(t, store.StatusFailed, post.Status)
	assert.Equal(t, "Post not found", post.Error)
}

func TestClient_WritesRequireToken(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	t.Cleanup(srv.Close)
	c := newTestClient(t, srv.URL, storage.NewMemoryTokenStorage(""))

	_, err := c.CreatePost(context.Background(), &model.UpdatePostDTO{Title: "t", Content: "c"})
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.MsgNoToken, apiErr.Message)
	assert.Zero(t, hits)
}

func TestClient_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	c := newTestClient(t, srv.URL, storage.NewMemoryTokenStorage(""))

	err := c.FetchPosts(context.Background())
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "Bad Gateway", c.Store().GetState().Post.Error)
}

func TestClient_OneRequestPerSlice(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/posts" {
			close(entered)
			<-release
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"ok","posts":[]}`))
	}))
	t.Cleanup(srv.Close)
	c := newTestClient(t, srv.URL, storage.NewMemoryTokenStorage(""))
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		done <- c.FetchPosts(ctx)
	}()
	<-entered

	err := c.FetchPost(ctx, "abc")
	assert.True(t, errors.Is(err, api.ErrRequestInFlight))

	// The auth slice is independent.
	err = c.Login(ctx, "a@example.com", "secret1")
	assert.False(t, errors.Is(err, api.ErrRequestInFlight))

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, store.StatusSucceeded, c.Store().GetState().Post.Status)
}
