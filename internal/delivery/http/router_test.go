package delivery_http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	delivery_http "blog-service/internal/delivery/http"
	"blog-service/internal/logger"
	"blog-service/internal/metrics/prometheus"
	post_memory "blog-service/internal/repository/post/memory"
	user_memory "blog-service/internal/repository/user/memory"
	auth_service "blog-service/internal/service/auth"
	post_service "blog-service/internal/service/post"
	user_service "blog-service/internal/service/user"
	"blog-service/internal/token"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Token   string          `json:"token"`
	User    json.RawMessage `json:"user"`
	Post    json.RawMessage `json:"post"`
	Posts   json.RawMessage `json:"posts"`
}

type testPost struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Excerpt string   `json:"excerpt"`
	Tags    []string `json:"tags"`
	Views   int64    `json:"views"`
	Author  struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	} `json:"author"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	log := logger.New("test")
	metrics := prometheus.NewPrometheusMetricsProvider()

	userRepo := user_memory.NewUserRepository(log)
	postRepo := post_memory.NewPostRepository(log)
	tokens := token.NewManager("test-secret", time.Hour)

	return delivery_http.NewRouter(delivery_http.RouterDeps{
		AuthService: auth_service.NewAuthService(userRepo, tokens, log, metrics),
		UserService: user_service.NewUserService(userRepo, log),
		PostService: post_service.NewPostService(postRepo, userRepo, log, metrics),
		Metrics:     metrics,
		Log:         log,
		HealthChecks: map[string]delivery_http.HealthCheck{
			"memory": func(ctx context.Context) error { return nil },
		},
	})
}

func do(t *testing.T, h http.Handler, method, path, token string, body any) (int, apiResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return rec.Code, resp
}

func signup(t *testing.T, h http.Handler, email, username string) string {
	t.Helper()
	code, resp := do(t, h, http.MethodPost, "/auth/signup", "", map[string]string{
		"email": email, "username": username, "password": "secret1", "name": username,
	})
	require.Equal(t, http.StatusCreated, code, resp.Message)
	return resp.Token
}

func TestRouter_BlogScenario(t *testing.T) {
	h := newTestRouter(t)

	aliceToken := signup(t, h, "alice@x.com", "alice")
	bobToken := signup(t, h, "bob@x.com", "bob")

	code, resp := do(t, h, http.MethodPost, "/auth/login", "", map[string]string{"email": "alice@x.com", "password": "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid email or password", resp.Message)

	code, resp = do(t, h, http.MethodPost, "/auth/login", "", map[string]string{"email": "alice@x.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Login successful", resp.Message)
	assert.NotContains(t, string(resp.User), "password")

	code, resp = do(t, h, http.MethodPost, "/posts", aliceToken, map[string]string{"title": "Hello", "content": "World", "category": "go"})
	require.Equal(t, http.StatusCreated, code, resp.Message)
	var created testPost
	require.NoError(t, json.Unmarshal(resp.Post, &created))
	assert.Equal(t, []string{"go"}, created.Tags)
	assert.Equal(t, "World", created.Excerpt)
	assert.Equal(t, "alice", created.Author.Username)
	assert.Zero(t, created.Views)

	for want := int64(1); want <= 2; want++ {
		code, resp = do(t, h, http.MethodGet, "/posts/"+created.ID, "", nil)
		require.Equal(t, http.StatusOK, code)
		var got testPost
		require.NoError(t, json.Unmarshal(resp.Post, &got))
		assert.Equal(t, want, got.Views)
	}

	code, resp = do(t, h, http.MethodDelete, "/posts/"+created.ID, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "Forbidden", resp.Message)

	code, _ = do(t, h, http.MethodPut, "/posts/"+created.ID, bobToken, map[string]string{"title": "x", "content": "y"})
	assert.Equal(t, http.StatusForbidden, code)

	code, resp = do(t, h, http.MethodPut, "/posts/"+created.ID, aliceToken, map[string]string{"title": "Hello again", "content": "Changed"})
	require.Equal(t, http.StatusOK, code, resp.Message)
	var updated testPost
	require.NoError(t, json.Unmarshal(resp.Post, &updated))
	assert.Equal(t, "Hello again", updated.Title)
	assert.Empty(t, updated.Tags)
	assert.Equal(t, int64(2), updated.Views)

	code, resp = do(t, h, http.MethodGet, "/posts/mine", aliceToken, nil)
	require.Equal(t, http.StatusOK, code)
	var mine []testPost
	require.NoError(t, json.Unmarshal(resp.Posts, &mine))
	assert.Len(t, mine, 1)

	code, resp = do(t, h, http.MethodGet, "/posts/by-user/"+created.Author.ID, "", nil)
	require.Equal(t, http.StatusOK, code)
	var byUser []testPost
	require.NoError(t, json.Unmarshal(resp.Posts, &byUser))
	assert.Len(t, byUser, 1)

	code, _ = do(t, h, http.MethodDelete, "/posts/"+created.ID, aliceToken, nil)
	assert.Equal(t, http.StatusOK, code)

	code, resp = do(t, h, http.MethodGet, "/posts/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Post not found", resp.Message)

	code, resp = do(t, h, http.MethodGet, "/posts", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(resp.Posts))
}

func TestRouter_AuthBeforeValidation(t *testing.T) {
	h := newTestRouter(t)
	token := signup(t, h, "alice@x.com", "alice")

	tests := []struct {
		name     string
		method   string
		path     string
		token    string
		body     any
		wantCode int
		wantMsg  string
	}{
		{name: "update without token and bad id", method: http.MethodPut, path: "/posts/not-a-uuid", body: map[string]string{}, wantCode: http.StatusUnauthorized, wantMsg: "Unauthorized"},
		{name: "delete with garbage token", method: http.MethodDelete, path: "/posts/not-a-uuid", token: "garbage", wantCode: http.StatusUnauthorized, wantMsg: "Unauthorized"},
		{name: "update with token and bad id", method: http.MethodPut, path: "/posts/not-a-uuid", token: token, body: map[string]string{}, wantCode: http.StatusBadRequest, wantMsg: "Invalid post ID"},
		{name: "get bad id", method: http.MethodGet, path: "/posts/not-a-uuid", wantCode: http.StatusBadRequest, wantMsg: "Invalid post ID"},
		{name: "user bad id", method: http.MethodGet, path: "/users/not-a-uuid", wantCode: http.StatusBadRequest, wantMsg: "Invalid user ID"},
		{name: "me without token", method: http.MethodGet, path: "/auth/me", wantCode: http.StatusUnauthorized, wantMsg: "Unauthorized"},
		{name: "create with empty content", method: http.MethodPost, path: "/posts", token: token, body: map[string]string{"title": "t"}, wantCode: http.StatusBadRequest, wantMsg: "Title and content are required"},
		{name: "signup missing field", method: http.MethodPost, path: "/auth/signup", body: map[string]string{"email": "b@x.com"}, wantCode: http.StatusBadRequest, wantMsg: "All fields are required"},
		{name: "signup short password", method: http.MethodPost, path: "/auth/signup", body: map[string]string{"email": "b@x.com", "username": "b", "password": "123", "name": "B"}, wantCode: http.StatusBadRequest, wantMsg: "Password must be at least 6 characters"},
		{name: "signup password over bcrypt limit", method: http.MethodPost, path: "/auth/signup", body: map[string]string{"email": "c@x.com", "username": "c", "password": strings.Repeat("p", 80), "name": "C"}, wantCode: http.StatusBadRequest, wantMsg: "Password must be at most 72 bytes"},
		{name: "signup duplicate", method: http.MethodPost, path: "/auth/signup", body: map[string]string{"email": "alice@x.com", "username": "other", "password": "secret1", "name": "A"}, wantCode: http.StatusConflict, wantMsg: "User with this email or username already exists"},
		{name: "profile without name", method: http.MethodPut, path: "/users/profile", token: token, body: map[string]string{"bio": "hi"}, wantCode: http.StatusBadRequest, wantMsg: "Name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := do(t, h, tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.wantCode, code)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestRouter_Profile(t *testing.T) {
	h := newTestRouter(t)
	token := signup(t, h, "alice@x.com", "alice")

	code, resp := do(t, h, http.MethodPut, "/users/profile", token, map[string]string{"name": "Alice A", "bio": "writer"})
	require.Equal(t, http.StatusOK, code, resp.Message)

	code, resp = do(t, h, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, code)
	var me struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Bio    string `json:"bio"`
		Avatar string `json:"avatar"`
	}
	require.NoError(t, json.Unmarshal(resp.User, &me))
	assert.Equal(t, "Alice A", me.Name)
	assert.Equal(t, "writer", me.Bio)
	assert.Equal(t, "", me.Avatar)

	code, resp = do(t, h, http.MethodGet, "/users/"+me.ID, "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "User profile fetched successfully", resp.Message)
}

func TestRouter_Healthz(t *testing.T) {
	log := logger.New("test")
	h := delivery_http.NewRouter(delivery_http.RouterDeps{
		Metrics: prometheus.NewPrometheusMetricsProvider(),
		Log:     log,
		HealthChecks: map[string]delivery_http.HealthCheck{
			"postgres": func(ctx context.Context) error { return errors.New("down") },
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"degraded","dependencies":{"postgres":"down"}}`, rec.Body.String())
}
