package auth_http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blog-service/internal/custom_errors"
	auth_http "blog-service/internal/delivery/http/auth"
	"blog-service/internal/delivery/http/middleware"
	"blog-service/internal/logger"
	"blog-service/internal/model"
	mockauth "blog-service/mocks/auth"
	mockuser "blog-service/mocks/user"
)

func TestSignupHandler(t *testing.T) {
	log := logger.New("test")
	validate := validator.New()

	tests := []struct {
		name       string
		body       string
		mocks      func(s *mockauth.Service)
		wantStatus int
		wantMsg    string
	}{
		{
			name: "Success",
			body: `{"email":"a@x.com","username":"alice","password":"secret1","name":"Alice"}`,
			mocks: func(s *mockauth.Service) {
				s.On("Register", mock.Anything, &model.RegisterUserDTO{Email: "a@x.com", Username: "alice", Password: "secret1", Name: "Alice"}).
					Return(&model.AuthResult{User: &model.User{ID: uuid.New(), Email: "a@x.com"}, Token: "tok"}, nil)
			},
			wantStatus: http.StatusCreated,
			wantMsg:    `"message":"User created successfully"`,
		},
		{
			name:       "Missing fields",
			body:       `{"email":"a@x.com","password":"secret1"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    `"message":"All fields are required"`,
		},
		{
			name:       "Short password",
			body:       `{"email":"a@x.com","username":"alice","password":"123","name":"Alice"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    `"message":"Password must be at least 6 characters"`,
		},
		{
			name:       "Password over bcrypt limit",
			body:       `{"email":"a@x.com","username":"alice","password":"` + strings.Repeat("p", 80) + `","name":"Alice"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    `"message":"Password must be at most 72 bytes"`,
		},
		{
			name: "Conflict",
			body: `{"email":"a@x.com","username":"alice","password":"secret1","name":"Alice"}`,
			mocks: func(s *mockauth.Service) {
				s.On("Register", mock.Anything, mock.Anything).Return(nil, custom_errors.ErrUserAlreadyExists)
			},
			wantStatus: http.StatusConflict,
			wantMsg:    `"message":"User with this email or username already exists"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := new(mockauth.Service)
			if tt.mocks != nil {
				tt.mocks(s)
			}
			handler := auth_http.NewSignupHandler(s, validate, log)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMsg)
			s.AssertExpectations(t)
		})
	}
}

func TestLoginHandler(t *testing.T) {
	log := logger.New("test")
	validate := validator.New()

	tests := []struct {
		name       string
		body       string
		mocks      func(s *mockauth.Service)
		wantStatus int
		wantMsg    string
	}{
		{
			name: "Success",
			body: `{"email":"a@x.com","password":"secret1"}`,
			mocks: func(s *mockauth.Service) {
				s.On("Authenticate", mock.Anything, "a@x.com", "secret1").
					Return(&model.AuthResult{User: &model.User{Email: "a@x.com"}, Token: "tok"}, nil)
			},
			wantStatus: http.StatusOK,
			wantMsg:    `"token":"tok"`,
		},
		{
			name:       "Missing password",
			body:       `{"email":"a@x.com"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    `"message":"Email and password are required"`,
		},
		{
			name: "Bad credentials",
			body: `{"email":"a@x.com","password":"nope"}`,
			mocks: func(s *mockauth.Service) {
				s.On("Authenticate", mock.Anything, "a@x.com", "nope").Return(nil, custom_errors.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    `"message":"Invalid email or password"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := new(mockauth.Service)
			if tt.mocks != nil {
				tt.mocks(s)
			}
			handler := auth_http.NewLoginHandler(s, validate, log)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMsg)
			s.AssertExpectations(t)
		})
	}
}

func TestMeHandler(t *testing.T) {
	log := logger.New("test")
	userID := uuid.New()

	t.Run("User deleted after token issue", func(t *testing.T) {
		s := new(mockuser.Service)
		s.On("GetProfile", mock.Anything, userID).Return(nil, custom_errors.ErrUserNotFound)
		handler := auth_http.NewMeHandler(s, log)

		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req = req.WithContext(middleware.WithIdentity(req.Context(), model.Identity{UserID: userID}))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), `"message":"User not found"`)
		s.AssertExpectations(t)
	})

	t.Run("Success", func(t *testing.T) {
		s := new(mockuser.Service)
		s.On("GetProfile", mock.Anything, userID).Return(&model.User{ID: userID, Username: "alice"}, nil)
		handler := auth_http.NewMeHandler(s, log)

		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req = req.WithContext(middleware.WithIdentity(req.Context(), model.Identity{UserID: userID}))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"username":"alice"`)
		s.AssertExpectations(t)
	})
}
