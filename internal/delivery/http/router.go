package delivery_http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"

	auth_http "blog-service/internal/delivery/http/auth"
	"blog-service/internal/delivery/http/middleware"
	post_http "blog-service/internal/delivery/http/post"
	"blog-service/internal/delivery/http/response"
	user_http "blog-service/internal/delivery/http/user"
	"blog-service/internal/logger"
	"blog-service/internal/metrics"
	auth_service "blog-service/internal/service/auth"
	post_service "blog-service/internal/service/post"
	user_service "blog-service/internal/service/user"
)

// HealthCheck reports whether a backing dependency is reachable.
type HealthCheck func(ctx context.Context) error

type RouterDeps struct {
	AuthService    auth_service.Service
	UserService    user_service.Service
	PostService    post_service.Service
	Metrics        metrics.MetricsProvider
	Log            *logger.Logger
	AllowedOrigins []string
	RequestTimeout time.Duration
	HealthChecks   map[string]HealthCheck
}

func NewRouter(deps RouterDeps) http.Handler {
	validate := validator.New()

	origins := deps.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	timeout := deps.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(deps.Log))
	r.Use(middleware.Metrics(deps.Metrics))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Timeout(timeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(middleware.Authenticate(deps.AuthService))

	r.Get("/healthz", healthHandler(deps.HealthChecks, deps.Log))

	r.Route("/auth", auth_http.NewAuthAPI(deps.AuthService, deps.UserService, validate, deps.Log).Routes)
	r.Route("/users", user_http.NewUserAPI(deps.UserService, validate, deps.Log).Routes)
	r.Route("/posts", post_http.NewPostAPI(deps.PostService, validate, deps.Log).Routes)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Fail(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Fail(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}

func healthHandler(checks map[string]HealthCheck, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := make(map[string]string, len(checks))
		healthy := true
		for name, check := range checks {
			if err := check(ctx); err != nil {
				log.Warn("Health check failed", slog.String("dependency", name), slog.String("error", err.Error()))
				status[name] = "down"
				healthy = false
				continue
			}
			status[name] = "up"
		}

		code := http.StatusOK
		message := "ok"
		if !healthy {
			code = http.StatusServiceUnavailable
			message = "degraded"
		}
		response.JSON(w, code, response.Envelope{"success": healthy, "message": message, "dependencies": status})
	}
}
