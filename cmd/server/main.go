package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	redis_cache "blog-service/internal/cache/redis"
	"blog-service/internal/config"
	delivery_http "blog-service/internal/delivery/http"
	metrics_server "blog-service/internal/delivery/metrics"
	"blog-service/internal/logger"
	prometheus_metrics "blog-service/internal/metrics/prometheus"
	post_postgres "blog-service/internal/repository/post/postgres"
	user_repository "blog-service/internal/repository/user"
	user_cached "blog-service/internal/repository/user/cached"
	user_postgres "blog-service/internal/repository/user/postgres"
	auth_service "blog-service/internal/service/auth"
	post_service "blog-service/internal/service/post"
	user_service "blog-service/internal/service/user"
	"blog-service/internal/token"
)

func main() {
	cfg := config.MustLoad()
	ctx := context.Background()
	log := logger.New(cfg.Env)

	poolConfig, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.Database.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Database.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	metrics.SetServiceHealth(true)

	healthChecks := map[string]delivery_http.HealthCheck{
		"postgres": pool.Ping,
	}

	var userRepo user_repository.Repository = user_postgres.NewUserRepository(pool, log, metrics)
	postRepo := post_postgres.NewPostRepository(pool, log, metrics)

	if cfg.Redis.Enabled {
		log.Info("Connecting to Redis",
			slog.String("address", cfg.Redis.Address),
			slog.Int("port", cfg.Redis.Port),
			slog.Int("db", cfg.Redis.DB))
		redisClient, err := redis_cache.NewClient(cfg.Redis, log)
		if err != nil {
			log.Error("Failed to create Redis client", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
			}
		}()

		userCache := redis_cache.NewUserCache(redisClient, log)
		userRepo = user_cached.NewUserRepository(userRepo, userCache, log, metrics)
		healthChecks["redis"] = redisClient.Ping
	}

	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	authService := auth_service.NewAuthService(userRepo, tokens, log, metrics)
	userService := user_service.NewUserService(userRepo, log)
	postService := post_service.NewPostService(postRepo, userRepo, log, metrics)

	router := delivery_http.NewRouter(delivery_http.RouterDeps{
		AuthService:    authService,
		UserService:    userService,
		PostService:    postService,
		Metrics:        metrics,
		Log:            log,
		AllowedOrigins: cfg.HTTPServer.AllowedOrigins,
		RequestTimeout: cfg.HTTPServer.RequestTimeout,
		HealthChecks:   healthChecks,
	})

	httpServer := delivery_http.NewServer(cfg.HTTPServer, router, log)
	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}
