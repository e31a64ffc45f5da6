package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/config"
	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/db"
	transport "github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/http"
	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/http/middleware"
	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/repo"
	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/services"
	"github.com/gin-gonic/gin"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Env)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	dbConn, err := db.Connect(ctx, cfg.DBURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if err := db.Migrate(ctx, dbConn.Pool, cfg.RequestTimeout); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	if cfg.SeedAdmin {
		if err := db.EnsureAdminUser(ctx, dbConn.Pool, cfg.RequestTimeout); err != nil {
			logger.Error("failed to seed admin user", "error", err)
			os.Exit(1)
		}
	}

	userRepo := repo.NewUserRepo(dbConn.Pool, cfg.RequestTimeout)
	taskRepo := repo.NewTaskRepo(dbConn.Pool, cfg.RequestTimeout)

	authService := services.NewAuthService(userRepo, cfg)
	taskService := services.NewTaskService(taskRepo, userRepo, cfg.EnforceTaskOwnership)

	router := transport.NewRouter(transport.Dependencies{
		Config:      cfg,
		AuthService: authService,
		TaskService: taskService,
		Logger:      logger,
		RateLimiter: middleware.NewRateLimiter(cfg.RateLimitPerMinute),
		Pinger:      dbConn,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.RequestTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.RequestTimeout,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErrors:
		logger.Error("http server stopped unexpectedly", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("http server stopped")
}

func newLogger(env string) *slog.Logger {
	level := slog.LevelInfo
	if env != "prod" {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if env == "prod" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler)
}
