package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Hiro-mackay/gc-rental/internal/infrastructure/di"
	"github.com/Hiro-mackay/gc-rental/internal/interface/middleware"
	"github.com/Hiro-mackay/gc-rental/internal/interface/router"
	"github.com/Hiro-mackay/gc-rental/internal/interface/server"
	"github.com/Hiro-mackay/gc-rental/internal/interface/validator"
	"github.com/Hiro-mackay/gc-rental/pkg/config"
	"github.com/Hiro-mackay/gc-rental/pkg/logger"
)

func main() {
	// .envがあれば読み込む（本番環境には存在しない想定）
	_ = godotenv.Load()

	// Logger setup
	if err := logger.Setup(logger.DefaultConfig()); err != nil {
		slog.Error("failed to setup logger", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize DI Container
	container, err := di.NewContainer(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize container", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	// 写真アップロード用バケットを用意する
	if err := container.MinioClient.EnsureBucket(ctx); err != nil {
		slog.Error("failed to ensure MinIO bucket", "error", err)
		os.Exit(1)
	}
	slog.Info("connected to MinIO", "endpoint", cfg.Storage.Endpoint, "bucket", cfg.Storage.BucketName)

	// Initialize UseCases, Handlers, and Middlewares
	container.InitAuthUseCases()
	container.InitCatalogUseCases()
	container.InitBookingUseCases()
	handlers := di.NewHandlers(container)
	middlewares := di.NewMiddlewares(container)

	// Setup Server
	serverConfig := server.DefaultConfig()
	serverConfig.Port = cfg.Server.Port
	serverConfig.Debug = cfg.Server.Debug
	srv := server.NewServer(serverConfig)
	e := srv.Echo()

	// Setup validator and error handler
	e.Validator = validator.NewCustomValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	// Global middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	securityConfig := middleware.DefaultSecurityHeadersConfig()
	securityConfig.EnableHSTS = cfg.Security.EnableHSTS
	e.Use(middleware.SecurityHeadersWithConfig(securityConfig))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Security.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// 管理画面ページへのアクセスは管理者のみ許可する
	e.Use(middlewares.AdminGate.Middleware())

	// Setup Router
	router.NewRouter(e, handlers, middlewares).Setup()

	// Start server
	slog.Info("starting server", "port", cfg.Server.Port)
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("server error", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	if err := srv.Shutdown(context.Background()); err != nil {
		slog.Error("server shutdown error", "error", err)
	}
	slog.Info("server stopped")
}
