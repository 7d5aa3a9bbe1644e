package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
	"github.com/Hiro-mackay/gc-rental/internal/infrastructure/database"
	infraRepo "github.com/Hiro-mackay/gc-rental/internal/infrastructure/repository"
	authcmd "github.com/Hiro-mackay/gc-rental/internal/usecase/auth/command"
	"github.com/Hiro-mackay/gc-rental/pkg/config"
	"github.com/Hiro-mackay/gc-rental/pkg/logger"
)

// seedは管理者アカウントとサンプル物件を投入します
// 登録APIはUSERロールしか作成しないため、管理者はここで用意します
func main() {
	_ = godotenv.Load()

	if err := logger.Setup(logger.DefaultConfig()); err != nil {
		slog.Error("failed to setup logger", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	pgClient, err := database.NewPostgresClient(ctx, cfg.Database.URL)
	if err != nil {
		slog.Error("failed to connect to PostgreSQL", "error", err)
		os.Exit(1)
	}
	defer pgClient.Close()

	txManager := database.NewTxManager(pgClient.Pool())
	userRepo := infraRepo.NewUserRepository(txManager)
	apartmentRepo := infraRepo.NewApartmentRepository(txManager)

	// 管理者アカウント（冪等）
	adminEmail := getEnv("ADMIN_EMAIL", "admin@local.test")
	adminPassword := getEnv("ADMIN_PASSWORD", "admin12345")
	if cfg.App.IsProduction() && os.Getenv("ADMIN_PASSWORD") == "" {
		slog.Error("ADMIN_PASSWORD is required in production")
		os.Exit(1)
	}

	bootstrapAdmin := authcmd.NewBootstrapAdminCommand(userRepo)
	output, err := bootstrapAdmin.Execute(ctx, authcmd.BootstrapAdminInput{
		Email:    adminEmail,
		Password: adminPassword,
	})
	if err != nil {
		slog.Error("failed to bootstrap admin", "error", err)
		os.Exit(1)
	}
	if output.Created {
		slog.Info("admin user created", "email", adminEmail)
	} else {
		slog.Info("admin user already exists", "email", adminEmail)
	}

	// サンプル物件はカタログが空の場合のみ投入する
	existing, err := apartmentRepo.ListAll(ctx)
	if err != nil {
		slog.Error("failed to list apartments", "error", err)
		os.Exit(1)
	}
	if len(existing) > 0 {
		slog.Info("apartments already present, skipping sample data", "count", len(existing))
		return
	}

	for _, apartment := range sampleApartments() {
		if err := apartmentRepo.Create(ctx, apartment); err != nil {
			slog.Error("failed to create sample apartment", "title", apartment.Title, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("sample apartments created", "count", len(sampleApartments()))
}

func sampleApartments() []*entity.Apartment {
	return []*entity.Apartment{
		entity.NewApartment(
			"Modern Downtown Loft", "New York", "123 Broadway St", 250, 2,
			"Beautiful modern loft in the heart of downtown with stunning city views.",
			[]string{
				"https://images.pexels.com/photos/1571460/pexels-photo-1571460.jpeg",
				"https://images.pexels.com/photos/1571463/pexels-photo-1571463.jpeg",
			},
			true,
		),
		entity.NewApartment(
			"Cozy Studio Apartment", "San Francisco", "456 Market St", 150, 1,
			"Charming studio apartment perfect for solo travelers or couples.",
			[]string{
				"https://images.pexels.com/photos/1457842/pexels-photo-1457842.jpeg",
			},
			true,
		),
		entity.NewApartment(
			"Luxury Penthouse", "Los Angeles", "789 Sunset Blvd", 500, 3,
			"Spectacular penthouse with panoramic views and premium amenities.",
			[]string{
				"https://images.pexels.com/photos/1643383/pexels-photo-1643383.jpeg",
			},
			true,
		),
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
