package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/Hiro-mackay/gc-rental/internal/domain/repository"
	"github.com/Hiro-mackay/gc-rental/internal/domain/service"
	"github.com/Hiro-mackay/gc-rental/internal/infrastructure/ai"
	"github.com/Hiro-mackay/gc-rental/internal/infrastructure/cache"
	"github.com/Hiro-mackay/gc-rental/internal/infrastructure/database"
	infraRepo "github.com/Hiro-mackay/gc-rental/internal/infrastructure/repository"
	"github.com/Hiro-mackay/gc-rental/internal/infrastructure/storage"
	"github.com/Hiro-mackay/gc-rental/pkg/config"
	"github.com/Hiro-mackay/gc-rental/pkg/jwt"
)

// Container はアプリケーションの依存関係を保持するDIコンテナです
type Container struct {
	// Infrastructure
	PgClient    *database.PostgresClient
	RedisClient *cache.RedisClient
	MinioClient *storage.MinIOClient
	TxManager   *database.TxManager

	// Services
	TokenService         *jwt.TokenService
	RateLimiter          *cache.RateLimiter
	ListingCache         service.ListingCache
	PhotoStorage         service.PhotoStorage
	DescriptionGenerator service.DescriptionGenerator

	// Repositories
	UserRepo      repository.UserRepository
	ApartmentRepo repository.ApartmentRepository
	BookingRepo   repository.BookingRepository

	// UseCases
	Auth    *AuthUseCases
	Catalog *CatalogUseCases
	Booking *BookingUseCases

	// config
	config *config.Config
}

// Options はContainer作成時のオプションを定義します
// テストでは実インフラの代わりに注入できます
type Options struct {
	PostgresPool         *pgxpool.Pool
	RedisClient          *redis.Client
	MinioClient          *storage.MinIOClient
	DescriptionGenerator service.DescriptionGenerator
}

// NewContainer は新しいContainerを作成します
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	return NewContainerWithOptions(ctx, cfg, Options{})
}

// NewContainerWithOptions はオプションを指定してContainerを作成します
func NewContainerWithOptions(ctx context.Context, cfg *config.Config, opts Options) (*Container, error) {
	c := &Container{
		config: cfg,
	}

	// PostgreSQL
	if opts.PostgresPool != nil {
		c.TxManager = database.NewTxManager(opts.PostgresPool)
	} else {
		slog.Info("connecting to PostgreSQL...")
		pgClient, err := database.NewPostgresClient(ctx, cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		c.PgClient = pgClient
		c.TxManager = database.NewTxManager(pgClient.Pool())
		slog.Info("connected to PostgreSQL")
	}

	// Redis
	if opts.RedisClient != nil {
		c.RateLimiter = cache.NewRateLimiter(opts.RedisClient)
		c.ListingCache = cache.NewListingCache(opts.RedisClient)
	} else {
		slog.Info("connecting to Redis...")
		redisConfig := cache.DefaultConfig()
		redisConfig.URL = cfg.Redis.URL
		redisClient, err := cache.NewRedisClient(redisConfig)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		c.RedisClient = redisClient
		c.RateLimiter = cache.NewRateLimiter(redisClient.Client())
		c.ListingCache = cache.NewListingCache(redisClient.Client())
		slog.Info("connected to Redis")
	}

	// MinIO
	if opts.MinioClient != nil {
		c.MinioClient = opts.MinioClient
	} else {
		minioClient, err := storage.NewMinIOClient(storage.Config{
			Endpoint:        cfg.Storage.Endpoint,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			BucketName:      cfg.Storage.BucketName,
			UseSSL:          cfg.Storage.UseSSL,
			Region:          cfg.Storage.Region,
			PublicBaseURL:   cfg.Storage.PublicBaseURL,
		})
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("failed to create MinIO client: %w", err)
		}
		c.MinioClient = minioClient
	}
	c.PhotoStorage = storage.NewPhotoStorageService(c.MinioClient)

	// Token Service
	c.TokenService = jwt.NewTokenService(jwt.Config{
		AccessSecret:       cfg.JWT.AccessSecret,
		RefreshSecret:      cfg.JWT.RefreshSecret,
		Issuer:             cfg.JWT.Issuer,
		AccessTokenExpiry:  cfg.JWT.AccessTokenExpiry,
		RefreshTokenExpiry: cfg.JWT.RefreshTokenExpiry,
	})

	// Description Generator
	if opts.DescriptionGenerator != nil {
		c.DescriptionGenerator = opts.DescriptionGenerator
	} else {
		fallback := ai.NewTemplateDescriptionGenerator()
		c.DescriptionGenerator = ai.NewOpenAIDescriptionGenerator(ai.OpenAIConfig{
			APIKey:  cfg.AI.OpenAIAPIKey,
			BaseURL: cfg.AI.BaseURL,
			Model:   cfg.AI.Model,
		}, fallback)
	}

	// Repositories
	c.UserRepo = infraRepo.NewUserRepository(c.TxManager)
	c.ApartmentRepo = infraRepo.NewApartmentRepository(c.TxManager)
	c.BookingRepo = infraRepo.NewBookingRepository(c.TxManager)

	return c, nil
}

// InitAuthUseCases はAuth UseCasesを初期化します
func (c *Container) InitAuthUseCases() {
	c.Auth = NewAuthUseCases(c)
}

// InitCatalogUseCases はCatalog UseCasesを初期化します
func (c *Container) InitCatalogUseCases() {
	c.Catalog = NewCatalogUseCases(c)
}

// InitBookingUseCases はBooking UseCasesを初期化します
func (c *Container) InitBookingUseCases() {
	c.Booking = NewBookingUseCases(c)
}

// Config は設定を返します
func (c *Container) Config() *config.Config {
	return c.config
}

// Close はリソースをクリーンアップします
func (c *Container) Close() error {
	var errs []error

	if c.PgClient != nil {
		c.PgClient.Close()
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors during close: %v", errs)
	}
	return nil
}
