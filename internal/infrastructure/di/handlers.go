package di

import (
	"github.com/Hiro-mackay/gc-rental/internal/interface/handler"
)

// Handlers はアプリケーションのハンドラーを保持します
type Handlers struct {
	Health    *handler.HealthHandler
	Auth      *handler.AuthHandler
	Apartment *handler.ApartmentHandler
	Booking   *handler.BookingHandler
	AdminPage *handler.AdminPageHandler
}

// NewHandlers はContainerから全てのハンドラーを初期化します
func NewHandlers(c *Container) *Handlers {
	// Health Handler
	healthHandler := handler.NewHealthHandler()
	if c.PgClient != nil {
		healthHandler.RegisterChecker("postgres", c.PgClient)
	}
	if c.RedisClient != nil {
		healthHandler.RegisterChecker("redis", c.RedisClient)
	}
	if c.MinioClient != nil {
		healthHandler.RegisterChecker("minio", c.MinioClient)
	}

	cfg := c.Config()

	// Auth Handler
	authHandler := handler.NewAuthHandler(
		c.Auth.Register,
		c.Auth.Login,
		c.Auth.RefreshToken,
		c.Auth.GetUser,
		int(cfg.JWT.AccessTokenExpiry.Seconds()),
		int(cfg.JWT.RefreshTokenExpiry.Seconds()),
		cfg.App.IsProduction(),
	)

	// Apartment Handler
	apartmentHandler := handler.NewApartmentHandler(
		c.Catalog.CreateApartment,
		c.Catalog.UpdateApartment,
		c.Catalog.DeleteApartment,
		c.Catalog.GenerateDescription,
		c.Catalog.CreatePhotoUpload,
		c.Catalog.ListApartments,
		c.Catalog.GetApartment,
		c.Catalog.ListAllApartments,
	)

	// Booking Handler
	bookingHandler := handler.NewBookingHandler(
		c.Booking.CreateBooking,
		c.Booking.ListMyBookings,
		c.Booking.ListAllBookings,
	)

	return &Handlers{
		Health:    healthHandler,
		Auth:      authHandler,
		Apartment: apartmentHandler,
		Booking:   bookingHandler,
		AdminPage: handler.NewAdminPageHandler(),
	}
}
