package di

import (
	"github.com/Hiro-mackay/gc-rental/internal/interface/middleware"
)

// Middlewares はアプリケーションのミドルウェアを保持します
type Middlewares struct {
	JWTAuth   *middleware.JWTAuthMiddleware
	AdminGate *middleware.AdminGate
	RateLimit *middleware.RateLimitMiddleware
}

// NewMiddlewares はContainerから全てのミドルウェアを初期化します
func NewMiddlewares(c *Container) *Middlewares {
	cfg := c.Config()

	return &Middlewares{
		JWTAuth:   middleware.NewJWTAuthMiddleware(c.TokenService),
		AdminGate: middleware.NewAdminGate(c.TokenService, cfg.App.AdminPrefix, cfg.App.LoginPath),
		RateLimit: middleware.NewRateLimitMiddleware(c.RateLimiter),
	}
}
