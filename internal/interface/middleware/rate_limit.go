package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Hiro-mackay/gc-rental/internal/infrastructure/cache"
	"github.com/Hiro-mackay/gc-rental/pkg/apperror"
)

// RateLimitMiddleware はレート制限ミドルウェアを提供します
type RateLimitMiddleware struct {
	limiter *cache.RateLimiter
}

// NewRateLimitMiddleware は新しいRateLimitMiddlewareを作成します
func NewRateLimitMiddleware(limiter *cache.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

// ByIP はIPアドレスでレート制限するミドルウェアを返します
func (m *RateLimitMiddleware) ByIP(config cache.RateLimitConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			result, err := m.limiter.Allow(c.Request().Context(), identifier, config)
			if err != nil {
				// レート制限チェックに失敗した場合はリクエストを許可
				return next(c)
			}

			setRateLimitHeaders(c, result)

			if !result.Allowed {
				return apperror.NewTooManyRequestsError("rate limit exceeded")
			}

			return next(c)
		}
	}
}

// ByUser はユーザーIDでレート制限するミドルウェアを返します
// 未認証の場合はIPでフォールバックします
func (m *RateLimitMiddleware) ByUser(config cache.RateLimitConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := GetUserID(c)
			if identifier == "" {
				identifier = c.RealIP()
			}

			result, err := m.limiter.Allow(c.Request().Context(), identifier, config)
			if err != nil {
				return next(c)
			}

			setRateLimitHeaders(c, result)

			if !result.Allowed {
				return apperror.NewTooManyRequestsError("rate limit exceeded")
			}

			return next(c)
		}
	}
}

// setRateLimitHeaders はレート制限ヘッダーを設定します
func setRateLimitHeaders(c echo.Context, result *cache.RateLimitResult) {
	c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	c.Response().Header().Set("X-RateLimit-Reset", result.ResetAt.Format(time.RFC3339))
}
