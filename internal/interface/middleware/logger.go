package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// Logger はリクエストロギングミドルウェアを返します
// 認証済みリクエストにはユーザーIDを付与します
func Logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			latency := time.Since(start)

			attrs := []any{
				"request_id", GetRequestID(c),
				"method", c.Request().Method,
				"path", c.Path(),
				"uri", c.Request().RequestURI,
				"status", c.Response().Status,
				"latency_ms", latency.Milliseconds(),
				"ip", c.RealIP(),
				"bytes_out", c.Response().Size,
			}
			if userID := GetUserID(c); userID != "" {
				attrs = append(attrs, "user_id", userID)
			}

			slog.Info("request", attrs...)

			return err
		}
	}
}
