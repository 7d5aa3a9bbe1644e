package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Hiro-mackay/gc-rental/pkg/apperror"
	"github.com/Hiro-mackay/gc-rental/pkg/jwt"
	"github.com/Hiro-mackay/gc-rental/pkg/logger"
)

// クッキー名はフロントエンドとの契約の一部です
const (
	CookieAccessToken  = "accessToken"
	CookieRefreshToken = "refreshToken"
)

// JWTAuthMiddleware はJWT認証ミドルウェアを提供します
type JWTAuthMiddleware struct {
	tokenService *jwt.TokenService
}

// NewJWTAuthMiddleware は新しいJWTAuthMiddlewareを作成します
func NewJWTAuthMiddleware(tokenService *jwt.TokenService) *JWTAuthMiddleware {
	return &JWTAuthMiddleware{tokenService: tokenService}
}

// ExtractToken はリクエストからアクセストークンを抽出します
// accessTokenクッキーを優先し、なければAuthorizationヘッダーのBearerトークンを使用します
// トークンが見つからない場合は ok == false を返します
func ExtractToken(c echo.Context) (string, bool) {
	if cookie, err := c.Cookie(CookieAccessToken); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}

// RequireSession は認証必須ミドルウェアを返します
// トークンがない・無効な場合は401を返します
func (m *JWTAuthMiddleware) RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := m.authenticate(c)
			if err != nil {
				return err
			}

			m.attachSession(c, claims)
			return next(c)
		}
	}
}

// RequireAdmin は管理者必須ミドルウェアを返します
// 未認証は401、管理者以外は403を返します
func (m *JWTAuthMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := m.authenticate(c)
			if err != nil {
				return err
			}

			m.attachSession(c, claims)

			if !IsAdmin(c) {
				return apperror.NewForbiddenError("admin access required")
			}

			return next(c)
		}
	}
}

// OptionalSession はオプショナル認証ミドルウェアを返します
// トークンがあれば検証し、なくてもエラーにしません
func (m *JWTAuthMiddleware) OptionalSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := ExtractToken(c)
			if !ok {
				return next(c)
			}

			claims, err := m.tokenService.ValidateAccessToken(token)
			if err != nil {
				return next(c)
			}

			m.attachSession(c, claims)
			return next(c)
		}
	}
}

// authenticate はトークンを抽出・検証します
func (m *JWTAuthMiddleware) authenticate(c echo.Context) (*jwt.Claims, error) {
	token, ok := ExtractToken(c)
	if !ok {
		return nil, apperror.NewUnauthorizedError("authentication required")
	}

	claims, err := m.tokenService.ValidateAccessToken(token)
	if err != nil {
		return nil, apperror.NewUnauthorizedError("invalid or expired token")
	}

	return claims, nil
}

// attachSession はクレームをEchoとリクエストのコンテキストに設定します
func (m *JWTAuthMiddleware) attachSession(c echo.Context, claims *jwt.Claims) {
	SetClaims(c, claims)

	ctx := logger.ContextWithUserID(c.Request().Context(), claims.UserID.String())
	c.SetRequest(c.Request().WithContext(ctx))
}
