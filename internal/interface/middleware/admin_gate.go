package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
	"github.com/Hiro-mackay/gc-rental/pkg/jwt"
)

// AdminGate は管理画面ページへのゲートウェイです
// 設定されたプレフィックス配下のページリクエストを検査し、
// 管理者セッション以外はすべてログインページへリダイレクトします
// API（JSONを返すエンドポイント）はRequireAdminが担当します
type AdminGate struct {
	tokenService *jwt.TokenService
	prefix       string
	loginPath    string
}

// NewAdminGate は新しいAdminGateを作成します
func NewAdminGate(tokenService *jwt.TokenService, prefix, loginPath string) *AdminGate {
	return &AdminGate{
		tokenService: tokenService,
		prefix:       prefix,
		loginPath:    loginPath,
	}
}

// Middleware は管理画面ゲートミドルウェアを返します
// 失敗の理由（未ログイン・トークン失効・権限不足）に関わらずリダイレクトで応答します
func (g *AdminGate) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if path != g.prefix && !strings.HasPrefix(path, g.prefix+"/") {
				return next(c)
			}

			token, ok := ExtractToken(c)
			if !ok {
				return c.Redirect(http.StatusFound, g.loginPath)
			}

			claims, err := g.tokenService.ValidateAccessToken(token)
			if err != nil {
				return c.Redirect(http.StatusFound, g.loginPath)
			}

			if entity.Role(claims.Role) != entity.RoleAdmin {
				return c.Redirect(http.StatusFound, g.loginPath)
			}

			// ゲートは通過判定のみを行い、セッション状態は持ち込まない
			// ハンドラー側で必要な場合はGuardが改めて認証する
			return next(c)
		}
	}
}
