package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Hiro-mackay/gc-rental/internal/interface/dto/request"
	"github.com/Hiro-mackay/gc-rental/internal/interface/dto/response"
	"github.com/Hiro-mackay/gc-rental/internal/interface/middleware"
	"github.com/Hiro-mackay/gc-rental/internal/interface/presenter"
	authcmd "github.com/Hiro-mackay/gc-rental/internal/usecase/auth/command"
	authqry "github.com/Hiro-mackay/gc-rental/internal/usecase/auth/query"
	"github.com/Hiro-mackay/gc-rental/pkg/apperror"
)

// AuthHandler は認証関連のHTTPハンドラーです
type AuthHandler struct {
	registerCommand     *authcmd.RegisterCommand
	loginCommand        *authcmd.LoginCommand
	refreshTokenCommand *authcmd.RefreshTokenCommand
	getUserQuery        *authqry.GetUserQuery

	accessTokenMaxAge  int
	refreshTokenMaxAge int
	secureCookies      bool
}

// NewAuthHandler は新しいAuthHandlerを作成します
func NewAuthHandler(
	registerCommand *authcmd.RegisterCommand,
	loginCommand *authcmd.LoginCommand,
	refreshTokenCommand *authcmd.RefreshTokenCommand,
	getUserQuery *authqry.GetUserQuery,
	accessTokenMaxAge int,
	refreshTokenMaxAge int,
	secureCookies bool,
) *AuthHandler {
	return &AuthHandler{
		registerCommand:     registerCommand,
		loginCommand:        loginCommand,
		refreshTokenCommand: refreshTokenCommand,
		getUserQuery:        getUserQuery,
		accessTokenMaxAge:   accessTokenMaxAge,
		refreshTokenMaxAge:  refreshTokenMaxAge,
		secureCookies:       secureCookies,
	}
}

// Register はユーザー登録を処理します
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req request.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewValidationError("invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.registerCommand.Execute(c.Request().Context(), authcmd.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	// リフレッシュトークンはボディではなくHttpOnly Cookieで返す
	h.setRefreshTokenCookie(c, output.RefreshToken)

	return presenter.Created(c, response.AuthResponse{
		AccessToken: output.AccessToken,
		ExpiresIn:   output.ExpiresIn,
		User:        response.NewUserResponse(output.User),
	})
}

// Login はログインを処理します
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req request.LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewValidationError("invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.loginCommand.Execute(c.Request().Context(), authcmd.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	h.setRefreshTokenCookie(c, output.RefreshToken)

	return presenter.OK(c, response.AuthResponse{
		AccessToken: output.AccessToken,
		ExpiresIn:   output.ExpiresIn,
		User:        response.NewUserResponse(output.User),
	})
}

// Refresh はトークンリフレッシュを処理します
// リフレッシュトークンのクレームから新しいアクセストークンを再署名し、
// accessTokenクッキーとレスポンスボディの両方で返します
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(middleware.CookieRefreshToken)
	if err != nil || cookie.Value == "" {
		return apperror.NewUnauthorizedError("refresh token required")
	}

	output, err := h.refreshTokenCommand.Execute(c.Request().Context(), authcmd.RefreshTokenInput{
		RefreshToken: cookie.Value,
	})
	if err != nil {
		return err
	}

	h.setAccessTokenCookie(c, output.AccessToken)

	return presenter.OK(c, response.RefreshResponse{
		AccessToken: output.AccessToken,
		ExpiresIn:   output.ExpiresIn,
	})
}

// Logout はログアウトを処理します
// 両方のトークンクッキーを破棄します
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	h.clearTokenCookies(c)

	return presenter.OKWithMeta(c, nil, presenter.Meta{Message: "logged out"})
}

// Me は現在のユーザー情報を返します
// 未認証・無効なトークンでもエラーにせず user: null を返します
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return presenter.OK(c, response.MeResponse{User: nil})
	}

	output, err := h.getUserQuery.Execute(c.Request().Context(), authqry.GetUserInput{
		UserID: claims.UserID,
	})
	if err != nil {
		return presenter.OK(c, response.MeResponse{User: nil})
	}

	return presenter.OK(c, response.MeResponse{
		User: response.NewUserResponse(output.User),
	})
}

// setRefreshTokenCookie はリフレッシュトークンをHttpOnly Cookieに設定します
func (h *AuthHandler) setRefreshTokenCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieRefreshToken,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   h.refreshTokenMaxAge,
	})
}

// setAccessTokenCookie はアクセストークンをHttpOnly Cookieに設定します
func (h *AuthHandler) setAccessTokenCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieAccessToken,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   h.accessTokenMaxAge,
	})
}

// clearTokenCookies は両方のトークンクッキーを破棄します
func (h *AuthHandler) clearTokenCookies(c echo.Context) {
	for _, name := range []string{middleware.CookieAccessToken, middleware.CookieRefreshToken} {
		c.SetCookie(&http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			Secure:   h.secureCookies,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
		})
	}
}
