package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
	"github.com/Hiro-mackay/gc-rental/pkg/jwt"
)

const (
	ContextKeyUserID = "user_id"
	ContextKeyClaims = "claims"
)

// GetUserID はコンテキストからユーザーIDを取得します
func GetUserID(c echo.Context) string {
	if id, ok := c.Get(ContextKeyUserID).(string); ok {
		return id
	}
	return ""
}

// GetUserUUID はコンテキストからユーザーIDをUUIDとして取得します
func GetUserUUID(c echo.Context) (uuid.UUID, error) {
	userID := GetUserID(c)
	if userID == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(userID)
}

// GetClaims はコンテキストからアクセストークンのクレームを取得します
func GetClaims(c echo.Context) *jwt.Claims {
	if claims, ok := c.Get(ContextKeyClaims).(*jwt.Claims); ok {
		return claims
	}
	return nil
}

// GetRole はコンテキストからユーザーロールを取得します
func GetRole(c echo.Context) entity.Role {
	claims := GetClaims(c)
	if claims == nil {
		return ""
	}
	return entity.Role(claims.Role)
}

// IsAdmin は現在のセッションが管理者かを判定します
func IsAdmin(c echo.Context) bool {
	return GetRole(c) == entity.RoleAdmin
}

// SetClaims はコンテキストにクレームを設定します
func SetClaims(c echo.Context, claims *jwt.Claims) {
	c.Set(ContextKeyUserID, claims.UserID.String())
	c.Set(ContextKeyClaims, claims)
}
