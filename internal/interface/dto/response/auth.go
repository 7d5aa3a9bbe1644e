package response

import (
	"time"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
)

// UserResponse はユーザー情報レスポンスを定義します
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse はUserエンティティからレスポンスを作成します
func NewUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email.String(),
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}

// AuthResponse は認証成功レスポンスを定義します
// リフレッシュトークンはボディに含まれず、HttpOnly Cookieで返されます
type AuthResponse struct {
	AccessToken string        `json:"access_token"`
	ExpiresIn   int           `json:"expires_in"`
	User        *UserResponse `json:"user"`
}

// RefreshResponse はトークンリフレッシュレスポンスを定義します
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// MeResponse は現在のユーザー情報レスポンスを定義します
// 未認証の場合もエラーにせず user: null を返します
type MeResponse struct {
	User *UserResponse `json:"user"`
}
