package jwt

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims はトークンに埋め込むクレームを定義します
// アクセストークンとリフレッシュトークンは同じクレーム形状を共有しますが、
// 別々のシークレットで署名されるため互換性はありません
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"uid"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
}
