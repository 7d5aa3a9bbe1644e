package command

import (
	"context"

	"github.com/Hiro-mackay/gc-rental/pkg/apperror"
	"github.com/Hiro-mackay/gc-rental/pkg/jwt"
)

// RefreshTokenInput はトークンリフレッシュの入力を定義します
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenOutput はトークンリフレッシュの出力を定義します
type RefreshTokenOutput struct {
	AccessToken string
	ExpiresIn   int // seconds
}

// RefreshTokenCommand はトークンリフレッシュコマンドです
// リフレッシュトークンのクレームから新しいアクセストークンを再署名します
// ロールの変更はリフレッシュトークンの失効まで反映されません
type RefreshTokenCommand struct {
	tokenService *jwt.TokenService
}

// NewRefreshTokenCommand は新しいRefreshTokenCommandを作成します
func NewRefreshTokenCommand(tokenService *jwt.TokenService) *RefreshTokenCommand {
	return &RefreshTokenCommand{tokenService: tokenService}
}

// Execute はトークンリフレッシュを実行します
func (c *RefreshTokenCommand) Execute(ctx context.Context, input RefreshTokenInput) (*RefreshTokenOutput, error) {
	// 1. リフレッシュトークンを検証
	claims, err := c.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, apperror.NewUnauthorizedError("invalid refresh token")
	}

	// 2. 同一クレームで新しいアクセストークンを発行
	accessToken, err := c.tokenService.GenerateAccessToken(claims.UserID, claims.Email, claims.Role)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}

	return &RefreshTokenOutput{
		AccessToken: accessToken,
		ExpiresIn:   int(c.tokenService.GetAccessTokenExpiry().Seconds()),
	}, nil
}
