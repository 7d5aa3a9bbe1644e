package command

import (
	"context"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
	"github.com/Hiro-mackay/gc-rental/internal/domain/repository"
	"github.com/Hiro-mackay/gc-rental/internal/domain/valueobject"
	"github.com/Hiro-mackay/gc-rental/pkg/apperror"
	"github.com/Hiro-mackay/gc-rental/pkg/jwt"
)

// LoginInput はログインの入力を定義します
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput はログインの出力を定義します
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int // seconds
	User         *entity.User
}

// LoginCommand はログインコマンドです
type LoginCommand struct {
	userRepo     repository.UserRepository
	tokenService *jwt.TokenService
}

// NewLoginCommand は新しいLoginCommandを作成します
func NewLoginCommand(userRepo repository.UserRepository, tokenService *jwt.TokenService) *LoginCommand {
	return &LoginCommand{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Execute はログインを実行します
func (c *LoginCommand) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	// 1. メールアドレスでユーザーを検索
	// 失敗理由は区別せずに同じエラーを返す
	email, err := valueobject.NewEmail(input.Email)
	if err != nil {
		return nil, apperror.NewUnauthorizedError("invalid credentials")
	}

	user, err := c.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperror.NewUnauthorizedError("invalid credentials")
	}

	// 2. パスワード検証
	password := valueobject.PasswordFromHash(user.PasswordHash)
	if !password.Verify(input.Password) {
		return nil, apperror.NewUnauthorizedError("invalid credentials")
	}

	// 3. トークンペアを発行
	accessToken, refreshToken, err := c.tokenService.GenerateTokenPair(user.ID, user.Email.String(), string(user.Role))
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}

	return &LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(c.tokenService.GetAccessTokenExpiry().Seconds()),
		User:         user,
	}, nil
}
