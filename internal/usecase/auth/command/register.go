package command

import (
	"context"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
	"github.com/Hiro-mackay/gc-rental/internal/domain/repository"
	"github.com/Hiro-mackay/gc-rental/internal/domain/valueobject"
	"github.com/Hiro-mackay/gc-rental/pkg/apperror"
	"github.com/Hiro-mackay/gc-rental/pkg/jwt"
)

// RegisterInput はユーザー登録の入力を定義します
type RegisterInput struct {
	Email    string
	Password string
}

// RegisterOutput はユーザー登録の出力を定義します
type RegisterOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int // seconds
	User         *entity.User
}

// RegisterCommand はユーザー登録コマンドです
type RegisterCommand struct {
	userRepo     repository.UserRepository
	tokenService *jwt.TokenService
}

// NewRegisterCommand は新しいRegisterCommandを作成します
func NewRegisterCommand(userRepo repository.UserRepository, tokenService *jwt.TokenService) *RegisterCommand {
	return &RegisterCommand{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Execute はユーザー登録を実行します
func (c *RegisterCommand) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	// 1. 入力の検証
	email, err := valueobject.NewEmail(input.Email)
	if err != nil {
		return nil, apperror.NewInvalidRequestError(err.Error())
	}

	password, err := valueobject.NewPassword(input.Password)
	if err != nil {
		return nil, apperror.NewInvalidRequestError(err.Error())
	}

	// 2. 重複チェック
	exists, err := c.userRepo.Exists(ctx, email)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}
	if exists {
		return nil, apperror.NewConflictError("email already registered")
	}

	// 3. ユーザー作成（登録経由は常にUSERロール）
	user := entity.NewUser(email, password.Hash())
	if err := c.userRepo.Create(ctx, user); err != nil {
		return nil, apperror.NewInternalError(err)
	}

	// 4. トークンペアを発行
	accessToken, refreshToken, err := c.tokenService.GenerateTokenPair(user.ID, user.Email.String(), string(user.Role))
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}

	return &RegisterOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(c.tokenService.GetAccessTokenExpiry().Seconds()),
		User:         user,
	}, nil
}
