package command

import (
	"context"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
	"github.com/Hiro-mackay/gc-rental/internal/domain/repository"
	"github.com/Hiro-mackay/gc-rental/internal/domain/valueobject"
	"github.com/Hiro-mackay/gc-rental/pkg/apperror"
)

// BootstrapAdminInput は管理者シードの入力を定義します
type BootstrapAdminInput struct {
	Email    string
	Password string
}

// BootstrapAdminOutput は管理者シードの出力を定義します
type BootstrapAdminOutput struct {
	User    *entity.User
	Created bool
}

// BootstrapAdminCommand は管理者アカウントのシードコマンドです
// 登録APIは常にUSERロールで作成するため、管理者はこのコマンドで用意します
// 既に同じメールアドレスのユーザーが存在する場合は何もしません
type BootstrapAdminCommand struct {
	userRepo repository.UserRepository
}

// NewBootstrapAdminCommand は新しいBootstrapAdminCommandを作成します
func NewBootstrapAdminCommand(userRepo repository.UserRepository) *BootstrapAdminCommand {
	return &BootstrapAdminCommand{userRepo: userRepo}
}

// Execute は管理者アカウントを作成します（冪等）
func (c *BootstrapAdminCommand) Execute(ctx context.Context, input BootstrapAdminInput) (*BootstrapAdminOutput, error) {
	email, err := valueobject.NewEmail(input.Email)
	if err != nil {
		return nil, apperror.NewInvalidRequestError(err.Error())
	}

	password, err := valueobject.NewPassword(input.Password)
	if err != nil {
		return nil, apperror.NewInvalidRequestError(err.Error())
	}

	exists, err := c.userRepo.Exists(ctx, email)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}
	if exists {
		user, err := c.userRepo.FindByEmail(ctx, email)
		if err != nil {
			return nil, apperror.NewInternalError(err)
		}
		return &BootstrapAdminOutput{User: user, Created: false}, nil
	}

	user := entity.NewAdminUser(email, password.Hash())
	if err := c.userRepo.Create(ctx, user); err != nil {
		return nil, apperror.NewInternalError(err)
	}

	return &BootstrapAdminOutput{User: user, Created: true}, nil
}
