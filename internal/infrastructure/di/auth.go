package di

import (
	authcmd "github.com/Hiro-mackay/gc-rental/internal/usecase/auth/command"
	authqry "github.com/Hiro-mackay/gc-rental/internal/usecase/auth/query"
)

// AuthUseCases はAuth関連のUseCaseを保持します
type AuthUseCases struct {
	// Commands
	Register     *authcmd.RegisterCommand
	Login        *authcmd.LoginCommand
	RefreshToken *authcmd.RefreshTokenCommand

	// Queries
	GetUser *authqry.GetUserQuery
}

// NewAuthUseCases は新しいAuthUseCasesを作成します
func NewAuthUseCases(c *Container) *AuthUseCases {
	return &AuthUseCases{
		Register:     authcmd.NewRegisterCommand(c.UserRepo, c.TokenService),
		Login:        authcmd.NewLoginCommand(c.UserRepo, c.TokenService),
		RefreshToken: authcmd.NewRefreshTokenCommand(c.TokenService),
		GetUser:      authqry.NewGetUserQuery(c.UserRepo),
	}
}
