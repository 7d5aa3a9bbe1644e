package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
	"github.com/Hiro-mackay/gc-rental/internal/domain/valueobject"
	"github.com/Hiro-mackay/gc-rental/pkg/apperror"
	"github.com/Hiro-mackay/gc-rental/tests/testutil/mocks"
)

func newTestUser(t *testing.T, emailStr, passwordStr string) *entity.User {
	t.Helper()
	email, err := valueobject.NewEmail(emailStr)
	require.NoError(t, err)
	password, err := valueobject.NewPassword(passwordStr)
	require.NoError(t, err)
	return entity.NewUser(email, password.Hash())
}

func TestLoginCommand_Execute_Success(t *testing.T) {
	user := newTestUser(t, "user@example.com", "Password123")

	userRepo := mocks.NewMockUserRepository(t)
	userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

	tokenService := newTestTokenService()
	cmd := NewLoginCommand(userRepo, tokenService)

	output, err := cmd.Execute(context.Background(), LoginInput{
		Email:    "user@example.com",
		Password: "Password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, output.AccessToken)
	assert.NotEmpty(t, output.RefreshToken)
	assert.Equal(t, user.ID, output.User.ID)

	claims, err := tokenService.ValidateAccessToken(output.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestLoginCommand_Execute_WrongPassword(t *testing.T) {
	user := newTestUser(t, "user@example.com", "Password123")

	userRepo := mocks.NewMockUserRepository(t)
	userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

	cmd := NewLoginCommand(userRepo, newTestTokenService())

	_, err := cmd.Execute(context.Background(), LoginInput{
		Email:    "user@example.com",
		Password: "WrongPassword1",
	})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
	assert.Equal(t, "invalid credentials", appErr.Message)
}

func TestLoginCommand_Execute_UnknownEmail(t *testing.T) {
	userRepo := mocks.NewMockUserRepository(t)
	userRepo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	cmd := NewLoginCommand(userRepo, newTestTokenService())

	_, err := cmd.Execute(context.Background(), LoginInput{
		Email:    "unknown@example.com",
		Password: "Password123",
	})

	// 存在しないユーザーとパスワード不一致は同じエラーメッセージを返す
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
	assert.Equal(t, "invalid credentials", appErr.Message)
}

func TestLoginCommand_Execute_MalformedEmail(t *testing.T) {
	userRepo := mocks.NewMockUserRepository(t)
	cmd := NewLoginCommand(userRepo, newTestTokenService())

	_, err := cmd.Execute(context.Background(), LoginInput{
		Email:    "not-an-email",
		Password: "Password123",
	})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
	userRepo.AssertNotCalled(t, "FindByEmail")
}
