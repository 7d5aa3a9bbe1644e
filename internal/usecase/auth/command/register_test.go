package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
	"github.com/Hiro-mackay/gc-rental/pkg/apperror"
	"github.com/Hiro-mackay/gc-rental/pkg/jwt"
	"github.com/Hiro-mackay/gc-rental/tests/testutil/mocks"
)

func newTestTokenService() *jwt.TokenService {
	return jwt.NewTokenService(jwt.Config{
		AccessSecret:       "test-access-secret",
		RefreshSecret:      "test-refresh-secret",
		Issuer:             "gc-rental-test",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
	})
}

func TestRegisterCommand_Execute_Success(t *testing.T) {
	userRepo := mocks.NewMockUserRepository(t)
	userRepo.On("Exists", mock.Anything, mock.Anything).Return(false, nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)

	tokenService := newTestTokenService()
	cmd := NewRegisterCommand(userRepo, tokenService)

	output, err := cmd.Execute(context.Background(), RegisterInput{
		Email:    "user@example.com",
		Password: "Password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, output.AccessToken)
	assert.NotEmpty(t, output.RefreshToken)
	assert.Equal(t, 900, output.ExpiresIn)
	assert.Equal(t, "user@example.com", output.User.Email.String())
	// 登録経由のユーザーは常にUSERロール
	assert.Equal(t, entity.RoleUser, output.User.Role)

	claims, err := tokenService.ValidateAccessToken(output.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, output.User.ID, claims.UserID)
	assert.Equal(t, "USER", claims.Role)
}

func TestRegisterCommand_Execute_DuplicateEmail(t *testing.T) {
	userRepo := mocks.NewMockUserRepository(t)
	userRepo.On("Exists", mock.Anything, mock.Anything).Return(true, nil)

	cmd := NewRegisterCommand(userRepo, newTestTokenService())

	_, err := cmd.Execute(context.Background(), RegisterInput{
		Email:    "taken@example.com",
		Password: "Password123",
	})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)
	userRepo.AssertNotCalled(t, "Create")
}

func TestRegisterCommand_Execute_InvalidEmail(t *testing.T) {
	userRepo := mocks.NewMockUserRepository(t)
	cmd := NewRegisterCommand(userRepo, newTestTokenService())

	_, err := cmd.Execute(context.Background(), RegisterInput{
		Email:    "not-an-email",
		Password: "Password123",
	})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeInvalidRequest, appErr.Code)
	userRepo.AssertNotCalled(t, "Exists")
}

func TestRegisterCommand_Execute_WeakPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"too short", "Ab1"},
		{"single character class", "abcdefghij"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository(t)
			cmd := NewRegisterCommand(userRepo, newTestTokenService())

			_, err := cmd.Execute(context.Background(), RegisterInput{
				Email:    "user@example.com",
				Password: tt.password,
			})

			require.Error(t, err)
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperror.CodeInvalidRequest, appErr.Code)
		})
	}
}
