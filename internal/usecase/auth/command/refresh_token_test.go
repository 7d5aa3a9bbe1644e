package command

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hiro-mackay/gc-rental/pkg/apperror"
)

func TestRefreshTokenCommand_Execute_Success(t *testing.T) {
	tokenService := newTestTokenService()
	userID := uuid.New()

	refreshToken, err := tokenService.GenerateRefreshToken(userID, "user@example.com", "USER")
	require.NoError(t, err)

	cmd := NewRefreshTokenCommand(tokenService)

	output, err := cmd.Execute(context.Background(), RefreshTokenInput{RefreshToken: refreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, output.AccessToken)
	assert.Equal(t, 900, output.ExpiresIn)

	// 新しいアクセストークンはリフレッシュトークンと同じクレームを持つ
	claims, err := tokenService.ValidateAccessToken(output.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "USER", claims.Role)
}

func TestRefreshTokenCommand_Execute_InvalidToken(t *testing.T) {
	cmd := NewRefreshTokenCommand(newTestTokenService())

	_, err := cmd.Execute(context.Background(), RefreshTokenInput{RefreshToken: "not-a-token"})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
}

func TestRefreshTokenCommand_Execute_RejectsAccessToken(t *testing.T) {
	tokenService := newTestTokenService()

	// アクセストークンは別のシークレットで署名されているため、リフレッシュには使えない
	accessToken, err := tokenService.GenerateAccessToken(uuid.New(), "user@example.com", "USER")
	require.NoError(t, err)

	cmd := NewRefreshTokenCommand(tokenService)

	_, err = cmd.Execute(context.Background(), RefreshTokenInput{RefreshToken: accessToken})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
}
