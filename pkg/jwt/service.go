package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService はJWTの発行と検証を提供します
// 状態を持たないため複数ゴルーチンから安全に利用できます
type TokenService struct {
	config Config
	now    func() time.Time
}

// NewTokenService は新しいTokenServiceを作成します
func NewTokenService(cfg Config) *TokenService {
	return &TokenService{
		config: cfg,
		now:    time.Now,
	}
}

// GenerateTokenPair はアクセストークンとリフレッシュトークンのペアを生成します
// 両トークンは発行時点の同一クレームを持ちますが、独立した資格情報です
func (s *TokenService) GenerateTokenPair(userID uuid.UUID, email, role string) (accessToken, refreshToken string, err error) {
	accessToken, err = s.GenerateAccessToken(userID, email, role)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.GenerateRefreshToken(userID, email, role)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// GenerateAccessToken はアクセストークンを生成します
func (s *TokenService) GenerateAccessToken(userID uuid.UUID, email, role string) (string, error) {
	token, err := s.sign(userID, email, role, s.config.AccessSecret, s.config.AccessTokenExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, nil
}

// GenerateRefreshToken はリフレッシュトークンを生成します
func (s *TokenService) GenerateRefreshToken(userID uuid.UUID, email, role string) (string, error) {
	token, err := s.sign(userID, email, role, s.config.RefreshSecret, s.config.RefreshTokenExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return token, nil
}

// ValidateAccessToken はアクセストークンを検証します
func (s *TokenService) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.parse(tokenString, s.config.AccessSecret)
}

// ValidateRefreshToken はリフレッシュトークンを検証します
func (s *TokenService) ValidateRefreshToken(tokenString string) (*Claims, error) {
	return s.parse(tokenString, s.config.RefreshSecret)
}

// GetAccessTokenExpiry はアクセストークンの有効期限を返します
func (s *TokenService) GetAccessTokenExpiry() time.Duration {
	return s.config.AccessTokenExpiry
}

// GetRefreshTokenExpiry はリフレッシュトークンの有効期限を返します
func (s *TokenService) GetRefreshTokenExpiry() time.Duration {
	return s.config.RefreshTokenExpiry
}

func (s *TokenService) sign(userID uuid.UUID, email, role, secret string, expiry time.Duration) (string, error) {
	now := s.now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
		UserID: userID,
		Email:  email,
		Role:   role,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func (s *TokenService) parse(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSigningMethod, token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
