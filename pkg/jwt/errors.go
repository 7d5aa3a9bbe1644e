package jwt

import "errors"

var (
	ErrAccessSecretRequired  = errors.New("jwt access secret is required")
	ErrRefreshSecretRequired = errors.New("jwt refresh secret is required")
	ErrSecretTooShort        = errors.New("jwt secret must be at least 32 characters")
	ErrInvalidToken          = errors.New("invalid token")
	ErrInvalidSigningMethod  = errors.New("invalid signing method")
)
