package jwt

import "time"

// Config はJWT設定を定義します
type Config struct {
	AccessSecret       string        // アクセストークン署名用シークレット
	RefreshSecret      string        // リフレッシュトークン署名用シークレット
	Issuer             string        // 発行者
	AccessTokenExpiry  time.Duration // アクセストークン有効期限
	RefreshTokenExpiry time.Duration // リフレッシュトークン有効期限
}

// DefaultConfig はデフォルト設定を返します
func DefaultConfig() Config {
	return Config{
		Issuer:             "gc-rental",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
	}
}

// Validate は設定を検証します
func (c Config) Validate() error {
	if c.AccessSecret == "" {
		return ErrAccessSecretRequired
	}
	if c.RefreshSecret == "" {
		return ErrRefreshSecretRequired
	}
	if len(c.AccessSecret) < 32 || len(c.RefreshSecret) < 32 {
		return ErrSecretTooShort
	}
	return nil
}
