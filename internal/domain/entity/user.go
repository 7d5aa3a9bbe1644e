package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/Hiro-mackay/gc-rental/internal/domain/valueobject"
)

// Role はユーザーの役割を定義します
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// IsValid は役割が有効かを判定します
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// User はユーザーエンティティを定義します
type User struct {
	ID           uuid.UUID
	Email        valueobject.Email
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser は新しいユーザーを作成します
// 登録経由のユーザーは常にUSERロールで作成されます
func NewUser(email valueobject.Email, passwordHash string) *User {
	now := time.Now()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewAdminUser は管理者ユーザーを作成します
// 登録APIからは到達できず、シード処理専用です
func NewAdminUser(email valueobject.Email, passwordHash string) *User {
	user := NewUser(email, passwordHash)
	user.Role = RoleAdmin
	return user
}

// IsAdmin はユーザーが管理者かを判定します
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
