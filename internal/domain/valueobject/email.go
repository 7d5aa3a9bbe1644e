package valueobject

import (
	"fmt"
	"net/mail"
	"strings"
)

// Email はメールアドレスを表す値オブジェクトです
type Email struct {
	value string
}

// NewEmail は新しいEmailを作成します
func NewEmail(value string) (Email, error) {
	value = strings.TrimSpace(strings.ToLower(value))

	if value == "" {
		return Email{}, fmt.Errorf("email cannot be empty")
	}

	if len(value) > 254 {
		return Email{}, fmt.Errorf("email must be at most 254 characters")
	}

	// RFC 5322に準拠したメールアドレスの検証
	// 表示名付きの形式（"Name <a@b>"）はアドレスとして扱わない
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return Email{}, fmt.Errorf("invalid email format")
	}

	return Email{value: value}, nil
}

// String はメールアドレスを文字列で返します
func (e Email) String() string {
	return e.value
}

// Equals は2つのEmailが等しいかを判定します
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}
