package valueobject

import (
	"strings"
	"testing"
)

func TestNewEmail_ValidAddress_ReturnsEmail(t *testing.T) {
	email, err := NewEmail("User@Example.com")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if email.String() != "user@example.com" {
		t.Errorf("got %q, want lowercased address", email.String())
	}
}

func TestNewEmail_EmptyString_ReturnsError(t *testing.T) {
	_, err := NewEmail("")

	if err == nil {
		t.Fatal("expected error for empty email")
	}
}

func TestNewEmail_InvalidFormat_ReturnsError(t *testing.T) {
	_, err := NewEmail("not-an-email")

	if err == nil {
		t.Fatal("expected error for invalid format")
	}
}

func TestNewEmail_DisplayNameForm_ReturnsError(t *testing.T) {
	// 表示名付きのRFC 5322形式はアドレス単体として受け付けない
	_, err := NewEmail("User Name <user@example.com>")

	if err == nil {
		t.Fatal("expected error for display-name form")
	}
}

func TestNewEmail_TooLong_ReturnsError(t *testing.T) {
	long := strings.Repeat("a", 250) + "@example.com"
	_, err := NewEmail(long)

	if err == nil {
		t.Fatal("expected error for overly long email")
	}
}

func TestPassword_Verify_MatchesOriginalPlaintext(t *testing.T) {
	password, err := NewPassword("Sup3rSecret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !password.Verify("Sup3rSecret") {
		t.Error("expected password to verify against original plaintext")
	}
	if password.Verify("wrong-password") {
		t.Error("expected verification to fail for wrong plaintext")
	}
}

func TestNewPassword_TooShort_ReturnsError(t *testing.T) {
	_, err := NewPassword("Ab1")

	if err == nil {
		t.Fatal("expected error for short password")
	}
}

func TestNewPassword_SingleCharacterClass_ReturnsError(t *testing.T) {
	_, err := NewPassword("aaaaaaaaaa")

	if err == nil {
		t.Fatal("expected error for weak password")
	}
}
