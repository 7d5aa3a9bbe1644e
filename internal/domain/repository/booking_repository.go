package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
)

// BookingApartmentSummary は予約一覧に含める物件の要約です
type BookingApartmentSummary struct {
	ID          uuid.UUID
	Title       string
	City        string
	Address     string
	PricePerDay int
	Photos      []string
}

// BookingWithRelations は関連情報付きの予約行を表します
type BookingWithRelations struct {
	Booking   *entity.Booking
	UserEmail string
	Apartment BookingApartmentSummary
}

// BookingRepository は予約リポジトリインターフェースを定義します
type BookingRepository interface {
	// Create は予約を作成します
	Create(ctx context.Context, booking *entity.Booking) error

	// ListByUserID はユーザーの予約を作成日時の降順で返します
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingWithRelations, error)

	// ListAll は全予約を作成日時の降順で返します（管理画面用）
	ListAll(ctx context.Context) ([]*BookingWithRelations, error)
}
