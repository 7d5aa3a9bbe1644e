package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus は予約の状態を定義します
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// IsValid は状態が有効かを判定します
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// Booking は予約エンティティを定義します
type Booking struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ApartmentID uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	TotalPrice  int
	Status      BookingStatus
	CreatedAt   time.Time
}

// NewBooking は新しい予約を作成します
// 合計金額は宿泊日数と日額から計算されます
func NewBooking(userID, apartmentID uuid.UUID, startDate, endDate time.Time, pricePerDay int) *Booking {
	return &Booking{
		ID:          uuid.New(),
		UserID:      userID,
		ApartmentID: apartmentID,
		StartDate:   startDate,
		EndDate:     endDate,
		TotalPrice:  NumberOfDays(startDate, endDate) * pricePerDay,
		Status:      BookingStatusConfirmed,
		CreatedAt:   time.Now(),
	}
}

// NumberOfDays は宿泊日数を返します（切り上げ）
func NumberOfDays(startDate, endDate time.Time) int {
	hours := endDate.Sub(startDate).Hours()
	days := int(hours / 24)
	if hours > float64(days)*24 {
		days++
	}
	return days
}
