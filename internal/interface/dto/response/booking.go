package response

import (
	"time"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
	"github.com/Hiro-mackay/gc-rental/internal/domain/repository"
)

// BookingApartmentResponse は予約に含める物件要約レスポンスを定義します
type BookingApartmentResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	City        string   `json:"city"`
	Address     string   `json:"address"`
	PricePerDay int      `json:"price_per_day"`
	Photos      []string `json:"photos"`
}

// BookingResponse は予約レスポンスを定義します
// UserEmailは管理画面の一覧でのみ設定されます
type BookingResponse struct {
	ID          string                    `json:"id"`
	ApartmentID string                    `json:"apartment_id"`
	StartDate   time.Time                 `json:"start_date"`
	EndDate     time.Time                 `json:"end_date"`
	TotalPrice  int                       `json:"total_price"`
	Status      string                    `json:"status"`
	CreatedAt   time.Time                 `json:"created_at"`
	UserEmail   string                    `json:"user_email,omitempty"`
	Apartment   *BookingApartmentResponse `json:"apartment,omitempty"`
}

// NewBookingResponse はBookingエンティティからレスポンスを作成します
func NewBookingResponse(booking *entity.Booking) *BookingResponse {
	return &BookingResponse{
		ID:          booking.ID.String(),
		ApartmentID: booking.ApartmentID.String(),
		StartDate:   booking.StartDate,
		EndDate:     booking.EndDate,
		TotalPrice:  booking.TotalPrice,
		Status:      string(booking.Status),
		CreatedAt:   booking.CreatedAt,
	}
}

// NewBookingWithRelationsResponse は関連情報付き予約からレスポンスを作成します
// includeUserEmail がtrueの場合、予約者のメールアドレスを含めます（管理画面用）
func NewBookingWithRelationsResponse(row *repository.BookingWithRelations, includeUserEmail bool) *BookingResponse {
	resp := NewBookingResponse(row.Booking)
	resp.Apartment = &BookingApartmentResponse{
		ID:          row.Apartment.ID.String(),
		Title:       row.Apartment.Title,
		City:        row.Apartment.City,
		Address:     row.Apartment.Address,
		PricePerDay: row.Apartment.PricePerDay,
		Photos:      row.Apartment.Photos,
	}
	if includeUserEmail {
		resp.UserEmail = row.UserEmail
	}
	return resp
}

// NewBookingListResponse は関連情報付き予約のスライスからレスポンスを作成します
func NewBookingListResponse(rows []*repository.BookingWithRelations, includeUserEmail bool) []*BookingResponse {
	responses := make([]*BookingResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, NewBookingWithRelationsResponse(row, includeUserEmail))
	}
	return responses
}
