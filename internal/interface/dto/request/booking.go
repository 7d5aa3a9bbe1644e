package request

import "time"

// CreateBookingRequest は予約作成リクエストを定義します
type CreateBookingRequest struct {
	ApartmentID string    `json:"apartment_id" validate:"required,uuid"`
	StartDate   time.Time `json:"start_date" validate:"required,futuredate"`
	EndDate     time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
}
