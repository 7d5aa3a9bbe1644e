package query

import (
	"context"

	"github.com/google/uuid"

	"github.com/Hiro-mackay/gc-rental/internal/domain/repository"
	"github.com/Hiro-mackay/gc-rental/pkg/apperror"
)

// ListMyBookingsInput は自分の予約一覧の入力を定義します
type ListMyBookingsInput struct {
	UserID uuid.UUID
}

// ListMyBookingsOutput は自分の予約一覧の出力を定義します
type ListMyBookingsOutput struct {
	Bookings []*repository.BookingWithRelations
}

// ListMyBookingsQuery は自分の予約一覧クエリです
type ListMyBookingsQuery struct {
	bookingRepo repository.BookingRepository
}

// NewListMyBookingsQuery は新しいListMyBookingsQueryを作成します
func NewListMyBookingsQuery(bookingRepo repository.BookingRepository) *ListMyBookingsQuery {
	return &ListMyBookingsQuery{bookingRepo: bookingRepo}
}

// Execute は自分の予約一覧を取得します
func (q *ListMyBookingsQuery) Execute(ctx context.Context, input ListMyBookingsInput) (*ListMyBookingsOutput, error) {
	bookings, err := q.bookingRepo.ListByUserID(ctx, input.UserID)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}

	return &ListMyBookingsOutput{Bookings: bookings}, nil
}
