package query

import (
	"context"

	"github.com/Hiro-mackay/gc-rental/internal/domain/repository"
	"github.com/Hiro-mackay/gc-rental/pkg/apperror"
)

// ListAllBookingsOutput は全予約一覧の出力を定義します
type ListAllBookingsOutput struct {
	Bookings []*repository.BookingWithRelations
}

// ListAllBookingsQuery は全予約一覧クエリです（管理画面用）
type ListAllBookingsQuery struct {
	bookingRepo repository.BookingRepository
}

// NewListAllBookingsQuery は新しいListAllBookingsQueryを作成します
func NewListAllBookingsQuery(bookingRepo repository.BookingRepository) *ListAllBookingsQuery {
	return &ListAllBookingsQuery{bookingRepo: bookingRepo}
}

// Execute は全予約一覧を取得します
func (q *ListAllBookingsQuery) Execute(ctx context.Context) (*ListAllBookingsOutput, error) {
	bookings, err := q.bookingRepo.ListAll(ctx)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}

	return &ListAllBookingsOutput{Bookings: bookings}, nil
}
