package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
	domainrepo "github.com/Hiro-mackay/gc-rental/internal/domain/repository"
	"github.com/Hiro-mackay/gc-rental/internal/infrastructure/database"
)

// BookingRepository は予約リポジトリの実装です
type BookingRepository struct {
	*database.BaseRepository
}

// NewBookingRepository は新しいBookingRepositoryを作成します
func NewBookingRepository(txManager *database.TxManager) *BookingRepository {
	return &BookingRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

// Create は予約を作成します
func (r *BookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	querier := r.Querier(ctx)

	_, err := querier.Exec(ctx, `
		INSERT INTO bookings (id, user_id, apartment_id, start_date, end_date, total_price, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		booking.ID,
		booking.UserID,
		booking.ApartmentID,
		booking.StartDate,
		booking.EndDate,
		booking.TotalPrice,
		string(booking.Status),
		booking.CreatedAt,
	)

	return r.HandleError(err)
}

const bookingWithRelationsQuery = `
	SELECT b.id, b.user_id, b.apartment_id, b.start_date, b.end_date, b.total_price, b.status, b.created_at,
	       u.email,
	       a.id, a.title, a.city, a.address, a.price_per_day, a.photos
	FROM bookings b
	JOIN users u ON u.id = b.user_id
	JOIN apartments a ON a.id = b.apartment_id`

// ListByUserID はユーザーの予約を作成日時の降順で返します
func (r *BookingRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domainrepo.BookingWithRelations, error) {
	querier := r.Querier(ctx)

	rows, err := querier.Query(ctx, bookingWithRelationsQuery+`
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, r.HandleError(err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListAll は全予約を作成日時の降順で返します（管理画面用）
func (r *BookingRepository) ListAll(ctx context.Context) ([]*domainrepo.BookingWithRelations, error) {
	querier := r.Querier(ctx)

	rows, err := querier.Query(ctx, bookingWithRelationsQuery+`
		ORDER BY b.created_at DESC`)
	if err != nil {
		return nil, r.HandleError(err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// scanBookings は行セットを関連情報付き予約のスライスに変換します
func (r *BookingRepository) scanBookings(rows pgx.Rows) ([]*domainrepo.BookingWithRelations, error) {
	bookings := make([]*domainrepo.BookingWithRelations, 0)
	for rows.Next() {
		var (
			booking entity.Booking
			status  string
			result  domainrepo.BookingWithRelations
		)

		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.ApartmentID,
			&booking.StartDate,
			&booking.EndDate,
			&booking.TotalPrice,
			&status,
			&booking.CreatedAt,
			&result.UserEmail,
			&result.Apartment.ID,
			&result.Apartment.Title,
			&result.Apartment.City,
			&result.Apartment.Address,
			&result.Apartment.PricePerDay,
			&result.Apartment.Photos,
		)
		if err != nil {
			return nil, r.HandleError(err)
		}

		booking.Status = entity.BookingStatus(status)
		if result.Apartment.Photos == nil {
			result.Apartment.Photos = []string{}
		}
		result.Booking = &booking
		bookings = append(bookings, &result)
	}
	if err := rows.Err(); err != nil {
		return nil, r.HandleError(err)
	}

	return bookings, nil
}
