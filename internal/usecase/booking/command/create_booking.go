package command

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
	"github.com/Hiro-mackay/gc-rental/internal/domain/repository"
	"github.com/Hiro-mackay/gc-rental/internal/infrastructure/database"
	"github.com/Hiro-mackay/gc-rental/pkg/apperror"
)

// CreateBookingInput は予約作成の入力を定義します
type CreateBookingInput struct {
	UserID      uuid.UUID
	Role        entity.Role
	ApartmentID uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
}

// CreateBookingOutput は予約作成の出力を定義します
type CreateBookingOutput struct {
	Booking *entity.Booking
}

// CreateBookingCommand は予約作成コマンドです
type CreateBookingCommand struct {
	bookingRepo   repository.BookingRepository
	apartmentRepo repository.ApartmentRepository
	txManager     repository.TransactionManager
}

// NewCreateBookingCommand は新しいCreateBookingCommandを作成します
func NewCreateBookingCommand(
	bookingRepo repository.BookingRepository,
	apartmentRepo repository.ApartmentRepository,
	txManager repository.TransactionManager,
) *CreateBookingCommand {
	return &CreateBookingCommand{
		bookingRepo:   bookingRepo,
		apartmentRepo: apartmentRepo,
		txManager:     txManager,
	}
}

// Execute は予約作成を実行します
// 予約できるのはUSERロールのみです（管理者は予約を作成できません）
func (c *CreateBookingCommand) Execute(ctx context.Context, input CreateBookingInput) (*CreateBookingOutput, error) {
	if input.Role != entity.RoleUser {
		return nil, apperror.NewForbiddenError("only users can create bookings")
	}

	// 開始日は日単位で判定する（当日開始は許可）
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if input.StartDate.Before(today) {
		return nil, apperror.NewInvalidRequestError("start date must be in the future")
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, apperror.NewInvalidRequestError("end date must be after start date")
	}

	var booking *entity.Booking

	// 料金計算の基準となる物件の取得と予約の作成を同一トランザクションで行う
	err := c.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		apartment, err := c.apartmentRepo.FindActiveByID(ctx, input.ApartmentID)
		if err != nil {
			if database.IsNotFoundError(err) {
				return apperror.NewNotFoundError("apartment")
			}
			return apperror.NewInternalError(err)
		}

		booking = entity.NewBooking(input.UserID, input.ApartmentID, input.StartDate, input.EndDate, apartment.PricePerDay)

		if err := c.bookingRepo.Create(ctx, booking); err != nil {
			return apperror.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateBookingOutput{Booking: booking}, nil
}
