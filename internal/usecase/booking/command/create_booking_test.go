package command

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
	"github.com/Hiro-mackay/gc-rental/internal/infrastructure/database"
	"github.com/Hiro-mackay/gc-rental/pkg/apperror"
	"github.com/Hiro-mackay/gc-rental/tests/testutil/mocks"
)

func newActiveApartment(pricePerDay int) *entity.Apartment {
	return entity.NewApartment("Shibuya Flat", "Tokyo", "1-2-3 Shibuya", pricePerDay, 2, "", nil, true)
}

func TestCreateBookingCommand_Execute_Success(t *testing.T) {
	apartment := newActiveApartment(10000)
	userID := uuid.New()

	bookingRepo := mocks.NewMockBookingRepository(t)
	apartmentRepo := mocks.NewMockApartmentRepository(t)
	txManager := mocks.NewMockTransactionManager(t)

	apartmentRepo.On("FindActiveByID", mock.Anything, apartment.ID).Return(apartment, nil)
	bookingRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Booking")).Return(nil)
	txManager.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)

	cmd := NewCreateBookingCommand(bookingRepo, apartmentRepo, txManager)

	start := time.Now().Add(24 * time.Hour)
	end := start.Add(3 * 24 * time.Hour)

	output, err := cmd.Execute(context.Background(), CreateBookingInput{
		UserID:      userID,
		Role:        entity.RoleUser,
		ApartmentID: apartment.ID,
		StartDate:   start,
		EndDate:     end,
	})

	require.NoError(t, err)
	assert.Equal(t, userID, output.Booking.UserID)
	assert.Equal(t, apartment.ID, output.Booking.ApartmentID)
	assert.Equal(t, 30000, output.Booking.TotalPrice)
	assert.Equal(t, entity.BookingStatusConfirmed, output.Booking.Status)
}

func TestCreateBookingCommand_Execute_PartialDayRoundsUp(t *testing.T) {
	apartment := newActiveApartment(10000)

	bookingRepo := mocks.NewMockBookingRepository(t)
	apartmentRepo := mocks.NewMockApartmentRepository(t)
	txManager := mocks.NewMockTransactionManager(t)

	apartmentRepo.On("FindActiveByID", mock.Anything, apartment.ID).Return(apartment, nil)
	bookingRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Booking")).Return(nil)
	txManager.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)

	cmd := NewCreateBookingCommand(bookingRepo, apartmentRepo, txManager)

	// 2.5日は3日分として課金される
	start := time.Now().Add(24 * time.Hour)
	end := start.Add(60 * time.Hour)

	output, err := cmd.Execute(context.Background(), CreateBookingInput{
		UserID:      uuid.New(),
		Role:        entity.RoleUser,
		ApartmentID: apartment.ID,
		StartDate:   start,
		EndDate:     end,
	})

	require.NoError(t, err)
	assert.Equal(t, 30000, output.Booking.TotalPrice)
}

func TestCreateBookingCommand_Execute_AdminForbidden(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepository(t)
	apartmentRepo := mocks.NewMockApartmentRepository(t)
	txManager := mocks.NewMockTransactionManager(t)

	cmd := NewCreateBookingCommand(bookingRepo, apartmentRepo, txManager)

	start := time.Now().Add(24 * time.Hour)

	_, err := cmd.Execute(context.Background(), CreateBookingInput{
		UserID:      uuid.New(),
		Role:        entity.RoleAdmin,
		ApartmentID: uuid.New(),
		StartDate:   start,
		EndDate:     start.Add(24 * time.Hour),
	})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeForbidden, appErr.Code)
	apartmentRepo.AssertNotCalled(t, "FindActiveByID")
}

func TestCreateBookingCommand_Execute_StartDateInPast(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepository(t)
	apartmentRepo := mocks.NewMockApartmentRepository(t)
	txManager := mocks.NewMockTransactionManager(t)

	cmd := NewCreateBookingCommand(bookingRepo, apartmentRepo, txManager)

	start := time.Now().Add(-48 * time.Hour)

	_, err := cmd.Execute(context.Background(), CreateBookingInput{
		UserID:      uuid.New(),
		Role:        entity.RoleUser,
		ApartmentID: uuid.New(),
		StartDate:   start,
		EndDate:     start.Add(24 * time.Hour),
	})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeInvalidRequest, appErr.Code)
}

func TestCreateBookingCommand_Execute_StartDateTodayAllowed(t *testing.T) {
	apartment := newActiveApartment(10000)

	bookingRepo := mocks.NewMockBookingRepository(t)
	apartmentRepo := mocks.NewMockApartmentRepository(t)
	txManager := mocks.NewMockTransactionManager(t)

	apartmentRepo.On("FindActiveByID", mock.Anything, apartment.ID).Return(apartment, nil)
	bookingRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Booking")).Return(nil)
	txManager.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)

	cmd := NewCreateBookingCommand(bookingRepo, apartmentRepo, txManager)

	// 開始日の判定は日単位のため、当日開始は過去時刻でなくても受け付ける
	start := time.Now()

	output, err := cmd.Execute(context.Background(), CreateBookingInput{
		UserID:      uuid.New(),
		Role:        entity.RoleUser,
		ApartmentID: apartment.ID,
		StartDate:   start,
		EndDate:     start.Add(24 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, 10000, output.Booking.TotalPrice)
}

func TestCreateBookingCommand_Execute_EndDateBeforeStartDate(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepository(t)
	apartmentRepo := mocks.NewMockApartmentRepository(t)
	txManager := mocks.NewMockTransactionManager(t)

	cmd := NewCreateBookingCommand(bookingRepo, apartmentRepo, txManager)

	start := time.Now().Add(48 * time.Hour)

	_, err := cmd.Execute(context.Background(), CreateBookingInput{
		UserID:      uuid.New(),
		Role:        entity.RoleUser,
		ApartmentID: uuid.New(),
		StartDate:   start,
		EndDate:     start.Add(-24 * time.Hour),
	})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeInvalidRequest, appErr.Code)
}

func TestCreateBookingCommand_Execute_ApartmentNotFound(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepository(t)
	apartmentRepo := mocks.NewMockApartmentRepository(t)
	txManager := mocks.NewMockTransactionManager(t)

	apartmentID := uuid.New()
	apartmentRepo.On("FindActiveByID", mock.Anything, apartmentID).Return(nil, database.ErrNotFound)
	txManager.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)

	cmd := NewCreateBookingCommand(bookingRepo, apartmentRepo, txManager)

	start := time.Now().Add(24 * time.Hour)

	_, err := cmd.Execute(context.Background(), CreateBookingInput{
		UserID:      uuid.New(),
		Role:        entity.RoleUser,
		ApartmentID: apartmentID,
		StartDate:   start,
		EndDate:     start.Add(24 * time.Hour),
	})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeNotFound, appErr.Code)
	bookingRepo.AssertNotCalled(t, "Create")
}
