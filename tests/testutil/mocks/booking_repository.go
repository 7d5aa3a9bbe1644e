package mocks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
	"github.com/Hiro-mackay/gc-rental/internal/domain/repository"
)

// MockBookingRepository is a mock implementation of repository.BookingRepository
type MockBookingRepository struct {
	mock.Mock
}

func NewMockBookingRepository(t *testing.T) *MockBookingRepository {
	m := &MockBookingRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*repository.BookingWithRelations, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.BookingWithRelations), args.Error(1)
}

func (m *MockBookingRepository) ListAll(ctx context.Context) ([]*repository.BookingWithRelations, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.BookingWithRelations), args.Error(1)
}
