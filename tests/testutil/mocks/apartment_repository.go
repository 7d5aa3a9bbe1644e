package mocks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
)

// MockApartmentRepository is a mock implementation of repository.ApartmentRepository
type MockApartmentRepository struct {
	mock.Mock
}

func NewMockApartmentRepository(t *testing.T) *MockApartmentRepository {
	m := &MockApartmentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockApartmentRepository) Create(ctx context.Context, apartment *entity.Apartment) error {
	args := m.Called(ctx, apartment)
	return args.Error(0)
}

func (m *MockApartmentRepository) Update(ctx context.Context, apartment *entity.Apartment) error {
	args := m.Called(ctx, apartment)
	return args.Error(0)
}

func (m *MockApartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockApartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Apartment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Apartment), args.Error(1)
}

func (m *MockApartmentRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Apartment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Apartment), args.Error(1)
}

func (m *MockApartmentRepository) ListActive(ctx context.Context) ([]*entity.Apartment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Apartment), args.Error(1)
}

func (m *MockApartmentRepository) ListAll(ctx context.Context) ([]*entity.Apartment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Apartment), args.Error(1)
}
