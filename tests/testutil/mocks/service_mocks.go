package mocks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
	"github.com/Hiro-mackay/gc-rental/internal/domain/service"
)

// MockDescriptionGenerator is a mock implementation of service.DescriptionGenerator
type MockDescriptionGenerator struct {
	mock.Mock
}

func NewMockDescriptionGenerator(t *testing.T) *MockDescriptionGenerator {
	m := &MockDescriptionGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockDescriptionGenerator) Generate(ctx context.Context, input service.DescriptionInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

// MockListingCache is a mock implementation of service.ListingCache
type MockListingCache struct {
	mock.Mock
}

func NewMockListingCache(t *testing.T) *MockListingCache {
	m := &MockListingCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockListingCache) Get(ctx context.Context) ([]*entity.Apartment, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]*entity.Apartment), args.Bool(1), args.Error(2)
}

func (m *MockListingCache) Set(ctx context.Context, apartments []*entity.Apartment) error {
	args := m.Called(ctx, apartments)
	return args.Error(0)
}

func (m *MockListingCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockPhotoStorage is a mock implementation of service.PhotoStorage
type MockPhotoStorage struct {
	mock.Mock
}

func NewMockPhotoStorage(t *testing.T) *MockPhotoStorage {
	m := &MockPhotoStorage{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPhotoStorage) CreateUploadURL(ctx context.Context, apartmentID uuid.UUID, fileName string) (*service.PhotoUpload, error) {
	args := m.Called(ctx, apartmentID, fileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PhotoUpload), args.Error(1)
}
