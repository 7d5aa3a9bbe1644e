package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
	"github.com/Hiro-mackay/gc-rental/tests/testutil/mocks"
)

func newActiveApartments() []*entity.Apartment {
	return []*entity.Apartment{
		entity.NewApartment("Shibuya Flat", "Tokyo", "1-2-3 Shibuya", 10000, 2, "", nil, true),
		entity.NewApartment("Namba Studio", "Osaka", "4-5-6 Namba", 8000, 1, "", nil, true),
	}
}

func TestListApartmentsQuery_Execute_CacheHit(t *testing.T) {
	apartments := newActiveApartments()

	apartmentRepo := mocks.NewMockApartmentRepository(t)
	listingCache := mocks.NewMockListingCache(t)
	listingCache.On("Get", mock.Anything).Return(apartments, true, nil)

	q := NewListApartmentsQuery(apartmentRepo, listingCache)

	output, err := q.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, output.Apartments, 2)

	// キャッシュヒット時はDBを参照しない
	apartmentRepo.AssertNotCalled(t, "ListActive")
}

func TestListApartmentsQuery_Execute_CacheMissFallsBackToDB(t *testing.T) {
	apartments := newActiveApartments()

	apartmentRepo := mocks.NewMockApartmentRepository(t)
	apartmentRepo.On("ListActive", mock.Anything).Return(apartments, nil)

	listingCache := mocks.NewMockListingCache(t)
	listingCache.On("Get", mock.Anything).Return(nil, false, nil)
	listingCache.On("Set", mock.Anything, apartments).Return(nil)

	q := NewListApartmentsQuery(apartmentRepo, listingCache)

	output, err := q.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, output.Apartments, 2)
}

func TestListApartmentsQuery_Execute_CacheFailureFallsBackToDB(t *testing.T) {
	apartments := newActiveApartments()

	apartmentRepo := mocks.NewMockApartmentRepository(t)
	apartmentRepo.On("ListActive", mock.Anything).Return(apartments, nil)

	// キャッシュ障害があっても一覧取得は成功する
	listingCache := mocks.NewMockListingCache(t)
	listingCache.On("Get", mock.Anything).Return(nil, false, assert.AnError)
	listingCache.On("Set", mock.Anything, apartments).Return(assert.AnError)

	q := NewListApartmentsQuery(apartmentRepo, listingCache)

	output, err := q.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, output.Apartments, 2)
}
