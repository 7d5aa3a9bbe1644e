package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Hiro-mackay/gc-rental/pkg/apperror"
	"github.com/Hiro-mackay/gc-rental/tests/testutil/mocks"
)

func TestCreateApartmentCommand_Execute_Success(t *testing.T) {
	apartmentRepo := mocks.NewMockApartmentRepository(t)
	apartmentRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Apartment")).Return(nil)

	listingCache := mocks.NewMockListingCache(t)
	listingCache.On("Invalidate", mock.Anything).Return(nil)

	cmd := NewCreateApartmentCommand(apartmentRepo, listingCache)

	output, err := cmd.Execute(context.Background(), CreateApartmentInput{
		Title:       "Shibuya Flat",
		City:        "Tokyo",
		Address:     "1-2-3 Shibuya",
		PricePerDay: 10000,
		Bedrooms:    2,
		IsActive:    true,
	})

	require.NoError(t, err)
	assert.Equal(t, "Shibuya Flat", output.Apartment.Title)
	assert.True(t, output.Apartment.IsActive)
	// Photos未指定でも空スライスで初期化される
	assert.NotNil(t, output.Apartment.Photos)
}

func TestCreateApartmentCommand_Execute_InvalidPrice(t *testing.T) {
	apartmentRepo := mocks.NewMockApartmentRepository(t)
	listingCache := mocks.NewMockListingCache(t)

	cmd := NewCreateApartmentCommand(apartmentRepo, listingCache)

	_, err := cmd.Execute(context.Background(), CreateApartmentInput{
		Title:       "Free Flat",
		City:        "Tokyo",
		Address:     "1-2-3 Shibuya",
		PricePerDay: 0,
	})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeInvalidRequest, appErr.Code)
	apartmentRepo.AssertNotCalled(t, "Create")
}

func TestCreateApartmentCommand_Execute_CacheInvalidationFailureIsIgnored(t *testing.T) {
	apartmentRepo := mocks.NewMockApartmentRepository(t)
	apartmentRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Apartment")).Return(nil)

	// キャッシュ破棄に失敗しても作成は成功扱いになる
	listingCache := mocks.NewMockListingCache(t)
	listingCache.On("Invalidate", mock.Anything).Return(assert.AnError)

	cmd := NewCreateApartmentCommand(apartmentRepo, listingCache)

	output, err := cmd.Execute(context.Background(), CreateApartmentInput{
		Title:       "Shibuya Flat",
		City:        "Tokyo",
		Address:     "1-2-3 Shibuya",
		PricePerDay: 10000,
	})

	require.NoError(t, err)
	assert.NotNil(t, output.Apartment)
}
