package command

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
	"github.com/Hiro-mackay/gc-rental/internal/domain/repository"
	"github.com/Hiro-mackay/gc-rental/internal/domain/service"
	"github.com/Hiro-mackay/gc-rental/internal/infrastructure/database"
	"github.com/Hiro-mackay/gc-rental/pkg/apperror"
	"github.com/Hiro-mackay/gc-rental/pkg/logger"
)

// UpdateApartmentInput は物件更新の入力を定義します
// nilのフィールドは更新されません
type UpdateApartmentInput struct {
	ID          uuid.UUID
	Title       *string
	City        *string
	Address     *string
	PricePerDay *int
	Bedrooms    *int
	Description *string
	Photos      []string
	IsActive    *bool
}

// UpdateApartmentOutput は物件更新の出力を定義します
type UpdateApartmentOutput struct {
	Apartment *entity.Apartment
}

// UpdateApartmentCommand は物件更新コマンドです
type UpdateApartmentCommand struct {
	apartmentRepo repository.ApartmentRepository
	listingCache  service.ListingCache
}

// NewUpdateApartmentCommand は新しいUpdateApartmentCommandを作成します
func NewUpdateApartmentCommand(
	apartmentRepo repository.ApartmentRepository,
	listingCache service.ListingCache,
) *UpdateApartmentCommand {
	return &UpdateApartmentCommand{
		apartmentRepo: apartmentRepo,
		listingCache:  listingCache,
	}
}

// Execute は物件更新を実行します
func (c *UpdateApartmentCommand) Execute(ctx context.Context, input UpdateApartmentInput) (*UpdateApartmentOutput, error) {
	apartment, err := c.apartmentRepo.FindByID(ctx, input.ID)
	if err != nil {
		if database.IsNotFoundError(err) {
			return nil, apperror.NewNotFoundError("apartment")
		}
		return nil, apperror.NewInternalError(err)
	}

	if input.Title != nil {
		apartment.Title = *input.Title
	}
	if input.City != nil {
		apartment.City = *input.City
	}
	if input.Address != nil {
		apartment.Address = *input.Address
	}
	if input.PricePerDay != nil {
		if *input.PricePerDay <= 0 {
			return nil, apperror.NewInvalidRequestError("price per day must be positive")
		}
		apartment.PricePerDay = *input.PricePerDay
	}
	if input.Bedrooms != nil {
		if *input.Bedrooms < 0 {
			return nil, apperror.NewInvalidRequestError("bedrooms must not be negative")
		}
		apartment.Bedrooms = *input.Bedrooms
	}
	if input.Description != nil {
		apartment.Description = *input.Description
	}
	if input.Photos != nil {
		apartment.Photos = input.Photos
	}
	if input.IsActive != nil {
		apartment.IsActive = *input.IsActive
	}
	apartment.UpdatedAt = time.Now()

	if err := c.apartmentRepo.Update(ctx, apartment); err != nil {
		if database.IsNotFoundError(err) {
			return nil, apperror.NewNotFoundError("apartment")
		}
		return nil, apperror.NewInternalError(err)
	}

	if err := c.listingCache.Invalidate(ctx); err != nil {
		logger.Warn(ctx, "failed to invalidate listing cache", "error", err)
	}

	return &UpdateApartmentOutput{Apartment: apartment}, nil
}
