package command

import (
	"context"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
	"github.com/Hiro-mackay/gc-rental/internal/domain/repository"
	"github.com/Hiro-mackay/gc-rental/internal/domain/service"
	"github.com/Hiro-mackay/gc-rental/pkg/apperror"
	"github.com/Hiro-mackay/gc-rental/pkg/logger"
)

// CreateApartmentInput は物件作成の入力を定義します
type CreateApartmentInput struct {
	Title       string
	City        string
	Address     string
	PricePerDay int
	Bedrooms    int
	Description string
	Photos      []string
	IsActive    bool
}

// CreateApartmentOutput は物件作成の出力を定義します
type CreateApartmentOutput struct {
	Apartment *entity.Apartment
}

// CreateApartmentCommand は物件作成コマンドです
type CreateApartmentCommand struct {
	apartmentRepo repository.ApartmentRepository
	listingCache  service.ListingCache
}

// NewCreateApartmentCommand は新しいCreateApartmentCommandを作成します
func NewCreateApartmentCommand(
	apartmentRepo repository.ApartmentRepository,
	listingCache service.ListingCache,
) *CreateApartmentCommand {
	return &CreateApartmentCommand{
		apartmentRepo: apartmentRepo,
		listingCache:  listingCache,
	}
}

// Execute は物件作成を実行します
func (c *CreateApartmentCommand) Execute(ctx context.Context, input CreateApartmentInput) (*CreateApartmentOutput, error) {
	if input.PricePerDay <= 0 {
		return nil, apperror.NewInvalidRequestError("price per day must be positive")
	}
	if input.Bedrooms < 0 {
		return nil, apperror.NewInvalidRequestError("bedrooms must not be negative")
	}

	apartment := entity.NewApartment(
		input.Title,
		input.City,
		input.Address,
		input.PricePerDay,
		input.Bedrooms,
		input.Description,
		input.Photos,
		input.IsActive,
	)

	if err := c.apartmentRepo.Create(ctx, apartment); err != nil {
		return nil, apperror.NewInternalError(err)
	}

	// キャッシュ破棄の失敗は作成の成功に影響させない
	if err := c.listingCache.Invalidate(ctx); err != nil {
		logger.Warn(ctx, "failed to invalidate listing cache", "error", err)
	}

	return &CreateApartmentOutput{Apartment: apartment}, nil
}
