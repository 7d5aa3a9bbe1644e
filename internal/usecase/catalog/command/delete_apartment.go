package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/Hiro-mackay/gc-rental/internal/domain/repository"
	"github.com/Hiro-mackay/gc-rental/internal/domain/service"
	"github.com/Hiro-mackay/gc-rental/internal/infrastructure/database"
	"github.com/Hiro-mackay/gc-rental/pkg/apperror"
	"github.com/Hiro-mackay/gc-rental/pkg/logger"
)

// DeleteApartmentInput は物件削除の入力を定義します
type DeleteApartmentInput struct {
	ID uuid.UUID
}

// DeleteApartmentCommand は物件削除コマンドです
type DeleteApartmentCommand struct {
	apartmentRepo repository.ApartmentRepository
	listingCache  service.ListingCache
}

// NewDeleteApartmentCommand は新しいDeleteApartmentCommandを作成します
func NewDeleteApartmentCommand(
	apartmentRepo repository.ApartmentRepository,
	listingCache service.ListingCache,
) *DeleteApartmentCommand {
	return &DeleteApartmentCommand{
		apartmentRepo: apartmentRepo,
		listingCache:  listingCache,
	}
}

// Execute は物件削除を実行します
func (c *DeleteApartmentCommand) Execute(ctx context.Context, input DeleteApartmentInput) error {
	if err := c.apartmentRepo.Delete(ctx, input.ID); err != nil {
		if database.IsNotFoundError(err) {
			return apperror.NewNotFoundError("apartment")
		}
		return apperror.NewInternalError(err)
	}

	if err := c.listingCache.Invalidate(ctx); err != nil {
		logger.Warn(ctx, "failed to invalidate listing cache", "error", err)
	}

	return nil
}
