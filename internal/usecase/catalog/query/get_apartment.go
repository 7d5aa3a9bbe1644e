package query

import (
	"context"

	"github.com/google/uuid"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
	"github.com/Hiro-mackay/gc-rental/internal/domain/repository"
	"github.com/Hiro-mackay/gc-rental/internal/infrastructure/database"
	"github.com/Hiro-mackay/gc-rental/pkg/apperror"
)

// GetApartmentInput は物件取得の入力を定義します
type GetApartmentInput struct {
	ID uuid.UUID
}

// GetApartmentOutput は物件取得の出力を定義します
type GetApartmentOutput struct {
	Apartment *entity.Apartment
}

// GetApartmentQuery は公開中物件の取得クエリです
// 非公開物件はNotFoundとして扱います
type GetApartmentQuery struct {
	apartmentRepo repository.ApartmentRepository
}

// NewGetApartmentQuery は新しいGetApartmentQueryを作成します
func NewGetApartmentQuery(apartmentRepo repository.ApartmentRepository) *GetApartmentQuery {
	return &GetApartmentQuery{apartmentRepo: apartmentRepo}
}

// Execute は公開中物件を取得します
func (q *GetApartmentQuery) Execute(ctx context.Context, input GetApartmentInput) (*GetApartmentOutput, error) {
	apartment, err := q.apartmentRepo.FindActiveByID(ctx, input.ID)
	if err != nil {
		if database.IsNotFoundError(err) {
			return nil, apperror.NewNotFoundError("apartment")
		}
		return nil, apperror.NewInternalError(err)
	}

	return &GetApartmentOutput{Apartment: apartment}, nil
}
