package query

import (
	"context"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
	"github.com/Hiro-mackay/gc-rental/internal/domain/repository"
	"github.com/Hiro-mackay/gc-rental/pkg/apperror"
)

// ListAllApartmentsOutput は全物件一覧の出力を定義します
type ListAllApartmentsOutput struct {
	Apartments []*entity.Apartment
}

// ListAllApartmentsQuery は全物件一覧クエリです（管理画面用、非公開含む）
type ListAllApartmentsQuery struct {
	apartmentRepo repository.ApartmentRepository
}

// NewListAllApartmentsQuery は新しいListAllApartmentsQueryを作成します
func NewListAllApartmentsQuery(apartmentRepo repository.ApartmentRepository) *ListAllApartmentsQuery {
	return &ListAllApartmentsQuery{apartmentRepo: apartmentRepo}
}

// Execute は全物件一覧を取得します
func (q *ListAllApartmentsQuery) Execute(ctx context.Context) (*ListAllApartmentsOutput, error) {
	apartments, err := q.apartmentRepo.ListAll(ctx)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}

	return &ListAllApartmentsOutput{Apartments: apartments}, nil
}
