package query

import (
	"context"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
	"github.com/Hiro-mackay/gc-rental/internal/domain/repository"
	"github.com/Hiro-mackay/gc-rental/internal/domain/service"
	"github.com/Hiro-mackay/gc-rental/pkg/apperror"
	"github.com/Hiro-mackay/gc-rental/pkg/logger"
)

// ListApartmentsOutput は公開中物件一覧の出力を定義します
type ListApartmentsOutput struct {
	Apartments []*entity.Apartment
}

// ListApartmentsQuery は公開中物件一覧クエリです
// キャッシュヒット時はDBを参照しません
type ListApartmentsQuery struct {
	apartmentRepo repository.ApartmentRepository
	listingCache  service.ListingCache
}

// NewListApartmentsQuery は新しいListApartmentsQueryを作成します
func NewListApartmentsQuery(
	apartmentRepo repository.ApartmentRepository,
	listingCache service.ListingCache,
) *ListApartmentsQuery {
	return &ListApartmentsQuery{
		apartmentRepo: apartmentRepo,
		listingCache:  listingCache,
	}
}

// Execute は公開中物件一覧を取得します
func (q *ListApartmentsQuery) Execute(ctx context.Context) (*ListApartmentsOutput, error) {
	// キャッシュ障害はDBフォールバックする
	apartments, ok, err := q.listingCache.Get(ctx)
	if err != nil {
		logger.Warn(ctx, "failed to read listing cache", "error", err)
	}
	if ok {
		return &ListApartmentsOutput{Apartments: apartments}, nil
	}

	apartments, err = q.apartmentRepo.ListActive(ctx)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}

	if err := q.listingCache.Set(ctx, apartments); err != nil {
		logger.Warn(ctx, "failed to write listing cache", "error", err)
	}

	return &ListApartmentsOutput{Apartments: apartments}, nil
}
