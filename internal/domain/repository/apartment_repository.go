package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
)

// ApartmentRepository は物件リポジトリインターフェースを定義します
type ApartmentRepository interface {
	// Create は物件を作成します
	Create(ctx context.Context, apartment *entity.Apartment) error

	// Update は物件を更新します
	Update(ctx context.Context, apartment *entity.Apartment) error

	// Delete は物件を削除します
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID はIDで物件を検索します（非公開含む）
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Apartment, error)

	// FindActiveByID はIDで公開中の物件を検索します
	FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Apartment, error)

	// ListActive は公開中の物件を更新日時の降順で返します
	ListActive(ctx context.Context) ([]*entity.Apartment, error)

	// ListAll は全物件を更新日時の降順で返します（管理画面用）
	ListAll(ctx context.Context) ([]*entity.Apartment, error)
}
