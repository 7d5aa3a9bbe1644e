package service

import (
	"context"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
)

// ListingCache は公開中物件一覧のキャッシュを提供します
// キャッシュミスやキャッシュ障害は呼び出し側でDBフォールバックされます
type ListingCache interface {
	// Get はキャッシュされた一覧を返します（ミス時は ok == false）
	Get(ctx context.Context) ([]*entity.Apartment, bool, error)

	// Set は一覧をキャッシュします
	Set(ctx context.Context, apartments []*entity.Apartment) error

	// Invalidate はキャッシュを破棄します（物件の作成・更新・削除時）
	Invalidate(ctx context.Context) error
}
