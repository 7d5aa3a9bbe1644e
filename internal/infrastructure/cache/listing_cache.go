package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
)

// 公開中物件一覧キャッシュのTTL
const listingCacheTTL = 5 * time.Minute

// ListingCache は公開中物件一覧のRedisキャッシュです
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListingCache は新しいListingCacheを作成します
func NewListingCache(client *redis.Client) *ListingCache {
	return &ListingCache{
		client: client,
		ttl:    listingCacheTTL,
	}
}

// Get はキャッシュされた一覧を返します（ミス時は ok == false）
func (c *ListingCache) Get(ctx context.Context) ([]*entity.Apartment, bool, error) {
	data, err := c.client.Get(ctx, CacheKey(NamespaceActiveListings)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get listing cache: %w", err)
	}

	var apartments []*entity.Apartment
	if err := json.Unmarshal(data, &apartments); err != nil {
		// 壊れたキャッシュはミス扱いにして破棄する
		_ = c.client.Del(ctx, CacheKey(NamespaceActiveListings)).Err()
		return nil, false, nil
	}

	return apartments, true, nil
}

// Set は一覧をキャッシュします
func (c *ListingCache) Set(ctx context.Context, apartments []*entity.Apartment) error {
	data, err := json.Marshal(apartments)
	if err != nil {
		return fmt.Errorf("failed to marshal listings: %w", err)
	}

	if err := c.client.Set(ctx, CacheKey(NamespaceActiveListings), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set listing cache: %w", err)
	}

	return nil
}

// Invalidate はキャッシュを破棄します（物件の作成・更新・削除時）
func (c *ListingCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, CacheKey(NamespaceActiveListings)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate listing cache: %w", err)
	}
	return nil
}
