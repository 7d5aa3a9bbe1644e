package cache

import "fmt"

// KeyPrefix はRedisキーのプレフィックスを定義します
type KeyPrefix string

const (
	// レート制限
	PrefixRateLimit KeyPrefix = "ratelimit" // ratelimit:{type}:{identifier}

	// キャッシュ
	PrefixCache KeyPrefix = "cache" // cache:{namespace}
)

// キャッシュ名前空間
const (
	NamespaceActiveListings = "listings:active"
)

// RateLimitKey はレート制限キーを生成します
func RateLimitKey(limitType, identifier string) string {
	return fmt.Sprintf("%s:%s:%s", PrefixRateLimit, limitType, identifier)
}

// CacheKey は汎用キャッシュキーを生成します
func CacheKey(namespace string) string {
	return fmt.Sprintf("%s:%s", PrefixCache, namespace)
}
