package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// Cache stores string values under string keys with an expiry.
//
// Implementations:
//   - RedisCache: shared cache backed by Redis (REDIS_ADDR set).
//   - MemoryCache: process-local fallback used when Redis is not configured.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Ping(ctx context.Context) error
}

// QuoteKey builds the cache key for a single quote. Inputs are encoded
// exactly; only identical inputs share an entry.
func QuoteKey(principal, annualRatePercent float64, termMonths int32) string {
	return fmt.Sprintf("loanquote:quote:%s:%s:%d", exact(principal), exact(annualRatePercent), termMonths)
}

// CompareKey builds the cache key for a term comparison table.
func CompareKey(principal, annualRatePercent float64) string {
	return fmt.Sprintf("loanquote:compare:%s:%s", exact(principal), exact(annualRatePercent))
}

// exact is the shortest representation that parses back to v.
func exact(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
