package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ghuser/cardboard/services/catalog/domain/models"
)

const (
	// CatalogCacheTTL bounds staleness of cached query results. The
	// collection only changes on deploy, so a short TTL is purely a
	// memory bound, not a correctness concern.
	CatalogCacheTTL = 5 * time.Minute

	catalogCacheKeyPrefix = "catalog:query"
)

// CatalogCache stores rendered catalog query results keyed by a
// fingerprint of the query parameters. It is a read-through optimization:
// the query pipeline itself stays pure and cache errors always degrade to
// recompute, never to request failure.
type CatalogCache struct {
	client *RedisClient
}

// NewCatalogCache creates a CatalogCache backed by the given RedisClient.
func NewCatalogCache(r *RedisClient) *CatalogCache {
	return &CatalogCache{client: r}
}

// Get retrieves the cached result for the given parameters.
// Returns redis.Nil when the key does not exist or has expired.
func (c *CatalogCache) Get(ctx context.Context, p models.QueryParams) ([]models.Card, error) {
	raw, err := c.client.Client().Get(ctx, key(p)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var cards []models.Card
	if err := json.Unmarshal(raw, &cards); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return cards, nil
}

// Set stores a query result with the standard TTL.
func (c *CatalogCache) Set(ctx context.Context, p models.QueryParams, cards []models.Card) error {
	raw, err := json.Marshal(cards)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Client().Set(ctx, key(p), raw, CatalogCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// key fingerprints the query parameters. Fields are joined with a
// separator that cannot appear in URL query values, then hashed to keep
// Redis keys short and free of user input.
func key(p models.QueryParams) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s\x00%s\x00%s\x00%s\x00%s",
		p.Search, p.Year, p.Brand, p.Condition, p.Sort)))
	return catalogCacheKeyPrefix + ":" + hex.EncodeToString(sum[:16])
}
