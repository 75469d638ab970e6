package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

const cacheExpiration = 5 * time.Minute

// CachedSource keeps recent quotes in Redis so page loads that price the
// same ticker repeatedly don't each hit the upstream service.
type CachedSource struct {
	source Source
	rdb    *redis.Client
}

func NewCachedSource(source Source, rdb *redis.Client) *CachedSource {
	return &CachedSource{source: source, rdb: rdb}
}

func (c *CachedSource) Lookup(symbol string) (*Quote, error) {
	ctx := context.Background()
	key := fmt.Sprintf("quote:%s", strings.ToUpper(strings.TrimSpace(symbol)))

	cached, err := c.rdb.Get(ctx, key).Result()
	if err == nil {
		var q Quote
		if err := json.Unmarshal([]byte(cached), &q); err == nil {
			return &q, nil
		}
	}

	q, err := c.source.Lookup(symbol)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(q)
	if err == nil {
		if err := c.rdb.Set(ctx, key, data, cacheExpiration).Err(); err != nil {
			log.Printf("Failed to cache quote for %s: %v", q.Symbol, err)
		}
	}

	return q, nil
}
