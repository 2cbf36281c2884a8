package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cornexhq/cornex-connect/internal/config"
	"github.com/cornexhq/cornex-connect/internal/domain"
	"github.com/cornexhq/cornex-connect/internal/repository"
	"github.com/redis/go-redis/v9"
)

const (
	recommendationKeyPrefix = "inventory:recommendations"
	recommendationScanBatch = 100
)

// RecommendationResult is the cached view the recommendations endpoint
// serves: the ranked list plus its aggregate. Cached briefly; never a
// durable store for computed recommendations.
type RecommendationResult struct {
	Recommendations []domain.Recommendation      `json:"recommendations"`
	Summary         domain.RecommendationSummary `json:"summary"`
}

type RecommendationCache interface {
	Get(ctx context.Context, filter repository.InventoryFilter) (*RecommendationResult, bool, error)
	Set(ctx context.Context, filter repository.InventoryFilter, result *RecommendationResult) error
	InvalidateAll(ctx context.Context) error
}

type redisRecommendationCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopRecommendationCache struct{}

func NewRecommendationCache(cfg config.CacheConfig) (RecommendationCache, error) {
	if !cfg.Enabled {
		return &noopRecommendationCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisRecommendationCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func NewNoopRecommendationCache() RecommendationCache {
	return &noopRecommendationCache{}
}

func (c *redisRecommendationCache) Get(ctx context.Context, filter repository.InventoryFilter) (*RecommendationResult, bool, error) {
	key := buildRecommendationKey(filter)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var result RecommendationResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, false, fmt.Errorf("decode recommendation cache: %w", err)
	}

	return &result, true, nil
}

func (c *redisRecommendationCache) Set(ctx context.Context, filter repository.InventoryFilter, result *RecommendationResult) error {
	key := buildRecommendationKey(filter)
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode recommendation cache: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisRecommendationCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, recommendationKeyPrefix, recommendationScanBatch)
}

func (n *noopRecommendationCache) Get(ctx context.Context, filter repository.InventoryFilter) (*RecommendationResult, bool, error) {
	return nil, false, nil
}

func (n *noopRecommendationCache) Set(ctx context.Context, filter repository.InventoryFilter, result *RecommendationResult) error {
	return nil
}

func (n *noopRecommendationCache) InvalidateAll(ctx context.Context) error {
	return nil
}

func buildRecommendationKey(filter repository.InventoryFilter) string {
	return fmt.Sprintf("%s:%s", recommendationKeyPrefix, recommendationFilterHash(filter))
}

func recommendationFilterHash(filter repository.InventoryFilter) string {
	parts := []string{}

	if filter.Warehouse != "" {
		parts = append(parts, "warehouse="+strings.ToLower(strings.TrimSpace(filter.Warehouse)))
	}
	if filter.Category != "" {
		parts = append(parts, "category="+strings.ToLower(strings.TrimSpace(filter.Category)))
	}

	if len(parts) == 0 {
		return "all"
	}

	sum := sha1.Sum([]byte(strings.Join(parts, "&")))

	return hex.EncodeToString(sum[:])
}
