package cache

import (
	"context"
	"strings"
	"testing"

	"github.com/cornexhq/cornex-connect/internal/repository"
	"github.com/stretchr/testify/assert"
)

func TestBuildRecommendationKey_SharesInvalidationPrefix(t *testing.T) {
	filters := []repository.InventoryFilter{
		{},
		{Warehouse: "east"},
		{Category: "packaging"},
		{Warehouse: "east", Category: "packaging"},
	}

	// every key must fall under the prefix InvalidateAll scans, or seeding
	// would leave stale entries behind
	for _, filter := range filters {
		key := buildRecommendationKey(filter)
		assert.True(t, strings.HasPrefix(key, recommendationKeyPrefix+":"), key)
	}
}

func TestRecommendationFilterHash(t *testing.T) {
	assert.Equal(t, "all", recommendationFilterHash(repository.InventoryFilter{}))

	a := recommendationFilterHash(repository.InventoryFilter{Warehouse: "East"})
	b := recommendationFilterHash(repository.InventoryFilter{Warehouse: " east "})
	assert.Equal(t, a, b, "hash must normalize case and whitespace")

	c := recommendationFilterHash(repository.InventoryFilter{Warehouse: "west"})
	assert.NotEqual(t, a, c)
}

func TestNoopCache_InvalidateAll(t *testing.T) {
	cache := NewNoopRecommendationCache()

	assert.NoError(t, cache.InvalidateAll(context.Background()))
}
