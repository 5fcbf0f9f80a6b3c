// Package cache provides the best-effort read-through cache for single
// recipe lookups. A cache outage never fails a request; callers fall
// through to the store.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/dishcovery/dishcovery/backend/internal/models"
)

const (
	recipeKeyPrefix = "recipe_"
	listKey         = "all_recipes"
	recipeTTL       = time.Hour
)

// RecipeCache is the cache surface the recipe service depends on.
// Implementations must be safe for concurrent use.
type RecipeCache interface {
	// GetRecipe returns the cached recipe and true on a hit.
	GetRecipe(ctx context.Context, id string) (*models.Recipe, bool)
	// SetRecipe stores the recipe with a fixed expiry.
	SetRecipe(ctx context.Context, recipe *models.Recipe)
	// InvalidateList drops the coarse list key. The per-id namespace is
	// untouched; the two are independent.
	InvalidateList(ctx context.Context)
}

// RedisCache backs RecipeCache with a shared Redis client.
type RedisCache struct {
	client *redis.Client
	log    *zap.Logger
}

func NewRedisCache(client *redis.Client, log *zap.Logger) *RedisCache {
	return &RedisCache{client: client, log: log}
}

func (c *RedisCache) GetRecipe(ctx context.Context, id string) (*models.Recipe, bool) {
	data, err := c.client.Get(ctx, recipeKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Warn("recipe cache read failed", zap.String("id", id), zap.Error(err))
		return nil, false
	}

	var recipe models.Recipe
	if err := json.Unmarshal(data, &recipe); err != nil {
		c.log.Warn("recipe cache entry corrupt", zap.String("id", id), zap.Error(err))
		return nil, false
	}
	return &recipe, true
}

func (c *RedisCache) SetRecipe(ctx context.Context, recipe *models.Recipe) {
	data, err := json.Marshal(recipe)
	if err != nil {
		c.log.Warn("recipe cache encode failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, recipeKeyPrefix+recipe.ID.String(), data, recipeTTL).Err(); err != nil {
		c.log.Warn("recipe cache write failed", zap.String("id", recipe.ID.String()), zap.Error(err))
	}
}

func (c *RedisCache) InvalidateList(ctx context.Context) {
	if err := c.client.Del(ctx, listKey).Err(); err != nil {
		c.log.Warn("recipe list cache invalidation failed", zap.Error(err))
	}
}
