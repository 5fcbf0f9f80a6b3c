package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dishcovery/dishcovery/backend/internal/cache"
	"github.com/dishcovery/dishcovery/backend/internal/errs"
	"github.com/dishcovery/dishcovery/backend/internal/models"
)

// RecipeService handles recipe reads and creation. The cache is optional;
// a nil cache disables the read-through path with no behavior change.
type RecipeService struct {
	db    *gorm.DB
	cache cache.RecipeCache
}

func NewRecipeService(db *gorm.DB, recipeCache cache.RecipeCache) *RecipeService {
	return &RecipeService{
		db:    db,
		cache: recipeCache,
	}
}

// List returns every recipe. No pagination in this version.
func (s *RecipeService) List(ctx context.Context) ([]models.Recipe, error) {
	recipes := make([]models.Recipe, 0)
	if err := s.db.WithContext(ctx).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Get returns a recipe by id, consulting the cache before the store.
// A cache hit does not refresh the TTL.
func (s *RecipeService) Get(ctx context.Context, id string) (*models.Recipe, error) {
	recipeID, err := uuid.Parse(id)
	if err != nil {
		// A malformed id cannot match any record.
		return nil, errs.ErrNotFound
	}

	if s.cache != nil {
		if recipe, ok := s.cache.GetRecipe(ctx, recipeID.String()); ok {
			return recipe, nil
		}
	}

	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetRecipe(ctx, &recipe)
	}
	return &recipe, nil
}

// Create persists a new recipe and invalidates the coarse list cache key.
// The per-id cache namespace is left alone.
func (s *RecipeService) Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.InvalidateList(ctx)
	}
	return recipe, nil
}
