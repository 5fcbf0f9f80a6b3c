package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dishcovery/dishcovery/backend/internal/errs"
	"github.com/dishcovery/dishcovery/backend/internal/models"
	"github.com/dishcovery/dishcovery/backend/internal/service"
)

func TestCreateAppliesDefaults(t *testing.T) {
	db := setupDB(t)
	svc := service.NewRecipeService(db, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRecipe("Tomato Soup"))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, models.DifficultyEasy, created.Difficulty)
	assert.Equal(t, models.SkillBeginner, created.SkillLevel)
	assert.Equal(t, "system", created.CreatedBy)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestGetRoundTrip(t *testing.T) {
	db := setupDB(t)
	svc := service.NewRecipeService(db, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRecipe("Tomato Soup"))
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Tomato Soup", got.Name)
	assert.Equal(t, models.StringArray{"ingredient1", "ingredient2"}, got.Ingredients)
}

func TestGetNotFound(t *testing.T) {
	db := setupDB(t)
	svc := service.NewRecipeService(db, nil)

	_, err := svc.Get(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestGetMalformedID(t *testing.T) {
	db := setupDB(t)
	svc := service.NewRecipeService(db, nil)

	_, err := svc.Get(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestList(t *testing.T) {
	db := setupDB(t)
	svc := service.NewRecipeService(db, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, validRecipe("Soup"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, validRecipe("Steak"))
	require.NoError(t, err)

	recipes, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, recipes, 2)
}

func TestGetPopulatesCacheOnMiss(t *testing.T) {
	db := setupDB(t)
	fc := newFakeCache()
	svc := service.NewRecipeService(db, fc)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRecipe("Tomato Soup"))
	require.NoError(t, err)

	_, err = svc.Get(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, fc.gets)
	assert.Equal(t, 1, fc.sets)

	// Second read is served from the cache without another store write.
	got, err := svc.Get(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, 2, fc.gets)
	assert.Equal(t, 1, fc.sets)
}

func TestCreateInvalidatesListCache(t *testing.T) {
	db := setupDB(t)
	fc := newFakeCache()
	svc := service.NewRecipeService(db, fc)

	_, err := svc.Create(context.Background(), validRecipe("Tomato Soup"))
	require.NoError(t, err)
	assert.Equal(t, 1, fc.invalidates)
}

func TestGetSurvivesCacheOutage(t *testing.T) {
	db := setupDB(t)
	fc := newFakeCache()
	fc.failing = true
	svc := service.NewRecipeService(db, fc)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRecipe("Tomato Soup"))
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}
