package api_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dishcovery/dishcovery/backend/internal/models"
)

func TestListRecipesEmpty(t *testing.T) {
	router, _ := setupServer(t, testConfig(t))

	w := perform(t, router, http.MethodGet, "/api/recipes", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestListRecipes(t *testing.T) {
	router, _ := setupServer(t, testConfig(t))
	createRecipeHTTP(t, router, "Soup")
	createRecipeHTTP(t, router, "Steak")

	w := perform(t, router, http.MethodGet, "/api/recipes", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var recipes []models.Recipe
	decode(t, w, &recipes)
	assert.Len(t, recipes, 2)
}

func TestGetRecipe(t *testing.T) {
	router, _ := setupServer(t, testConfig(t))
	created := createRecipeHTTP(t, router, "Soup")

	w := perform(t, router, http.MethodGet, "/api/recipes/"+created.ID.String(), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var recipe models.Recipe
	decode(t, w, &recipe)
	assert.Equal(t, created.ID, recipe.ID)
	assert.Equal(t, "Soup", recipe.Name)
}

func TestGetRecipeNotFound(t *testing.T) {
	router, _ := setupServer(t, testConfig(t))

	for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
		w := perform(t, router, http.MethodGet, "/api/recipes/"+id, nil, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Recipe not found", message(t, w))
	}
}

func TestCreateRecipeAppliesDefaults(t *testing.T) {
	router, _ := setupServer(t, testConfig(t))
	created := createRecipeHTTP(t, router, "Soup")

	assert.Equal(t, models.DifficultyEasy, created.Difficulty)
	assert.Equal(t, models.SkillBeginner, created.SkillLevel)
	assert.Equal(t, "system", created.CreatedBy)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestCreateRecipeValidation(t *testing.T) {
	router, _ := setupServer(t, testConfig(t))

	missingName := sampleRecipeBody("")
	delete(missingName, "name")
	w := perform(t, router, http.MethodPost, "/api/recipes", missingName, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	emptyIngredients := sampleRecipeBody("Soup")
	emptyIngredients["ingredients"] = []string{}
	w = perform(t, router, http.MethodPost, "/api/recipes", emptyIngredients, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	badDifficulty := sampleRecipeBody("Soup")
	badDifficulty["difficulty"] = "Impossible"
	w = perform(t, router, http.MethodPost, "/api/recipes", badDifficulty, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
