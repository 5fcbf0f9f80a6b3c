package api_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dishcovery/dishcovery/backend/internal/models"
	"github.com/dishcovery/dishcovery/backend/internal/service"
)

func TestWishlistLifecycle(t *testing.T) {
	router, _ := setupServer(t, testConfig(t))
	user := signUpHTTP(t, router, "cook@example.com")
	recipe := createRecipeHTTP(t, router, "Soup")

	base := "/api/wishlist/" + user.ID.String()

	// Add puts the recipe on the list.
	w := perform(t, router, http.MethodPost, base+"/add/"+recipe.ID.String(), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var addBody struct {
		Message  string   `json:"message"`
		Wishlist []string `json:"wishlist"`
	}
	decode(t, w, &addBody)
	assert.Equal(t, "Recipe added to wishlist", addBody.Message)
	assert.Equal(t, []string{recipe.ID.String()}, addBody.Wishlist)

	// A second add of the same recipe is a conflict.
	w = perform(t, router, http.MethodPost, base+"/add/"+recipe.ID.String(), nil, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Recipe already in wishlist", message(t, w))

	// The wishlist resolves to full recipe records.
	w = perform(t, router, http.MethodGet, base, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var recipes []models.Recipe
	decode(t, w, &recipes)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Soup", recipes[0].Name)

	w = perform(t, router, http.MethodGet, base+"/check/"+recipe.ID.String(), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var checkBody struct {
		IsInWishlist bool `json:"isInWishlist"`
	}
	decode(t, w, &checkBody)
	assert.True(t, checkBody.IsInWishlist)

	// Remove empties the list.
	w = perform(t, router, http.MethodDelete, base+"/remove/"+recipe.ID.String(), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var removeBody struct {
		Message  string   `json:"message"`
		Wishlist []string `json:"wishlist"`
	}
	decode(t, w, &removeBody)
	assert.Equal(t, "Recipe removed from wishlist", removeBody.Message)
	assert.Empty(t, removeBody.Wishlist)

	// Removing again still succeeds.
	w = perform(t, router, http.MethodDelete, base+"/remove/"+recipe.ID.String(), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = perform(t, router, http.MethodGet, base+"/check/"+recipe.ID.String(), nil, nil)
	decode(t, w, &checkBody)
	assert.False(t, checkBody.IsInWishlist)
}

func TestWishlistUnknownUser(t *testing.T) {
	router, _ := setupServer(t, testConfig(t))

	w := perform(t, router, http.MethodGet, "/api/wishlist/"+uuid.NewString(), nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", message(t, w))
}

func TestWishlistAddMalformedRecipeID(t *testing.T) {
	router, _ := setupServer(t, testConfig(t))
	user := signUpHTTP(t, router, "cook@example.com")

	w := perform(t, router, http.MethodPost, "/api/wishlist/"+user.ID.String()+"/add/not-a-uuid", nil, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid recipe id", message(t, w))
}

func TestWishlistAuthEnforcement(t *testing.T) {
	cfg := testConfig(t)
	cfg.RequireAuth = true
	router, db := setupServer(t, cfg)

	owner := signUpHTTP(t, router, "owner@example.com")
	other := signUpHTTP(t, router, "other@example.com")

	authService := service.NewAuthService(db, cfg.JWTSecret)
	ownerToken, err := authService.GenerateToken(owner.ID)
	require.NoError(t, err)
	otherToken, err := authService.GenerateToken(other.ID)
	require.NoError(t, err)

	path := "/api/wishlist/" + owner.ID.String()

	// No token.
	w := perform(t, router, http.MethodGet, path, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token.
	w = perform(t, router, http.MethodGet, path, nil, map[string]string{
		"Authorization": "Bearer not-a-token",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid token for a different user.
	w = perform(t, router, http.MethodGet, path, nil, map[string]string{
		"Authorization": "Bearer " + otherToken,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Valid token for the path user.
	w = perform(t, router, http.MethodGet, path, nil, map[string]string{
		"Authorization": "Bearer " + ownerToken,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Auth enforcement covers only wishlist routes.
	w = perform(t, router, http.MethodGet, "/api/recipes", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
