package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dishcovery/dishcovery/backend/config"
	"github.com/dishcovery/dishcovery/backend/internal/cache"
	"github.com/dishcovery/dishcovery/backend/internal/middleware"
	"github.com/dishcovery/dishcovery/backend/internal/service"
)

// SetupAPI wires services and handlers onto the router. The cache may be
// nil; single-recipe lookups then always hit the store.
func SetupAPI(router *gin.Engine, db *gorm.DB, recipeCache cache.RecipeCache, cfg *config.Config) {
	authService := service.NewAuthService(db, cfg.JWTSecret)
	recipeService := service.NewRecipeService(db, recipeCache)
	wishlistService := service.NewWishlistService(db)

	authHandler := NewAuthHandler(authService)
	recipeHandler := NewRecipeHandler(recipeService)
	wishlistHandler := NewWishlistHandler(wishlistService)

	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/metrics", gin.WrapH(middleware.MetricsHandler()))
	router.Static("/uploads", cfg.UploadDir)

	apiGroup := router.Group("/api")
	{
		authHandler.RegisterRoutes(apiGroup)
		recipeHandler.RegisterRoutes(apiGroup)

		// Wishlist routes trust the path-supplied userId unless
		// REQUIRE_AUTH turns on token enforcement.
		wishlistGroup := apiGroup.Group("")
		if cfg.RequireAuth {
			wishlistGroup.Use(middleware.RequireSelf(authService))
		}
		wishlistHandler.RegisterRoutes(wishlistGroup)
	}
}
