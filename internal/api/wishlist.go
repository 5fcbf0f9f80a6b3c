package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dishcovery/dishcovery/backend/internal/errs"
	"github.com/dishcovery/dishcovery/backend/internal/service"
)

type WishlistHandler struct {
	wishlistService *service.WishlistService
}

func NewWishlistHandler(wishlistService *service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

func (h *WishlistHandler) RegisterRoutes(router *gin.RouterGroup) {
	wishlist := router.Group("/wishlist")
	{
		wishlist.GET("/:userId", h.GetWishlist)
		wishlist.POST("/:userId/add/:recipeId", h.AddToWishlist)
		wishlist.DELETE("/:userId/remove/:recipeId", h.RemoveFromWishlist)
		wishlist.GET("/:userId/check/:recipeId", h.CheckWishlist)
	}
}

// GetWishlist resolves the user's wishlist into full recipe records.
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	recipes, err := h.wishlistService.Get(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipes)
}

// AddToWishlist appends a recipe id. A duplicate add is a conflict.
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	wishlist, err := h.wishlistService.Add(c.Request.Context(), c.Param("userId"), c.Param("recipeId"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Recipe added to wishlist",
		"wishlist": wishlist,
	})
}

// RemoveFromWishlist drops a recipe id. Removing a non-member still
// succeeds.
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	wishlist, err := h.wishlistService.Remove(c.Request.Context(), c.Param("userId"), c.Param("recipeId"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Recipe removed from wishlist",
		"wishlist": wishlist,
	})
}

func (h *WishlistHandler) CheckWishlist(c *gin.Context) {
	isInWishlist, err := h.wishlistService.Check(c.Request.Context(), c.Param("userId"), c.Param("recipeId"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"isInWishlist": isInWishlist})
}

func (h *WishlistHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	case errors.Is(err, errs.ErrAlreadyInWishlist):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Recipe already in wishlist"})
	case errors.Is(err, errs.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid recipe id"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}
