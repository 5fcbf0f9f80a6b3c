package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dishcovery/dishcovery/backend/internal/errs"
	"github.com/dishcovery/dishcovery/backend/internal/models"
)

// WishlistService mutates the wishlist array on the user record. Add and
// Remove read-modify-write the whole record; concurrent calls for the same
// user race with last-write-wins, which is accepted for this version.
type WishlistService struct {
	db *gorm.DB
}

func NewWishlistService(db *gorm.DB) *WishlistService {
	return &WishlistService{db: db}
}

func (s *WishlistService) user(ctx context.Context, userID string) (*models.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, errs.ErrUserNotFound
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Get resolves the user's wishlist ids into full recipes, preserving the
// order entries were added.
func (s *WishlistService) Get(ctx context.Context, userID string) ([]models.Recipe, error) {
	user, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(user.Wishlist) == 0 {
		return []models.Recipe{}, nil
	}

	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Where("id IN ?", []string(user.Wishlist)).Find(&recipes).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]models.Recipe, len(recipes))
	for _, r := range recipes {
		byID[r.ID.String()] = r
	}

	ordered := make([]models.Recipe, 0, len(user.Wishlist))
	for _, id := range user.Wishlist {
		if r, ok := byID[id]; ok {
			ordered = append(ordered, r)
		}
	}
	return ordered, nil
}

// Add appends a recipe id. Adding an id already present is a conflict, not
// a no-op.
func (s *WishlistService) Add(ctx context.Context, userID, recipeID string) (models.StringArray, error) {
	if _, err := uuid.Parse(recipeID); err != nil {
		return nil, errs.ErrInvalidID
	}

	user, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Wishlist.Contains(recipeID) {
		return nil, errs.ErrAlreadyInWishlist
	}

	user.Wishlist = append(user.Wishlist, recipeID)
	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}
	return user.Wishlist, nil
}

// Remove drops all occurrences of the recipe id. Removing an absent id is
// a no-op, not an error.
func (s *WishlistService) Remove(ctx context.Context, userID, recipeID string) (models.StringArray, error) {
	user, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := make(models.StringArray, 0, len(user.Wishlist))
	for _, id := range user.Wishlist {
		if id != recipeID {
			kept = append(kept, id)
		}
	}

	user.Wishlist = kept
	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}
	return user.Wishlist, nil
}

// Check reports membership without mutating anything.
func (s *WishlistService) Check(ctx context.Context, userID, recipeID string) (bool, error) {
	user, err := s.user(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.Wishlist.Contains(recipeID), nil
}
