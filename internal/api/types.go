package api

import "github.com/dishcovery/dishcovery/backend/internal/models"

// CredentialsRequest is the body for both sign-up and sign-in.
type CredentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateRecipeRequest is the validated shape of a new recipe. Required and
// enum markers live here so handlers never trust ad hoc field access.
type CreateRecipeRequest struct {
	Name                string   `json:"name" binding:"required"`
	Description         string   `json:"description" binding:"required"`
	Image               string   `json:"image" binding:"required"`
	Ingredients         []string `json:"ingredients" binding:"required,min=1,dive,required"`
	Instructions        []string `json:"instructions" binding:"required,min=1,dive,required"`
	CookingTime         int      `json:"cookingTime" binding:"gte=0"`
	PrepTime            int      `json:"prepTime" binding:"gte=0"`
	TotalTime           int      `json:"totalTime" binding:"gte=0"`
	Servings            int      `json:"servings" binding:"gte=0"`
	Calories            float64  `json:"calories" binding:"gte=0"`
	Protein             float64  `json:"protein" binding:"gte=0"`
	Carbs               float64  `json:"carbs" binding:"gte=0"`
	Fat                 float64  `json:"fat" binding:"gte=0"`
	Category            string   `json:"category"`
	Cuisine             string   `json:"cuisine"`
	Tags                []string `json:"tags"`
	Equipment           []string `json:"equipment"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	Difficulty          string   `json:"difficulty" binding:"omitempty,oneof=Easy Medium Hard"`
	SkillLevel          string   `json:"skillLevel" binding:"omitempty,oneof=Beginner Intermediate Advanced"`
	Rating              float64  `json:"rating" binding:"gte=0,lte=5"`
	CreatedBy           string   `json:"createdBy"`
}

// Recipe converts the validated request into a store record.
func (r *CreateRecipeRequest) Recipe() *models.Recipe {
	return &models.Recipe{
		Name:                r.Name,
		Description:         r.Description,
		Image:               r.Image,
		Ingredients:         models.StringArray(r.Ingredients),
		Instructions:        models.StringArray(r.Instructions),
		CookingTime:         r.CookingTime,
		PrepTime:            r.PrepTime,
		TotalTime:           r.TotalTime,
		Servings:            r.Servings,
		Calories:            r.Calories,
		Protein:             r.Protein,
		Carbs:               r.Carbs,
		Fat:                 r.Fat,
		Category:            r.Category,
		Cuisine:             r.Cuisine,
		Tags:                models.StringArray(r.Tags),
		Equipment:           models.StringArray(r.Equipment),
		DietaryRestrictions: models.StringArray(r.DietaryRestrictions),
		Difficulty:          r.Difficulty,
		SkillLevel:          r.SkillLevel,
		Rating:              r.Rating,
		CreatedBy:           r.CreatedBy,
	}
}

// UserSummary is the identity payload returned at sign-in.
type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
