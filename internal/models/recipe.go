package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Difficulty values accepted on a recipe.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Skill levels accepted on a recipe.
const (
	SkillBeginner     = "Beginner"
	SkillIntermediate = "Intermediate"
	SkillAdvanced     = "Advanced"
)

// Recipe is a catalog entry. Image is a filename served from the uploads
// mount, not a full URL.
type Recipe struct {
	ID                  uuid.UUID   `gorm:"type:varchar(36);primarykey" json:"id"`
	Name                string      `gorm:"size:255;not null" json:"name"`
	Description         string      `gorm:"type:text;not null" json:"description"`
	Image               string      `gorm:"size:255;not null" json:"image"`
	Ingredients         StringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions        StringArray `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	CookingTime         int         `json:"cookingTime"`
	PrepTime            int         `json:"prepTime"`
	TotalTime           int         `json:"totalTime"`
	Servings            int         `json:"servings"`
	Calories            float64     `json:"calories"`
	Protein             float64     `json:"protein"`
	Carbs               float64     `json:"carbs"`
	Fat                 float64     `json:"fat"`
	Category            string      `gorm:"size:50" json:"category"`
	Cuisine             string      `gorm:"size:50" json:"cuisine"`
	Tags                StringArray `gorm:"type:jsonb;default:'[]'" json:"tags"`
	Equipment           StringArray `gorm:"type:jsonb;default:'[]'" json:"equipment"`
	DietaryRestrictions StringArray `gorm:"type:jsonb;default:'[]'" json:"dietaryRestrictions"`
	Difficulty          string      `gorm:"size:20" json:"difficulty"`
	SkillLevel          string      `gorm:"size:20" json:"skillLevel"`
	Rating              float64     `json:"rating"`
	ReviewCount         int         `json:"reviewCount"`
	FavoriteCount       int         `json:"favoriteCount"`
	CreatedBy           string      `gorm:"size:100" json:"createdBy"`
	CreatedAt           time.Time   `json:"createdAt"`
	UpdatedAt           time.Time   `json:"updatedAt"`
}

// BeforeCreate assigns the id and fills defaulted fields.
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Difficulty == "" {
		r.Difficulty = DifficultyEasy
	}
	if r.SkillLevel == "" {
		r.SkillLevel = SkillBeginner
	}
	if r.CreatedBy == "" {
		r.CreatedBy = "system"
	}
	return nil
}
