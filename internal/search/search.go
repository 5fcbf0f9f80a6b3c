// Package search implements the client-side filter and sort pipeline that
// the search page runs over a fetched recipe snapshot. Every call
// re-derives its result from the input slice, never mutating it, so
// filters compose and clearing them restores the original list exactly.
package search

import (
	"math"
	"sort"
	"strings"

	"github.com/dishcovery/dishcovery/backend/internal/models"
)

// All is the sentinel that disables a single-select filter.
const All = "All"

// Sort keys accepted by Apply.
const (
	SortName       = "name"
	SortDifficulty = "difficulty"
	SortTime       = "time"
	SortCalories   = "calories"
	SortServings   = "servings"
)

// Filters is the full state of the search page controls. Zero values and
// the All sentinel both mean "filter off".
type Filters struct {
	Query               string
	Category            string
	Difficulty          string
	SkillLevel          string
	CookingTime         string
	Servings            string
	Calories            string
	Equipment           []string
	DietaryRestrictions []string
}

type interval struct {
	min, max float64
}

// Bucket labels map to inclusive intervals; the "+" buckets are
// open-ended. Unknown labels disable the filter.
var (
	cookingTimeRanges = map[string]interval{
		"0-15":  {0, 15},
		"15-30": {15, 30},
		"30-45": {30, 45},
		"45-60": {45, 60},
		"60+":   {60, math.Inf(1)},
	}
	servingRanges = map[string]interval{
		"1-2": {1, 2},
		"3-4": {3, 4},
		"5-6": {5, 6},
		"7+":  {7, math.Inf(1)},
	}
	calorieRanges = map[string]interval{
		"0-200":   {0, 200},
		"200-400": {200, 400},
		"400-600": {400, 600},
		"600+":    {600, math.Inf(1)},
	}
)

var difficultyRank = map[string]int{
	models.DifficultyEasy:   1,
	models.DifficultyMedium: 2,
	models.DifficultyHard:   3,
}

// Apply filters the snapshot and sorts the result. The returned slice is
// always freshly allocated.
func Apply(snapshot []models.Recipe, f Filters, sortBy string) []models.Recipe {
	filtered := make([]models.Recipe, 0, len(snapshot))
	for _, r := range snapshot {
		if f.matches(&r) {
			filtered = append(filtered, r)
		}
	}
	sortRecipes(filtered, sortBy)
	return filtered
}

func (f Filters) matches(r *models.Recipe) bool {
	if q := strings.TrimSpace(f.Query); q != "" && !matchesQuery(r, q) {
		return false
	}
	if f.Category != "" && f.Category != All && r.Category != f.Category {
		return false
	}
	if f.Difficulty != "" && f.Difficulty != All && r.Difficulty != f.Difficulty {
		return false
	}
	if f.SkillLevel != "" && f.SkillLevel != All && r.SkillLevel != f.SkillLevel {
		return false
	}
	if !inBucket(cookingTimeRanges, f.CookingTime, float64(r.CookingTime)) {
		return false
	}
	if !inBucket(servingRanges, f.Servings, float64(r.Servings)) {
		return false
	}
	if !inBucket(calorieRanges, f.Calories, r.Calories) {
		return false
	}
	if !hasAllEquipment(r.Equipment, f.Equipment) {
		return false
	}
	if !hasAllRestrictions(r.DietaryRestrictions, f.DietaryRestrictions) {
		return false
	}
	return true
}

// matchesQuery checks name, description, and every ingredient for a
// case-insensitive substring match; any one field matching is enough.
func matchesQuery(r *models.Recipe, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(r.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), q) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), q) {
			return true
		}
	}
	return false
}

func inBucket(ranges map[string]interval, label string, value float64) bool {
	if label == "" || label == All {
		return true
	}
	iv, ok := ranges[label]
	if !ok {
		return true
	}
	return value >= iv.min && value <= iv.max
}

// hasAllEquipment requires every selected value to match some recipe
// equipment entry, case-insensitively by substring.
func hasAllEquipment(have models.StringArray, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if strings.Contains(strings.ToLower(h), strings.ToLower(w)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// hasAllRestrictions requires every selected restriction to be present
// exactly.
func hasAllRestrictions(have models.StringArray, want []string) bool {
	for _, w := range want {
		if !have.Contains(w) {
			return false
		}
	}
	return true
}

func sortRecipes(recipes []models.Recipe, sortBy string) {
	switch sortBy {
	case SortName:
		sort.SliceStable(recipes, func(i, j int) bool {
			return recipes[i].Name < recipes[j].Name
		})
	case SortDifficulty:
		sort.SliceStable(recipes, func(i, j int) bool {
			return difficultyRank[recipes[i].Difficulty] < difficultyRank[recipes[j].Difficulty]
		})
	case SortTime:
		sort.SliceStable(recipes, func(i, j int) bool {
			return recipes[i].CookingTime < recipes[j].CookingTime
		})
	case SortCalories:
		sort.SliceStable(recipes, func(i, j int) bool {
			return recipes[i].Calories < recipes[j].Calories
		})
	case SortServings:
		sort.SliceStable(recipes, func(i, j int) bool {
			return recipes[i].Servings < recipes[j].Servings
		})
	}
}

// Categories returns the distinct categories in first-seen order with the
// All sentinel prepended, ready for the category dropdown.
func Categories(recipes []models.Recipe) []string {
	out := []string{All}
	seen := map[string]bool{}
	for _, r := range recipes {
		if r.Category != "" && !seen[r.Category] {
			seen[r.Category] = true
			out = append(out, r.Category)
		}
	}
	return out
}

// Equipment returns the distinct equipment values in first-seen order.
func Equipment(recipes []models.Recipe) []string {
	return distinct(recipes, func(r *models.Recipe) models.StringArray { return r.Equipment })
}

// DietaryRestrictions returns the distinct restriction values in
// first-seen order.
func DietaryRestrictions(recipes []models.Recipe) []string {
	return distinct(recipes, func(r *models.Recipe) models.StringArray { return r.DietaryRestrictions })
}

func distinct(recipes []models.Recipe, field func(*models.Recipe) models.StringArray) []string {
	var out []string
	seen := map[string]bool{}
	for i := range recipes {
		for _, v := range field(&recipes[i]) {
			if v != "" && !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}
