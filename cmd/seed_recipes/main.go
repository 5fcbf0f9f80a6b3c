// Command seed_recipes loads a sample catalog through the API so a fresh
// instance has something to browse.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dishcovery/dishcovery/backend/client"
	"github.com/dishcovery/dishcovery/backend/internal/api"
)

var sampleRecipes = []api.CreateRecipeRequest{
	{
		Name:                "Tomato Basil Soup",
		Description:         "A smooth soup of slow-simmered tomatoes finished with fresh basil.",
		Image:               "tomato-basil-soup.jpg",
		Ingredients:         []string{"2 lbs ripe tomatoes", "1 onion", "3 cloves garlic", "1 cup vegetable stock", "fresh basil", "olive oil"},
		Instructions:        []string{"Roast the tomatoes and garlic.", "Sauté the onion until translucent.", "Simmer everything with the stock for 20 minutes.", "Blend until smooth and stir in the basil."},
		CookingTime:         25,
		PrepTime:            10,
		TotalTime:           35,
		Servings:            4,
		Calories:            180,
		Protein:             4,
		Carbs:               22,
		Fat:                 9,
		Category:            "Soup",
		Cuisine:             "Italian",
		Tags:                []string{"comfort", "vegetarian"},
		Equipment:           []string{"blender", "stockpot"},
		DietaryRestrictions: []string{"Vegetarian", "Gluten-Free"},
		Difficulty:          "Easy",
		SkillLevel:          "Beginner",
	},
	{
		Name:                "Pan-Seared Ribeye",
		Description:         "A thick-cut ribeye with a butter-basted crust, rested and sliced.",
		Image:               "pan-seared-ribeye.jpg",
		Ingredients:         []string{"1 ribeye steak", "2 tbsp butter", "2 sprigs thyme", "2 cloves garlic", "coarse salt", "black pepper"},
		Instructions:        []string{"Salt the steak and rest it at room temperature.", "Sear hard in a screaming-hot pan.", "Baste with butter, thyme, and garlic.", "Rest 10 minutes before slicing."},
		CookingTime:         70,
		PrepTime:            15,
		TotalTime:           85,
		Servings:            2,
		Calories:            650,
		Protein:             45,
		Carbs:               2,
		Fat:                 52,
		Category:            "Main",
		Cuisine:             "American",
		Tags:                []string{"steak", "dinner"},
		Equipment:           []string{"cast iron skillet"},
		DietaryRestrictions: []string{"Gluten-Free"},
		Difficulty:          "Medium",
		SkillLevel:          "Intermediate",
	},
	{
		Name:                "Green Curry Noodles",
		Description:         "Rice noodles in a fragrant coconut green curry with crisp vegetables.",
		Image:               "green-curry-noodles.jpg",
		Ingredients:         []string{"rice noodles", "green curry paste", "1 can coconut milk", "snap peas", "red pepper", "lime", "cilantro"},
		Instructions:        []string{"Soak the noodles.", "Fry the curry paste in coconut cream.", "Add vegetables and the rest of the coconut milk.", "Toss with noodles, lime, and cilantro."},
		CookingTime:         20,
		PrepTime:            15,
		TotalTime:           35,
		Servings:            3,
		Calories:            420,
		Protein:             10,
		Carbs:               55,
		Fat:                 18,
		Category:            "Main",
		Cuisine:             "Thai",
		Tags:                []string{"noodles", "spicy"},
		Equipment:           []string{"wok"},
		DietaryRestrictions: []string{"Vegan", "Dairy-Free"},
		Difficulty:          "Easy",
		SkillLevel:          "Beginner",
	},
	{
		Name:                "Sourdough Boule",
		Description:         "An open-crumb country loaf with a long cold ferment.",
		Image:               "sourdough-boule.jpg",
		Ingredients:         []string{"500g bread flour", "350g water", "100g sourdough starter", "10g salt"},
		Instructions:        []string{"Mix and autolyse for an hour.", "Fold every 30 minutes over 3 hours of bulk.", "Shape and retard overnight in the fridge.", "Bake in a covered dutch oven at 475F."},
		CookingTime:         50,
		PrepTime:            240,
		TotalTime:           290,
		Servings:            8,
		Calories:            210,
		Protein:             7,
		Carbs:               43,
		Fat:                 1,
		Category:            "Bread",
		Cuisine:             "French",
		Tags:                []string{"baking", "weekend project"},
		Equipment:           []string{"dutch oven", "banneton"},
		DietaryRestrictions: []string{"Vegetarian", "Vegan"},
		Difficulty:          "Hard",
		SkillLevel:          "Advanced",
	},
}

func main() {
	apiURL := flag.String("api", "http://localhost:3001", "API base URL")
	flag.Parse()

	c := client.New(*apiURL)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	for i := range sampleRecipes {
		recipe, err := c.CreateRecipe(ctx, &sampleRecipes[i])
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to seed %q: %v\n", sampleRecipes[i].Name, err)
			os.Exit(1)
		}
		fmt.Printf("seeded %s (%s)\n", recipe.Name, recipe.ID)
	}
	fmt.Printf("seeded %d recipes\n", len(sampleRecipes))
}
