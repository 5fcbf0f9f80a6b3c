// Command dishcovery is a terminal client for the Dishcovery API: browse
// and search the catalog, manage an account, and keep a wishlist.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/dishcovery/dishcovery/backend/client"
	"github.com/dishcovery/dishcovery/backend/internal/models"
	"github.com/dishcovery/dishcovery/backend/internal/search"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: dishcovery <command> [flags]

commands:
  signup    create an account (-email, -password)
  signin    sign in and persist the session (-email, -password)
  logout    clear the persisted session
  whoami    show the signed-in user
  recipes   list/search the catalog (see 'recipes -h' for filters)
  recipe    show one recipe by id
  wishlist  list|add <id>|remove <id>|check <id>

environment:
  DISHCOVERY_API_URL       API base URL (default http://localhost:3001)
  DISHCOVERY_SESSION_PATH  session file location`)
	os.Exit(2)
}

func main() {
	v := viper.New()
	v.SetEnvPrefix("dishcovery")
	v.SetDefault("api_url", "http://localhost:3001")
	v.SetDefault("session_path", client.DefaultSessionPath())
	v.AutomaticEnv()

	if len(os.Args) < 2 {
		usage()
	}

	api := client.New(v.GetString("api_url"))
	store := client.NewStore(v.GetString("session_path"))
	auth, err := client.NewAuth(api, store)
	if err != nil {
		fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch os.Args[1] {
	case "signup":
		runSignup(ctx, api, os.Args[2:])
	case "signin":
		runSignin(ctx, auth, os.Args[2:])
	case "logout":
		if err := auth.Logout(); err != nil {
			fatal(err)
		}
		fmt.Println("signed out")
	case "whoami":
		runWhoami(auth)
	case "recipes":
		runRecipes(ctx, api, os.Args[2:])
	case "recipe":
		runRecipe(ctx, api, os.Args[2:])
	case "wishlist":
		runWishlist(ctx, api, auth, os.Args[2:])
	default:
		usage()
	}
}

func runSignup(ctx context.Context, api *client.Client, args []string) {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)

	user, err := api.SignUp(ctx, *email, *password)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("created account %s (%s)\n", user.Email, user.ID)
}

func runSignin(ctx context.Context, auth *client.Auth, args []string) {
	fs := flag.NewFlagSet("signin", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)

	if err := auth.Login(ctx, *email, *password); err != nil {
		fatal(err)
	}
	s := auth.Session()
	fmt.Printf("signed in as %s (%d recipes in wishlist)\n", s.DisplayName(), len(s.Wishlist))
}

func runWhoami(auth *client.Auth) {
	s := auth.Session()
	if !s.SignedIn() {
		fmt.Println("not signed in")
		return
	}
	fmt.Printf("%s <%s>\n", s.DisplayName(), s.User.Email)
}

func runRecipes(ctx context.Context, api *client.Client, args []string) {
	fs := flag.NewFlagSet("recipes", flag.ExitOnError)
	query := fs.String("query", "", "free-text search over name, description, ingredients")
	category := fs.String("category", search.All, "category filter")
	difficulty := fs.String("difficulty", search.All, "difficulty filter (Easy|Medium|Hard)")
	skill := fs.String("skill", search.All, "skill level filter (Beginner|Intermediate|Advanced)")
	cookingTime := fs.String("cooking-time", search.All, "cooking time bucket (0-15|15-30|30-45|45-60|60+)")
	servings := fs.String("servings", search.All, "servings bucket (1-2|3-4|5-6|7+)")
	calories := fs.String("calories", search.All, "calories bucket (0-200|200-400|400-600|600+)")
	equipment := fs.String("equipment", "", "comma-separated equipment, all required")
	dietary := fs.String("dietary", "", "comma-separated dietary restrictions, all required")
	sortBy := fs.String("sort", search.SortName, "sort key (name|difficulty|time|calories|servings)")
	interactive := fs.Bool("i", false, "interactive search prompt")
	_ = fs.Parse(args)

	snapshot, err := api.ListRecipes(ctx)
	if err != nil {
		fatal(err)
	}

	filters := search.Filters{
		Query:               *query,
		Category:            *category,
		Difficulty:          *difficulty,
		SkillLevel:          *skill,
		CookingTime:         *cookingTime,
		Servings:            *servings,
		Calories:            *calories,
		Equipment:           splitCSV(*equipment),
		DietaryRestrictions: splitCSV(*dietary),
	}

	if *interactive {
		interactiveSearch(snapshot, filters, *sortBy)
		return
	}

	printRecipes(search.Apply(snapshot, filters, *sortBy))
}

// interactiveSearch re-filters the fetched snapshot as the user types,
// debounced so a pass runs once per pause rather than per keystroke. All
// filtering is local; the snapshot is fetched exactly once.
func interactiveSearch(snapshot []models.Recipe, filters search.Filters, sortBy string) {
	debouncer := client.NewDebouncer(300 * time.Millisecond)
	defer debouncer.Stop()

	fmt.Println("type to search, empty line to show all, ctrl-d to quit")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		debouncer.Do(func() {
			f := filters
			f.Query = line
			printRecipes(search.Apply(snapshot, f, sortBy))
		})
	}
}

func runRecipe(ctx context.Context, api *client.Client, args []string) {
	if len(args) < 1 {
		fatal(fmt.Errorf("usage: dishcovery recipe <id>"))
	}
	recipe, err := api.GetRecipe(ctx, args[0])
	if err != nil {
		fatal(err)
	}

	fmt.Printf("%s — %s\n", recipe.Name, recipe.Description)
	fmt.Printf("category: %s  cuisine: %s  difficulty: %s  skill: %s\n",
		recipe.Category, recipe.Cuisine, recipe.Difficulty, recipe.SkillLevel)
	fmt.Printf("cooking: %dmin  prep: %dmin  servings: %d  calories: %.0f\n",
		recipe.CookingTime, recipe.PrepTime, recipe.Servings, recipe.Calories)
	fmt.Println("\ningredients:")
	for _, ing := range recipe.Ingredients {
		fmt.Printf("  - %s\n", ing)
	}
	fmt.Println("\ninstructions:")
	for i, step := range recipe.Instructions {
		fmt.Printf("  %d. %s\n", i+1, step)
	}
}

func runWishlist(ctx context.Context, api *client.Client, auth *client.Auth, args []string) {
	s := auth.Session()
	if !s.SignedIn() {
		fatal(fmt.Errorf("sign in first"))
	}

	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		recipes, err := api.Wishlist(ctx, s.User.ID)
		if err != nil {
			fatal(err)
		}
		printRecipes(recipes)
	case "add":
		requireArg(args, "wishlist add <recipeId>")
		if err := auth.AddToWishlist(ctx, args[1]); err != nil {
			fatal(err)
		}
		fmt.Printf("added; wishlist has %d recipes\n", len(auth.Session().Wishlist))
	case "remove":
		requireArg(args, "wishlist remove <recipeId>")
		if err := auth.RemoveFromWishlist(ctx, args[1]); err != nil {
			fatal(err)
		}
		fmt.Printf("removed; wishlist has %d recipes\n", len(auth.Session().Wishlist))
	case "check":
		requireArg(args, "wishlist check <recipeId>")
		isIn, err := api.CheckWishlist(ctx, s.User.ID, args[1])
		if err != nil {
			fatal(err)
		}
		fmt.Println(isIn)
	default:
		usage()
	}
}

func printRecipes(recipes []models.Recipe) {
	if len(recipes) == 0 {
		fmt.Println("no recipes found")
		return
	}
	for _, r := range recipes {
		fmt.Printf("%s  %-30s  %-12s  %3dmin  %4.0fkcal  %s\n",
			r.ID, r.Name, r.Category, r.CookingTime, r.Calories, r.Difficulty)
	}
	fmt.Printf("%d recipes found\n", len(recipes))
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func requireArg(args []string, usage string) {
	if len(args) < 2 {
		fatal(fmt.Errorf("usage: dishcovery %s", usage))
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
