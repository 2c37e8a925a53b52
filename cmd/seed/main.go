package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/culinate/recipe-engine/config"
	"github.com/culinate/recipe-engine/internal/database"
	"github.com/culinate/recipe-engine/internal/model"
)

var sampleRecipes = []model.Recipe{
	{
		Title:        "One-Pot Chicken Pasta",
		Description:  "Weeknight chicken and pasta simmered in one pot.",
		Ingredients:  model.JSONBStringArray{"chicken breast", "penne pasta", "garlic", "tomato sauce", "parmesan"},
		Instructions: model.JSONBStringArray{"Brown the chicken.", "Add pasta, sauce and water.", "Simmer until tender."},
		PrepMinutes:  10, CookMinutes: 20, TotalMinutes: 30, Servings: 4,
		Source: "seed", MealRole: "dinner", IsEasy: true, IsOnePot: true, KidFriendly: true, LeftoverFriendly: true,
	},
	{
		Title:        "Sweet Potato Soup",
		Description:  "Creamy roasted sweet potato soup with coconut milk.",
		Ingredients:  model.JSONBStringArray{"sweet potatoes", "coconut milk", "onion", "vegetable broth"},
		Instructions: model.JSONBStringArray{"Roast the sweet potatoes.", "Simmer with broth.", "Blend until smooth."},
		PrepMinutes:  15, CookMinutes: 35, TotalMinutes: 50, Servings: 4,
		Source: "seed", MealRole: "dinner", IsOnePot: true, LeftoverFriendly: true,
	},
	{
		Title:        "Veggie Breakfast Frittata",
		Description:  "Eggs baked with spinach, mushrooms and cheddar.",
		Ingredients:  model.JSONBStringArray{"eggs", "spinach", "mushrooms", "cheddar cheese"},
		Instructions: model.JSONBStringArray{"Whisk the eggs.", "Fold in vegetables.", "Bake until set."},
		PrepMinutes:  10, CookMinutes: 18, TotalMinutes: 28, Servings: 4,
		Source: "seed", MealRole: "breakfast", IsEasy: true, KidFriendly: true,
	},
	{
		Title:        "Slow Cooker Beef Chili",
		Description:  "Ground beef and black bean chili for a crowd.",
		Ingredients:  model.JSONBStringArray{"ground beef", "black beans", "tomatoes", "onion", "chili powder"},
		Instructions: model.JSONBStringArray{"Brown the beef.", "Add everything to the slow cooker.", "Cook on low."},
		PrepMinutes:  15, CookMinutes: 240, TotalMinutes: 255, Servings: 8,
		Source: "seed", MealRole: "dinner", LeftoverFriendly: true,
	},
	{
		Title:        "Garlic Shrimp Stir Fry",
		Description:  "Shrimp and broccoli in a quick soy-garlic sauce.",
		Ingredients:  model.JSONBStringArray{"shrimp", "broccoli", "garlic", "soy sauce", "rice"},
		Instructions: model.JSONBStringArray{"Sear the shrimp.", "Stir-fry the broccoli.", "Toss with sauce, serve over rice."},
		PrepMinutes:  10, CookMinutes: 12, TotalMinutes: 22, Servings: 2,
		Source: "seed", MealRole: "dinner", IsEasy: true, IsOnePot: true,
	},
	{
		Title:        "Lentil Curry",
		Description:  "Red lentils simmered with coconut milk and curry spices.",
		Ingredients:  model.JSONBStringArray{"lentils", "coconut milk", "onion", "garlic", "curry powder"},
		Instructions: model.JSONBStringArray{"Soften the onion.", "Add lentils and spices.", "Simmer in coconut milk."},
		PrepMinutes:  10, CookMinutes: 30, TotalMinutes: 40, Servings: 4,
		Source: "seed", MealRole: "dinner", IsOnePot: true, LeftoverFriendly: true,
	},
	{
		Title:        "Peanut Butter Banana Smoothie",
		Description:  "Three-ingredient breakfast smoothie.",
		Ingredients:  model.JSONBStringArray{"peanut butter", "banana", "milk"},
		Instructions: model.JSONBStringArray{"Blend everything until smooth."},
		PrepMinutes:  5, CookMinutes: 0, TotalMinutes: 5, Servings: 1,
		Source: "seed", MealRole: "breakfast", IsEasy: true, KidFriendly: true,
	},
	{
		Title:        "Sheet Pan Salmon and Potatoes",
		Description:  "Salmon fillets roasted with baby potatoes.",
		Ingredients:  model.JSONBStringArray{"salmon", "potatoes", "lemon", "olive oil"},
		Instructions: model.JSONBStringArray{"Roast the potatoes.", "Add salmon to the pan.", "Roast until flaky."},
		PrepMinutes:  10, CookMinutes: 30, TotalMinutes: 40, Servings: 2,
		Source: "seed", MealRole: "dinner", IsEasy: true, IsOnePot: true,
	},
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	for _, recipe := range sampleRecipes {
		if err := db.Create(&recipe).Error; err != nil {
			logger.Fatal("failed to seed recipe", zap.String("title", recipe.Title), zap.Error(err))
		}
	}
	logger.Info("seeded recipes", zap.Int("count", len(sampleRecipes)))
}
