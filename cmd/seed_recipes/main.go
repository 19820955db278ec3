package main

import (
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cooklyapp/backend/config"
	"github.com/cooklyapp/backend/internal/database"
	"github.com/cooklyapp/backend/internal/models"
	"github.com/cooklyapp/backend/internal/service"
)

// seedRecipe is a compact description of a demo recipe.
type seedRecipe struct {
	title        string
	description  string
	category     string
	prepTime     int
	cookTime     int
	servings     int
	difficulty   string
	ingredients  []string
	instructions []string
}

var demoRecipes = []seedRecipe{
	{
		title:       "Classic Margherita Pizza",
		description: "Thin crust pizza with tomato, mozzarella and fresh basil.",
		category:    "main-course",
		prepTime:    30, cookTime: 12, servings: 2, difficulty: "medium",
		ingredients:  []string{"pizza dough", "tomato sauce", "mozzarella", "basil", "olive oil"},
		instructions: []string{"Preheat the oven to 250C.", "Stretch the dough.", "Top with sauce and cheese.", "Bake until blistered.", "Finish with basil."},
	},
	{
		title:       "Green Shakshuka",
		description: "Eggs poached in a spinach and herb base, heavy on the greens.",
		category:    "breakfast",
		prepTime:    10, cookTime: 15, servings: 2, difficulty: "easy",
		ingredients:  []string{"eggs", "spinach", "leeks", "cilantro", "cumin", "feta"},
		instructions: []string{"Soften the leeks.", "Wilt the spinach with spices.", "Make wells and crack in the eggs.", "Cover until just set."},
	},
	{
		title:       "Miso Ramen",
		description: "Weeknight ramen with a miso butter broth and soft eggs.",
		category:    "main-course",
		prepTime:    20, cookTime: 25, servings: 4, difficulty: "medium",
		ingredients:  []string{"ramen noodles", "white miso", "butter", "stock", "eggs", "scallions"},
		instructions: []string{"Whisk miso into warm stock.", "Cook the noodles separately.", "Soft boil the eggs.", "Assemble the bowls."},
	},
	{
		title:       "Chocolate Olive Oil Cake",
		description: "Dense, dairy-free chocolate cake with a glossy crumb.",
		category:    "dessert",
		prepTime:    15, cookTime: 40, servings: 8, difficulty: "easy",
		ingredients:  []string{"flour", "cocoa", "olive oil", "sugar", "eggs", "espresso"},
		instructions: []string{"Whisk the dry ingredients.", "Beat in oil, eggs and espresso.", "Bake at 175C for 40 minutes."},
	},
	{
		title:       "Tom Kha Gai",
		description: "Thai coconut chicken soup with galangal and lime.",
		category:    "soup",
		prepTime:    15, cookTime: 20, servings: 4, difficulty: "medium",
		ingredients:  []string{"chicken thighs", "coconut milk", "galangal", "lemongrass", "lime", "mushrooms", "fish sauce"},
		instructions: []string{"Simmer aromatics in coconut milk.", "Add chicken and mushrooms.", "Season with fish sauce and lime."},
	},
	{
		title:       "Charred Corn Salad",
		description: "Summer salad of charred corn, cotija and lime crema.",
		category:    "salad",
		prepTime:    15, cookTime: 10, servings: 4, difficulty: "easy",
		ingredients:  []string{"corn", "cotija", "lime", "sour cream", "cilantro", "chili powder"},
		instructions: []string{"Char the corn in a dry pan.", "Toss with crema and lime.", "Top with cotija and cilantro."},
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	author, err := ensureDemoUser(db)
	if err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}

	seeded := 0
	for _, r := range demoRecipes {
		var count int64
		if err := db.Model(&models.Recipe{}).Where("title = ?", r.title).Count(&count).Error; err != nil {
			log.Fatalf("Failed to check for existing recipe: %v", err)
		}
		if count > 0 {
			continue
		}

		recipe := models.Recipe{
			Title:        r.title,
			Description:  r.description,
			Category:     r.category,
			PrepTime:     r.prepTime,
			CookTime:     r.cookTime,
			Servings:     r.servings,
			Difficulty:   r.difficulty,
			Ingredients:  r.ingredients,
			Instructions: r.instructions,
			AuthorID:     author.ID,
			Embedding:    service.GenerateEmbedding(r.title + " " + r.description),
		}
		if err := db.Create(&recipe).Error; err != nil {
			log.Fatalf("Failed to seed recipe %q: %v", r.title, err)
		}
		seeded++
	}

	fmt.Printf("Seeded %d recipes for %s\n", seeded, author.Email)
}

func ensureDemoUser(db *gorm.DB) (*models.User, error) {
	var user models.User
	err := db.Where("email = ?", "demo@cookly.app").First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user = models.User{
		Name:         "Cookly Demo",
		Email:        "demo@cookly.app",
		PasswordHash: string(hash),
		Bio:          "Seeded demo account.",
		AvatarURL:    "/avatars/avatar1.png",
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
