package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cooklyapp/backend/internal/models"
	"github.com/cooklyapp/backend/internal/service"
	"github.com/cooklyapp/backend/internal/testdb"
	"github.com/cooklyapp/backend/internal/types"
)

var userSeq int

// seedUser registers a user through the auth service so the password
// hash and defaults are realistic.
func seedUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	userSeq++

	auth := service.NewAuthService(db, "test-secret")
	user, _, err := auth.Register(context.Background(), &types.RegisterRequest{
		Name:     name,
		Email:    fmt.Sprintf("%s-%d@example.com", name, userSeq),
		Password: "password123",
	})
	require.NoError(t, err)
	return user
}

func seedRecipe(t *testing.T, db *gorm.DB, authorID uuid.UUID, title string) *models.Recipe {
	t.Helper()

	recipes := service.NewRecipeService(db)
	recipe, err := recipes.Create(context.Background(), authorID, &types.CreateRecipeRequest{
		Title:        title,
		Description:  "A test recipe for " + title,
		Ingredients:  []string{"salt", "water"},
		Instructions: []string{"Mix.", "Serve."},
	})
	require.NoError(t, err)
	return recipe
}

func newRecipeService(t *testing.T) (*service.RecipeService, *gorm.DB) {
	db := testdb.SetupSQLite(t)
	return service.NewRecipeService(db), db
}
