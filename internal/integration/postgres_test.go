package integration_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cooklyapp/backend/internal/service"
	"github.com/cooklyapp/backend/internal/testdb"
	"github.com/cooklyapp/backend/internal/types"
)

// Exercises the Postgres-only paths: pgvector similarity ordering on
// search and JSONB containment for the bookmarked listing. Requires
// docker; skipped otherwise.
func TestPostgresSearchAndBookmarks(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	db := testdb.SetupPostgres(t)
	ctx := context.Background()

	auth := service.NewAuthService(db, "test-secret")
	recipes := service.NewRecipeService(db)

	author, _, err := auth.Register(ctx, &types.RegisterRequest{
		Name: "author", Email: "author@example.com", Password: "password123",
	})
	require.NoError(t, err)
	reader, _, err := auth.Register(ctx, &types.RegisterRequest{
		Name: "reader", Email: "reader@example.com", Password: "password123",
	})
	require.NoError(t, err)

	create := func(title, description string) *types.CreateRecipeRequest {
		return &types.CreateRecipeRequest{
			Title:        title,
			Description:  description,
			Ingredients:  []string{"chicken", "stock"},
			Instructions: []string{"Simmer.", "Serve."},
		}
	}

	soup, err := recipes.Create(ctx, author.ID, create("Chicken Soup", "Clear chicken broth with noodles."))
	require.NoError(t, err)
	_, err = recipes.Create(ctx, author.ID, create("Chicken Pie", "Chicken baked under pastry."))
	require.NoError(t, err)

	results, err := recipes.List(ctx, "", "chicken soup", nil)
	require.NoError(t, err)
	require.Len(t, results, 2)
	// Embedding distance puts the closer title first.
	assert.Equal(t, "Chicken Soup", results[0].Title)

	bookmarked, err := recipes.ToggleBookmark(ctx, soup.ID, reader.ID)
	require.NoError(t, err)
	assert.True(t, bookmarked)

	list, err := recipes.Bookmarked(ctx, reader.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Chicken Soup", list[0].Title)
	assert.True(t, list[0].IsBookmarked)
}

// The engagement transactions behave the same on Postgres as on the
// in-memory database used by the unit tests.
func TestPostgresRatingRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	db := testdb.SetupPostgres(t)
	ctx := context.Background()

	auth := service.NewAuthService(db, "test-secret")
	recipes := service.NewRecipeService(db)

	author, _, err := auth.Register(ctx, &types.RegisterRequest{
		Name: "author", Email: "author@example.com", Password: "password123",
	})
	require.NoError(t, err)

	recipe, err := recipes.Create(ctx, author.ID, &types.CreateRecipeRequest{
		Title:        "Test Dish",
		Description:  "For rating.",
		Ingredients:  []string{"a"},
		Instructions: []string{"b"},
	})
	require.NoError(t, err)

	_, err = recipes.Rate(ctx, recipe.ID, author.ID, 5)
	require.NoError(t, err)

	var reloaded struct {
		Ratings string
	}
	require.NoError(t, db.Raw("SELECT ratings::text AS ratings FROM recipes WHERE id = ?", recipe.ID).Scan(&reloaded).Error)
	assert.Contains(t, reloaded.Ratings, `"value": 5`)

	summary, err := recipes.GetRating(ctx, recipe.ID, &author.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, summary.Average)
	assert.Equal(t, 1, summary.Count)
}
