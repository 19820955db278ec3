package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRecipeRequiresAuth(t *testing.T) {
	engine, _ := setupAPI(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/recipes", "", gin.H{
		"title":        "Anonymous Stew",
		"description":  "Should not exist.",
		"ingredients":  []string{"mystery"},
		"instructions": []string{"None."},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRecipeListAndGetAnonymous(t *testing.T) {
	engine, _ := setupAPI(t)
	token, _ := registerUser(t, engine, "author")
	recipeID := createRecipe(t, engine, token, "Shakshuka")

	w := doJSON(t, engine, http.MethodGet, "/api/v1/recipes", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []struct {
		Title        string `json:"title"`
		IsLiked      bool   `json:"is_liked"`
		IsBookmarked bool   `json:"is_bookmarked"`
		MyRating     *int   `json:"my_rating"`
	}
	decodeBody(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Shakshuka", list[0].Title)
	assert.False(t, list[0].IsLiked)
	assert.Nil(t, list[0].MyRating)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/recipes/"+recipeID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var view struct {
		Title  string `json:"title"`
		Author struct {
			Name string `json:"name"`
		} `json:"author"`
	}
	decodeBody(t, w, &view)
	assert.Equal(t, "Shakshuka", view.Title)
	assert.Equal(t, "author", view.Author.Name)
}

func TestRecipeGetErrors(t *testing.T) {
	engine, _ := setupAPI(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/recipes/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/recipes/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLikeEndpointToggles(t *testing.T) {
	engine, _ := setupAPI(t)
	author, _ := registerUser(t, engine, "author")
	liker, _ := registerUser(t, engine, "liker")
	recipeID := createRecipe(t, engine, author, "Katsu Curry")

	w := doJSON(t, engine, http.MethodPost, "/api/v1/recipes/"+recipeID+"/like", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp struct {
		Liked      bool `json:"liked"`
		LikesCount int  `json:"likes_count"`
	}

	w = doJSON(t, engine, http.MethodPost, "/api/v1/recipes/"+recipeID+"/like", liker, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &resp)
	assert.True(t, resp.Liked)
	assert.Equal(t, 1, resp.LikesCount)

	// The annotated view reflects the like for this caller only.
	var view struct {
		IsLiked bool `json:"is_liked"`
	}
	w = doJSON(t, engine, http.MethodGet, "/api/v1/recipes/"+recipeID, liker, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &view)
	assert.True(t, view.IsLiked)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/recipes/"+recipeID, author, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &view)
	assert.False(t, view.IsLiked)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/recipes/"+recipeID+"/like", liker, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &resp)
	assert.False(t, resp.Liked)
	assert.Equal(t, 0, resp.LikesCount)
}

func TestBookmarkEndpointAndList(t *testing.T) {
	engine, _ := setupAPI(t)
	author, _ := registerUser(t, engine, "author")
	reader, _ := registerUser(t, engine, "reader")
	recipeID := createRecipe(t, engine, author, "Udon")
	createRecipe(t, engine, author, "Soba")

	w := doJSON(t, engine, http.MethodPost, "/api/v1/recipes/"+recipeID+"/bookmark", reader, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Bookmarked bool `json:"bookmarked"`
	}
	decodeBody(t, w, &resp)
	assert.True(t, resp.Bookmarked)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/recipes/bookmarked", reader, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []struct {
		Title string `json:"title"`
	}
	decodeBody(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Udon", list[0].Title)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/recipes/bookmarked", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateEndpoint(t *testing.T) {
	engine, _ := setupAPI(t)
	author, _ := registerUser(t, engine, "author")
	alice, _ := registerUser(t, engine, "alice")
	bob, _ := registerUser(t, engine, "bob")
	recipeID := createRecipe(t, engine, author, "Falafel")

	var summary struct {
		Avg      float64 `json:"avg"`
		Count    int     `json:"count"`
		MyRating *int    `json:"my_rating"`
	}

	w := doJSON(t, engine, http.MethodPost, "/api/v1/recipes/"+recipeID+"/rate", alice, gin.H{"value": 3})
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &summary)
	assert.Equal(t, 3.0, summary.Avg)
	assert.Equal(t, 1, summary.Count)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/recipes/"+recipeID+"/rate", bob, gin.H{"value": 5})
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &summary)
	assert.Equal(t, 4.0, summary.Avg)
	assert.Equal(t, 2, summary.Count)
	require.NotNil(t, summary.MyRating)
	assert.Equal(t, 5, *summary.MyRating)

	for _, value := range []int{0, 6} {
		w = doJSON(t, engine, http.MethodPost, "/api/v1/recipes/"+recipeID+"/rate", alice, gin.H{"value": value})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "rating must be between 1 and 5")
	}

	// The rejected values left nothing behind.
	w = doJSON(t, engine, http.MethodGet, "/api/v1/recipes/"+recipeID+"/rate", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &summary)
	assert.Equal(t, 4.0, summary.Avg)
	assert.Equal(t, 2, summary.Count)
	assert.Nil(t, summary.MyRating)
}

func TestDeleteRecipeEndpoint(t *testing.T) {
	engine, _ := setupAPI(t)
	author, _ := registerUser(t, engine, "author")
	other, _ := registerUser(t, engine, "other")
	recipeID := createRecipe(t, engine, author, "Pierogi")

	w := doJSON(t, engine, http.MethodDelete, "/api/v1/recipes/"+recipeID, other, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, engine, http.MethodDelete, "/api/v1/recipes/"+recipeID, author, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/recipes/"+recipeID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecipeSearchAndCategoryFilter(t *testing.T) {
	engine, _ := setupAPI(t)
	token, _ := registerUser(t, engine, "author")

	doJSON(t, engine, http.MethodPost, "/api/v1/recipes", token, gin.H{
		"title":        "Panna Cotta",
		"description":  "Silky set cream.",
		"category":     "dessert",
		"ingredients":  []string{"cream", "gelatin"},
		"instructions": []string{"Heat.", "Set."},
	})
	createRecipe(t, engine, token, "Minestrone")

	var list []struct {
		Title string `json:"title"`
	}

	w := doJSON(t, engine, http.MethodGet, "/api/v1/recipes?category=dessert", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Panna Cotta", list[0].Title)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/recipes?search=minestrone", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Minestrone", list[0].Title)
}
