package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cooklyapp/backend/internal/api"
	"github.com/cooklyapp/backend/internal/router"
	"github.com/cooklyapp/backend/internal/service"
	"github.com/cooklyapp/backend/internal/testdb"
)

// setupAPI wires the full router against an in-memory database. No rate
// limiter, no email, no image uploads: those need external services.
func setupAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.SetupSQLite(t)

	authService := service.NewAuthService(db, "test-secret")
	recipeService := service.NewRecipeService(db)
	commentService := service.NewCommentService(db)
	userService := service.NewUserService(db)

	authHandler := api.NewAuthHandler(authService, nil)
	recipeHandler := api.NewRecipeHandler(recipeService, authService, nil)
	commentHandler := api.NewCommentHandler(commentService, recipeService, userService, authService, nil, nil)
	userHandler := api.NewUserHandler(userService, recipeService, authService)

	return router.SetupRouter(authHandler, recipeHandler, commentHandler, userHandler, nil), db
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

var registerSeq int

// registerUser creates an account over HTTP and returns the token and
// user id.
func registerUser(t *testing.T, engine *gin.Engine, name string) (token, userID string) {
	t.Helper()
	registerSeq++

	w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":     name,
		"email":    fmt.Sprintf("%s-%d@example.com", name, registerSeq),
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token, resp.User.ID
}

// createRecipe publishes a minimal recipe over HTTP and returns its id.
func createRecipe(t *testing.T, engine *gin.Engine, token, title string) string {
	t.Helper()

	w := doJSON(t, engine, http.MethodPost, "/api/v1/recipes", token, gin.H{
		"title":        title,
		"description":  "A test recipe for " + title,
		"ingredients":  []string{"salt", "water"},
		"instructions": []string{"Mix.", "Serve."},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		ID string `json:"id"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.ID)
	return resp.ID
}
