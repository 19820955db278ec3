package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cooklyapp/backend/internal/middleware"
	"github.com/cooklyapp/backend/internal/service"
	"github.com/cooklyapp/backend/internal/types"
)

type RecipeHandler struct {
	recipeService *service.RecipeService
	authService   *service.AuthService
	limiter       *middleware.RateLimiter
}

func NewRecipeHandler(recipeService *service.RecipeService, authService *service.AuthService, limiter *middleware.RateLimiter) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		authService:   authService,
		limiter:       limiter,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	optional := middleware.OptionalAuthMiddleware(h.authService)
	required := middleware.AuthMiddleware(h.authService)

	recipes := router.Group("/recipes")
	{
		recipes.GET("", optional, h.ListRecipes)
		recipes.GET("/bookmarked", required, h.BookmarkedRecipes)
		recipes.GET("/:id", optional, h.GetRecipe)
		recipes.GET("/:id/rate", optional, h.GetRating)

		create := []gin.HandlerFunc{required}
		if h.limiter != nil {
			create = append(create, h.limiter.RateLimitMiddleware())
		}
		recipes.POST("", append(create, h.CreateRecipe)...)

		recipes.DELETE("/:id", required, h.DeleteRecipe)
		recipes.POST("/:id/like", required, h.LikeRecipe)
		recipes.POST("/:id/bookmark", required, h.BookmarkRecipe)
		recipes.POST("/:id/rate", required, h.RateRecipe)
	}
}

// callerIDPtr returns the caller identity for annotation, nil when
// anonymous.
func callerIDPtr(c *gin.Context) *uuid.UUID {
	if id, ok := middleware.CallerID(c); ok {
		return &id
	}
	return nil
}

func recipeIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	views, err := h.recipeService.List(c.Request.Context(), c.Query("category"), c.Query("search"), callerIDPtr(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := recipeIDParam(c)
	if !ok {
		return
	}

	view, err := h.recipeService.Get(c.Request.Context(), id, callerIDPtr(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	callerID, _ := middleware.CallerID(c)
	recipe, err := h.recipeService.Create(c.Request.Context(), callerID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := recipeIDParam(c)
	if !ok {
		return
	}

	callerID, _ := middleware.CallerID(c)
	if err := h.recipeService.Delete(c.Request.Context(), id, callerID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted"})
}

func (h *RecipeHandler) LikeRecipe(c *gin.Context) {
	id, ok := recipeIDParam(c)
	if !ok {
		return
	}

	callerID, _ := middleware.CallerID(c)
	liked, count, err := h.recipeService.ToggleLike(c.Request.Context(), id, callerID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"liked":       liked,
		"likes_count": count,
	})
}

func (h *RecipeHandler) BookmarkRecipe(c *gin.Context) {
	id, ok := recipeIDParam(c)
	if !ok {
		return
	}

	callerID, _ := middleware.CallerID(c)
	bookmarked, err := h.recipeService.ToggleBookmark(c.Request.Context(), id, callerID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked})
}

func (h *RecipeHandler) GetRating(c *gin.Context) {
	id, ok := recipeIDParam(c)
	if !ok {
		return
	}

	summary, err := h.recipeService.GetRating(c.Request.Context(), id, callerIDPtr(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *RecipeHandler) RateRecipe(c *gin.Context) {
	id, ok := recipeIDParam(c)
	if !ok {
		return
	}

	var req types.RateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		return
	}

	callerID, _ := middleware.CallerID(c)
	summary, err := h.recipeService.Rate(c.Request.Context(), id, callerID, req.Value)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *RecipeHandler) BookmarkedRecipes(c *gin.Context) {
	callerID, _ := middleware.CallerID(c)
	views, err := h.recipeService.Bookmarked(c.Request.Context(), callerID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
