package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cooklyapp/backend/internal/middleware"
	"github.com/cooklyapp/backend/internal/service"
	"github.com/cooklyapp/backend/internal/types"
)

type UserHandler struct {
	userService   *service.UserService
	recipeService *service.RecipeService
	authService   *service.AuthService
}

func NewUserHandler(userService *service.UserService, recipeService *service.RecipeService, authService *service.AuthService) *UserHandler {
	return &UserHandler{
		userService:   userService,
		recipeService: recipeService,
		authService:   authService,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	required := middleware.AuthMiddleware(h.authService)
	optional := middleware.OptionalAuthMiddleware(h.authService)

	users := router.Group("/users")
	{
		// "me" routes are static and must be registered before the
		// dynamic :id routes.
		users.GET("/me", required, h.Me)
		users.PUT("/me", required, h.UpdateMe)
		users.PUT("/me/password", required, h.ChangePassword)
		users.GET("/me/recipes", required, h.MyRecipes)
		users.DELETE("/me", required, h.DeleteAccount)

		users.GET("/:id", h.Profile)
		users.GET("/:id/recipes", optional, h.UserRecipes)
		users.POST("/:id/follow", required, h.Follow)
		users.DELETE("/:id/follow", required, h.Unfollow)
	}
}

func userIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *UserHandler) Me(c *gin.Context) {
	callerID, _ := middleware.CallerID(c)
	user, err := h.userService.Get(c.Request.Context(), callerID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	callerID, _ := middleware.CallerID(c)
	user, err := h.userService.UpdateProfile(c.Request.Context(), callerID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req types.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	callerID, _ := middleware.CallerID(c)
	if err := h.authService.ChangePassword(c.Request.Context(), callerID, req.CurrentPassword, req.NewPassword); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

func (h *UserHandler) MyRecipes(c *gin.Context) {
	callerID, _ := middleware.CallerID(c)
	views, err := h.recipeService.ByAuthor(c.Request.Context(), callerID, &callerID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *UserHandler) DeleteAccount(c *gin.Context) {
	callerID, _ := middleware.CallerID(c)
	if err := h.userService.DeleteAccount(c.Request.Context(), callerID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *UserHandler) Profile(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	profile, err := h.userService.PublicProfile(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) UserRecipes(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	views, err := h.recipeService.ByAuthor(c.Request.Context(), id, callerIDPtr(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *UserHandler) Follow(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	callerID, _ := middleware.CallerID(c)
	if err := h.userService.Follow(c.Request.Context(), callerID, id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": true})
}

func (h *UserHandler) Unfollow(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	callerID, _ := middleware.CallerID(c)
	if err := h.userService.Unfollow(c.Request.Context(), callerID, id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": false})
}
