package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/cooklyapp/backend/internal/api"
)

// SetupRouter configures the application routes. The image handler is
// optional; it is nil when no S3 configuration is available.
func SetupRouter(
	authHandler *api.AuthHandler,
	recipeHandler *api.RecipeHandler,
	commentHandler *api.CommentHandler,
	userHandler *api.UserHandler,
	imageHandler *api.ImageHandler,
) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	authHandler.RegisterRoutes(v1)
	recipeHandler.RegisterRoutes(v1)
	commentHandler.RegisterRoutes(v1)
	userHandler.RegisterRoutes(v1)
	if imageHandler != nil {
		imageHandler.RegisterRoutes(v1)
	}

	return router
}
