package main

import (
	"context"
	"log"

	"github.com/cooklyapp/backend/config"
	"github.com/cooklyapp/backend/internal/api"
	"github.com/cooklyapp/backend/internal/database"
	"github.com/cooklyapp/backend/internal/middleware"
	"github.com/cooklyapp/backend/internal/router"
	"github.com/cooklyapp/backend/internal/server"
	"github.com/cooklyapp/backend/internal/service"
)

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

	// Rate limiting is skipped when Redis is unreachable so a bare
	// local setup still serves requests.
	var recipeLimiter, commentLimiter *middleware.RateLimiter
	if redisClient, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("Redis unavailable, rate limiting disabled: %v", err)
	} else {
		recipeLimiter = middleware.NewRecipeCreationRateLimiter(redisClient)
		commentLimiter = middleware.NewCommentRateLimiter(redisClient)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	recipeService := service.NewRecipeService(db)
	commentService := service.NewCommentService(db)
	userService := service.NewUserService(db)
	emailService := service.NewEmailService()

	authHandler := api.NewAuthHandler(authService, emailService)
	recipeHandler := api.NewRecipeHandler(recipeService, authService, recipeLimiter)
	commentHandler := api.NewCommentHandler(commentService, recipeService, userService, authService, emailService, commentLimiter)
	userHandler := api.NewUserHandler(userService, recipeService, authService)

	var imageHandler *api.ImageHandler
	if s3Cfg, err := config.NewS3Config(context.Background()); err != nil {
		log.Printf("S3 unavailable, image uploads disabled: %v", err)
	} else {
		imageHandler = api.NewImageHandler(service.NewImageService(s3Cfg), authService)
	}

	engine := router.SetupRouter(authHandler, recipeHandler, commentHandler, userHandler, imageHandler)

	srv := server.NewServer(engine, db)
	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := srv.Start(cfg.ServerPort); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
