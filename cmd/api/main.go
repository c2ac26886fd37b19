package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Pengu1Nus/recipe-api/config"
	"github.com/Pengu1Nus/recipe-api/internal/api"
	"github.com/Pengu1Nus/recipe-api/internal/database"
	"github.com/Pengu1Nus/recipe-api/internal/router"
	"github.com/Pengu1Nus/recipe-api/internal/server"
	"github.com/Pengu1Nus/recipe-api/internal/service"
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
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis backs token revocation; without it tokens are valid until
	// expiry, which is acceptable for local development.
	var tokenStore *service.TokenStore
	if cfg.RedisHost != "" || cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		tokenStore = service.NewTokenStore(redisClient)
	} else {
		log.Printf("Redis not configured, token revocation disabled")
	}

	// S3 backs image uploads; without it the upload endpoint reports
	// the storage as unavailable.
	var imageService service.IImageService
	if cfg.S3Bucket != "" {
		s3Config, err := config.NewS3Config(context.Background(), cfg)
		if err != nil {
			log.Fatalf("Failed to initialize S3: %v", err)
		}
		imageService = service.NewImageService(s3Config)
	} else {
		log.Printf("S3 not configured, image uploads disabled")
	}

	authService := service.NewAuthService(db, cfg.JWTSecret, tokenStore)
	recipeService := service.NewRecipeService(db)
	tagService := service.NewTagService(db)
	ingredientService := service.NewIngredientService(db)

	engine := router.SetupRouter(
		api.NewAuthHandler(authService),
		api.NewRecipeHandler(recipeService, imageService, authService),
		api.NewTagHandler(tagService, authService),
		api.NewIngredientHandler(ingredientService, authService),
	)

	srv := server.New(engine)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(cfg.ServerPort)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
