// @title           Textile Try-On Backend API
// @version         1.0.0
// @description     Backend API for a traditional garment store with AI-powered virtual try-on. Handles the garment catalog, user sessions and photos, favorites, and try-on generation via the Gemini image API.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"log"
	"net/http"
	"net/url"
	"time"

	"textile-tryon-backend/docs"
	"textile-tryon-backend/internal/config"
	"textile-tryon-backend/internal/database"
	"textile-tryon-backend/internal/gemini"
	"textile-tryon-backend/internal/handlers"
	"textile-tryon-backend/internal/middleware"
	"textile-tryon-backend/internal/storage"
	"textile-tryon-backend/internal/tryon"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	// Run migrations
	migrator, err := database.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(); err != nil {
		migrator.Close()
		log.Fatalf("Migration failed: %v", err)
	}
	migrator.Close()
	log.Println("Migrations completed successfully")

	// Database client
	dbClient, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbClient.Close()

	if cfg.SeedSampleData {
		if err := dbClient.SeedSampleGarments(); err != nil {
			log.Printf("Warning: Failed to seed sample garments: %v", err)
		}
	}

	// Storage backend
	storageService, err := storage.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Gemini image generation client
	geminiClient := gemini.NewClient(cfg.GeminiAPIBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel,
		time.Duration(cfg.GeminiTimeoutSeconds)*time.Second)

	// Try-on workflow
	fetcher := tryon.NewImageFetcher(time.Duration(cfg.FetchTimeoutSeconds) * time.Second)
	tryonService := tryon.NewService(dbClient, geminiClient, fetcher, storageService, cfg.TryonPlaceholderURL)

	// Handlers
	garmentsHandler := handlers.NewGarmentsHandler(dbClient)
	adminGarmentsHandler := handlers.NewAdminGarmentsHandler(dbClient, storageService, garmentsHandler)
	adminSessionsHandler := handlers.NewAdminSessionsHandler(dbClient)
	favoritesHandler := handlers.NewFavoritesHandler(dbClient, garmentsHandler)
	usersHandler := handlers.NewUsersHandler(dbClient, storageService)
	tryonHandler := handlers.NewTryonHandler(tryonService, dbClient, storageService)

	// Setup router
	router := gin.Default()

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Locally stored uploads are served straight from disk
	if cfg.StorageBackend == config.StorageBackendLocal {
		router.Static("/uploads", cfg.LocalStoragePath)
	}

	api := router.Group("/api")

	// Public routes
	api.GET("/health", handlers.HealthHandler)
	api.POST("/users/session", usersHandler.CreateSession)

	api.GET("/garments", garmentsHandler.ListGarments)
	api.GET("/garments/trending", garmentsHandler.ListTrending)
	api.GET("/garments/name/:name_id", garmentsHandler.GetGarmentByNameID)
	api.GET("/garments/meta/categories", garmentsHandler.ListCategories)
	api.GET("/garments/meta/subcategories", garmentsHandler.ListSubcategories)
	api.GET("/garments/meta/colors", garmentsHandler.ListColors)
	api.GET("/garments/meta/types", garmentsHandler.ListGarmentTypes)
	api.GET("/garments/meta/price-range", garmentsHandler.GetPriceRange)
	api.GET("/garments/:garment_id", garmentsHandler.GetGarment)
	api.GET("/garments/:garment_id/images", garmentsHandler.ListGarmentImages)

	// Session routes
	session := api.Group("")
	session.Use(middleware.SessionMiddleware(dbClient))

	session.GET("/users/profile", usersHandler.GetProfile)
	session.PUT("/users/profile", usersHandler.UpdateProfile)
	session.GET("/users/stats", usersHandler.GetStats)
	session.POST("/users/photos", usersHandler.UploadPhoto)
	session.GET("/users/photos", usersHandler.ListPhotos)
	session.PUT("/users/photos/:photo_id", usersHandler.UpdatePhoto)
	session.DELETE("/users/photos/:photo_id", usersHandler.DeletePhoto)

	session.GET("/favorites", favoritesHandler.ListFavorites)
	session.POST("/favorites/:garment_id", favoritesHandler.AddFavorite)
	session.DELETE("/favorites/:garment_id", favoritesHandler.RemoveFavorite)
	session.POST("/favorites/:garment_id/toggle", favoritesHandler.ToggleFavorite)
	session.GET("/favorites/:garment_id/status", favoritesHandler.GetStatus)

	session.POST("/tryon", tryonHandler.Generate)
	session.GET("/tryon/results", tryonHandler.ListResults)
	session.DELETE("/tryon/results/:result_id", tryonHandler.DeleteResult)

	// Admin routes
	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware(cfg))

	admin.POST("/garments", adminGarmentsHandler.CreateGarment)
	admin.PUT("/garments/:garment_id", adminGarmentsHandler.UpdateGarment)
	admin.DELETE("/garments/:garment_id", adminGarmentsHandler.DeleteGarment)
	admin.POST("/garments/:garment_id/images", adminGarmentsHandler.UploadImage)
	admin.DELETE("/garments/:garment_id/images/:image_id", adminGarmentsHandler.DeleteImage)
	admin.POST("/sessions/cleanup", adminSessionsHandler.CleanupSessions)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
