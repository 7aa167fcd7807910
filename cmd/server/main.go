// @title           PhotoProof Backend API
// @version         1.0.0
// @description     Photo-sharing backend connecting photographers, clients and albums. Photographers create albums and upload photos into bucket storage; clients are invited to albums, view photos, and select subsets of them for confirmation.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

package main

import (
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"photoproof-backend/docs"
	"photoproof-backend/internal/config"
	"photoproof-backend/internal/database"
	"photoproof-backend/internal/handlers"
	"photoproof-backend/internal/services"
	"photoproof-backend/internal/storage"
)

func main() {
	// Load .env first so config sees it; a missing file is fine in
	// containerized deploys where the environment is set directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		if baseURL, err := url.Parse(cfg.BaseURL); err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	// Run migrations before accepting traffic
	migrator, err := database.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(); err != nil {
		migrator.Close()
		log.Fatalf("Migration failed: %v", err)
	}
	migrator.Close()

	dbClient, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database client: %v", err)
	}
	defer dbClient.Close()

	storageClient, err := storage.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.StorageBucket)
	if err != nil {
		log.Fatalf("Failed to initialize storage client: %v", err)
	}

	// Workflows
	userService := services.NewUserService(dbClient, cfg.BcryptCost)
	invitationService := services.NewInvitationService(dbClient, cfg.InviteTokenSecret)
	selectionService := services.NewSelectionService(dbClient)
	photoService := services.NewPhotoService(dbClient, storageClient)

	// Handlers
	usersHandler := handlers.NewUsersHandler(userService)
	albumsHandler := handlers.NewAlbumsHandler(dbClient)
	invitationsHandler := handlers.NewInvitationsHandler(invitationService)
	selectionsHandler := handlers.NewSelectionsHandler(selectionService)
	photosHandler := handlers.NewPhotosHandler(photoService)

	// Setup router
	router := gin.Default()

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", handlers.HealthHandler)

	// Users
	router.POST("/sign_up", usersHandler.SignUp)
	router.POST("/login", usersHandler.Login)
	router.GET("/user", usersHandler.GetUser)

	// Albums
	router.POST("/album", albumsHandler.CreateAlbum)
	router.GET("/albums/created", albumsHandler.GetAlbumsCreated)
	router.GET("/albums/invited", invitationsHandler.GetAlbumsInvited)

	// Invitations
	router.POST("/invitation", invitationsHandler.CreateInvitation)
	router.GET("/invitations", invitationsHandler.GetInvitations)

	// Photos
	router.POST("/upload", photosHandler.Upload)
	router.GET("/photo", photosHandler.GetPhoto)
	router.GET("/photos", photosHandler.GetPhotos)

	// Selections
	router.POST("/selections", selectionsHandler.SelectPhotos)
	router.GET("/selections", selectionsHandler.GetSelections)
	router.GET("/selected_photo", selectionsHandler.GetSelectedPhotos)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
