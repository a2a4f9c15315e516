package main

import (
	"log"
	"net/http"
	"os"

	"restaurant-cms/config"
	"restaurant-cms/handlers"
	"restaurant-cms/middleware"
	"restaurant-cms/models"
	"restaurant-cms/repositories"
	"restaurant-cms/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	contentRepo := repositories.NewContentRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	reviewService := services.NewReviewService(reviewRepo, userRepo)
	contactService := services.NewContactService(contactRepo)
	userService := services.NewUserService(userRepo)
	contentService := services.NewContentService(contentRepo)

	// Seed the first admin account on an empty deployment
	if err := authService.EnsureBootstrapAdmin(config.GetBootstrapAdmin()); err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	contactHandler := handlers.NewContactHandler(contactService)
	userHandler := handlers.NewUserHandler(userService)
	contentHandler := handlers.NewContentHandler(contentService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Public routes
		v1.POST("/auth/login", authHandler.Login)
		v1.GET("/reviews", middleware.OptionalAuth(), reviewHandler.GetReviews)
		v1.POST("/reviews", reviewHandler.SubmitReview)
		v1.POST("/contact", contactHandler.SubmitContact)
		v1.GET("/cms/locations", contentHandler.GetPublicLocations)

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// Review moderation
			protected.GET("/admin/reviews/pending", reviewHandler.GetPendingReviews)
			protected.PUT("/reviews/:id/approve",
				middleware.RequireRole(models.RoleAdmin, models.RoleEditor),
				reviewHandler.ApproveReview)

			// Contact inbox
			protected.GET("/admin/contact", contactHandler.ListContacts)
			protected.PUT("/admin/contact/:id/read", contactHandler.MarkRead)

			// User directory (admin only)
			users := protected.Group("/users")
			users.Use(middleware.RequireRole(models.RoleAdmin))
			{
				users.GET("", userHandler.ListUsers)
				users.POST("", userHandler.CreateUser)
				users.DELETE("/:id", userHandler.DeleteUser)
			}

			// Content management
			cms := protected.Group("/admin/cms")
			{
				cms.GET("/content", contentHandler.GetContent)
				cms.PUT("/content", contentHandler.SaveContent)
				cms.PUT("/locations/:id", contentHandler.UpdateLocation)
				cms.POST("/locations/:id/features", contentHandler.InsertFeature)
				cms.PUT("/locations/:id/features/:index", contentHandler.UpdateFeature)
				cms.DELETE("/locations/:id/features/:index", contentHandler.RemoveFeature)
				cms.PUT("/settings", contentHandler.UpdateSettings)
				cms.GET("/export", contentHandler.ExportSnapshot)
				cms.POST("/import", contentHandler.ImportSnapshot)
				cms.POST("/reset", contentHandler.ResetContent)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
