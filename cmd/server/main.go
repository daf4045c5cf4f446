package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mkobayashi/todo-web-api/internal/cache"
	"github.com/mkobayashi/todo-web-api/internal/config"
	"github.com/mkobayashi/todo-web-api/internal/database"
	"github.com/mkobayashi/todo-web-api/internal/handlers"
	"github.com/mkobayashi/todo-web-api/internal/middleware"
	"github.com/mkobayashi/todo-web-api/internal/repository"
	"github.com/mkobayashi/todo-web-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations and seed reference data
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(db); err != nil {
		log.Fatalf("Failed to add indexes: %v", err)
	}
	if err := database.SeedPriorities(db); err != nil {
		log.Fatalf("Failed to seed priorities: %v", err)
	}

	// Wire repositories, services and handlers
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)

	tokenService := services.NewTokenService(cfg)
	authService := services.NewAuthService(userRepo, tokenService)
	itemService := services.NewItemService(itemRepo)
	priorityService := services.NewPriorityService(itemRepo, cache.NewPriorityCache(cfg.PriorityCacheTTL))

	authHandler := handlers.NewAuthHandler(authService)
	todoHandler := handlers.NewTodoHandler(itemService, priorityService)
	subItemHandler := handlers.NewSubItemHandler(itemService)

	// Initialize Gin router
	r := gin.Default()

	// Permissive CORS on the whole API
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "ToDo API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.RequireAuth(tokenService), authHandler.GetCurrentUser)
		}

		// Todo routes (protected)
		todo := api.Group("/todo")
		todo.Use(middleware.RequireAuth(tokenService))
		{
			todo.GET("", todoHandler.ListItems)
			todo.POST("", todoHandler.CreateItem)
			todo.GET("/GetPriority", todoHandler.GetPriority)
			todo.GET("/:itemId", todoHandler.GetItem)
			todo.PUT("/:itemId", todoHandler.UpdateItem)
			todo.DELETE("/:itemId", middleware.RequireAdmin(), todoHandler.DeleteItem)
		}

		// Sub-item routes (protected)
		subitem := api.Group("/subitem")
		subitem.Use(middleware.RequireAuth(tokenService))
		{
			subitem.POST("", subItemHandler.CreateSubItem)
			subitem.DELETE("/:id", subItemHandler.DeleteSubItem)
		}
	}

	// Single-page client: unknown non-API routes fall back to index.html
	r.NoRoute(spaFallback(cfg.StaticDir))

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// spaFallback serves files from the static directory and rewrites unknown
// non-API paths to the client's index.html.
func spaFallback(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		requested := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}

		c.File(filepath.Join(staticDir, "index.html"))
	}
}
