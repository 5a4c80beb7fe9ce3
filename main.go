package main

import (
	"log"
	"os"
	"time"

	"github.com/AlvinDakz/budgetease-api/config"
	"github.com/AlvinDakz/budgetease-api/handlers"
	"github.com/AlvinDakz/budgetease-api/middleware"
	"github.com/AlvinDakz/budgetease-api/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := config.InitDB()
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	log.Println("✅ Database connected successfully")

	if err := config.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	wsHandler := handlers.NewWSHandler()

	router := gin.Default()

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}

	corsConfig := cors.Config{
		AllowOrigins:     []string{frontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	router.Use(middleware.RequestID())

	router.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("📨 %s %s - %d (%v) [%s]",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(),
			time.Since(start), middleware.GetRequestID(c))
	})

	router.Use(middleware.RateLimiter())

	v1 := router.Group("/api/v1")
	{
		v1.GET("/ws/budgets/:budget_id", wsHandler.HandleWS)

		routes.SetupUserRoutes(v1, db)
		routes.SetupTransactionRoutes(v1, db)
		routes.SetupBudgetRoutes(v1, db, wsHandler)
		routes.SetupAnalyticsRoutes(v1, db)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": "2.0.0",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
