package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"tent-on-rent-api/config"
	"tent-on-rent-api/fixture"
	"tent-on-rent-api/handlers"
	"tent-on-rent-api/location"
	"tent-on-rent-api/pkg/logging"
	"tent-on-rent-api/routes"
	"tent-on-rent-api/session"

	"github.com/gin-gonic/gin"
)

func main() {
	logging.Setup()

	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Load the catalog fixture — the only data the whole session runs on.
	// All candidate paths failing is fatal.
	loader := fixture.NewLoader(http.DefaultClient, config.FixtureCandidates())
	catalog, err := loader.Load(context.Background())
	if err != nil {
		slog.Error("Failed to load data. Please refresh the page.", "error", err)
		os.Exit(1)
	}

	resolver := &location.Resolver{
		Providers: []location.Provider{
			&location.BigDataCloud{Client: http.DefaultClient, BaseURL: config.BigDataCloudURL},
			&location.Nominatim{Client: http.DefaultClient, BaseURL: config.NominatimURL},
		},
		SupportedCities: catalog.AppConfig.SupportedCities,
		DefaultCity:     config.DefaultCity,
		Options:         location.DefaultGeolocateOptions,
		Timeout:         config.GeocodeTimeout,
	}

	handlers.Setup(catalog, session.NewStore(config.DefaultCity), resolver)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "TentOnRent Catalog API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "⛺ Welcome to the " + catalog.AppConfig.AppName + " Catalog API",
			"tagline": catalog.AppConfig.Tagline,
			"docs":    "/api/state-machine",
			"health":  "/health",
		})
	})

	// Register all routes
	routes.SetupRoutes(r)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	slog.Info("Server running", "addr", "http://localhost:"+port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
