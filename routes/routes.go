package routes

import (
	"tent-on-rent-api/handlers"
	"tent-on-rent-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Session bootstrap (splash screen)
		public.POST("/session", handlers.CreateSession)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Session-token routes ───────────────────────────────────────
	authed := r.Group("/api")
	authed.Use(middleware.SessionRequired())
	{
		// Session state tree and navigation
		authed.GET("/session", handlers.GetSession)
		authed.POST("/session/start", handlers.StartSession)
		authed.POST("/session/navigate", handlers.NavigateScreen)
		authed.POST("/session/back", handlers.BackHome)

		// Simulated auth
		authed.POST("/auth/login", handlers.Login)
		authed.POST("/auth/logout", handlers.Logout)
		authed.GET("/profile", handlers.GetProfile)

		// Catalog browsing
		authed.GET("/vendors", handlers.ListVendors)
		authed.GET("/vendors/:id", handlers.GetVendor)
		authed.POST("/vendors/:id/view", handlers.ViewVendor)
		authed.GET("/categories", handlers.GetCategories)

		// Cart ledger
		authed.GET("/cart", handlers.GetCart)
		authed.POST("/cart/items", handlers.AddCartItem)
		authed.PUT("/cart/items/:index", handlers.UpdateCartItem)
		authed.DELETE("/cart/items/:index", handlers.RemoveCartItem)

		// Orders (always empty — no checkout in the demo)
		authed.GET("/orders", handlers.GetOrders)

		// Location selection and detection
		authed.GET("/locations", handlers.ListCities)
		authed.PUT("/location", handlers.SelectLocation)
		authed.POST("/location/detect", handlers.DetectLocation)
	}
}
