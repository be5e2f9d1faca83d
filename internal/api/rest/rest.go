package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/artfolio/artfolio-api/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, verifier middleware.TokenVerifier, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes; the API key gate only applies when keys are configured
	v1 := router.Group("/api/v1", middleware.APIKeyAuth(authCfg))
	{
		// Item endpoints (public read access)
		v1.GET("/items/:contract/:token", handler.GetItem)

		// Vote submission (requires wallet authentication)
		v1.POST("/items/:contract/:token/vote", middleware.WalletAuth(verifier), handler.SubmitVote)

		// Curated and aggregated listings (public read access)
		v1.GET("/featured", handler.GetFeatured)
		v1.GET("/leaderboard", handler.GetLeaderboard)

		// Profile endpoint (public read access)
		v1.GET("/profiles/:address", handler.GetProfile)

		// Collection listing (public read access)
		v1.GET("/collections/:slug", handler.GetCollection)

		// User registration (requires wallet authentication)
		v1.POST("/users", middleware.WalletAuth(verifier), handler.RegisterUser)
	}
}
