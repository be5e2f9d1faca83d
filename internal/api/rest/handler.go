package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artfolio/artfolio-api/internal/api/middleware"
	"github.com/artfolio/artfolio-api/internal/api/shared/dto"
	"github.com/artfolio/artfolio-api/internal/api/shared/executor"
	"github.com/artfolio/artfolio-api/internal/domain"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetItem retrieves one marketplace item with its net like count
	// GET /api/v1/items/:contract/:token
	GetItem(c *gin.Context)

	// SubmitVote records a like or unlike for an item (wallet auth required)
	// POST /api/v1/items/:contract/:token/vote
	SubmitVote(c *gin.Context)

	// GetFeatured retrieves the curated featured items
	// GET /api/v1/featured
	GetFeatured(c *gin.Context)

	// GetLeaderboard retrieves the top creators by aggregate likes
	// GET /api/v1/leaderboard
	GetLeaderboard(c *gin.Context)

	// GetProfile retrieves the full profile view for a wallet address
	// GET /api/v1/profiles/:address
	GetProfile(c *gin.Context)

	// GetCollection retrieves an upstream collection listing
	// GET /api/v1/collections/:slug?order_by=<field>&order_direction=<asc|desc>
	GetCollection(c *gin.Context)

	// RegisterUser creates or refreshes a wallet (wallet auth required)
	// POST /api/v1/users
	RegisterUser(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{executor: exec}
}

// itemParams extracts and validates the contract/token route parameters
func itemParams(c *gin.Context) (string, string, bool) {
	contract := c.Param("contract")
	token := c.Param("token")

	if !domain.ValidAddress(contract) {
		respondBadRequest(c, "Invalid contract address")
		return "", "", false
	}
	if token == "" {
		respondBadRequest(c, "Token identifier is required")
		return "", "", false
	}

	return domain.NormalizeAddress(contract), token, true
}

// GetItem retrieves one marketplace item with its net like count
func (h *handler) GetItem(c *gin.Context) {
	contract, token, ok := itemParams(c)
	if !ok {
		return
	}

	item, err := h.executor.GetItem(c.Request.Context(), contract, token)
	if err != nil {
		respondError(c, err, "Failed to get item")
		return
	}

	respondData(c, item)
}

// SubmitVote records a like or unlike for an item. Requires wallet
// authentication; duplicate consecutive votes still return 200.
func (h *handler) SubmitVote(c *gin.Context) {
	contract, token, ok := itemParams(c)
	if !ok {
		return
	}

	wallet, ok := middleware.WalletAddress(c)
	if !ok {
		respondError(c, fmt.Errorf("no wallet address in context"), "Failed to record vote")
		return
	}

	var req dto.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	response, err := h.executor.SubmitVote(c.Request.Context(), wallet, contract, token, req)
	if err != nil {
		respondError(c, err, "Failed to record vote")
		return
	}

	respondData(c, response)
}

// GetFeatured retrieves the curated featured items
func (h *handler) GetFeatured(c *gin.Context) {
	items, err := h.executor.GetFeatured(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get featured items")
		return
	}

	respondData(c, items)
}

// GetLeaderboard retrieves the top creators by aggregate likes
func (h *handler) GetLeaderboard(c *gin.Context) {
	entries, err := h.executor.GetLeaderboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get leaderboard")
		return
	}

	respondData(c, entries)
}

// GetProfile retrieves the full profile view for a wallet address
func (h *handler) GetProfile(c *gin.Context) {
	address := c.Param("address")
	if !domain.ValidAddress(address) {
		respondBadRequest(c, "Invalid wallet address")
		return
	}

	profile, err := h.executor.GetProfile(c.Request.Context(), domain.NormalizeAddress(address))
	if err != nil {
		respondError(c, err, "Failed to get profile")
		return
	}

	if profile == nil {
		respondNotFound(c, "Profile not found")
		return
	}

	respondData(c, profile)
}

// GetCollection retrieves an upstream collection listing
func (h *handler) GetCollection(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		respondBadRequest(c, "Collection slug is required")
		return
	}

	query, err := ParseCollectionQuery(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	assets, err := h.executor.GetCollection(c.Request.Context(), slug, query.OrderBy, query.OrderDirection)
	if err != nil {
		respondError(c, err, "Failed to get collection")
		return
	}

	respondData(c, assets)
}

// RegisterUser creates or refreshes the authenticated wallet
func (h *handler) RegisterUser(c *gin.Context) {
	wallet, ok := middleware.WalletAddress(c)
	if !ok {
		respondError(c, fmt.Errorf("no wallet address in context"), "Failed to register user")
		return
	}

	user, err := h.executor.RegisterUser(c.Request.Context(), wallet)
	if err != nil {
		respondError(c, err, "Failed to register user")
		return
	}

	respondData(c, user)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "artfolio-api",
	})
}
