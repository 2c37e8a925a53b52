package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/culinate/recipe-engine/internal/service"
)

// SearchHandler exposes the recipe search engine over HTTP.
type SearchHandler struct {
	search *service.SearchService
	logger *zap.Logger
}

// NewSearchHandler creates the handler.
func NewSearchHandler(search *service.SearchService, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{search: search, logger: logger}
}

// RegisterRoutes mounts the search endpoints.
func (h *SearchHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/search", h.Search)
	router.GET("/recipes/:id", h.GetRecipe)
}

type searchRequestBody struct {
	Query               string                   `json:"query" binding:"required"`
	SessionID           string                   `json:"session_id"`
	Filters             *service.FilterOverrides `json:"filters"`
	ExcludeIDs          []int64                  `json:"exclude_ids"`
	Limit               int                      `json:"limit"`
	IncludeExplanations bool                     `json:"include_explanations"`
	UserPantry          []string                 `json:"user_pantry"`
}

// Search runs one query through the engine.
func (h *SearchHandler) Search(c *gin.Context) {
	var body searchRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	result, err := h.search.Search(c.Request.Context(), service.SearchRequest{
		Query:               body.Query,
		SessionID:           body.SessionID,
		Filters:             body.Filters,
		ExcludeIDs:          body.ExcludeIDs,
		Limit:               body.Limit,
		IncludeExplanations: body.IncludeExplanations,
		UserPantry:          body.UserPantry,
	})
	if err != nil {
		// Only the initial retrieval attempt surfaces here; relaxed
		// retries are handled inside the engine.
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "recipe store unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"recipes":         result.Recipes,
		"count":           len(result.Recipes),
		"filters_applied": result.FiltersApplied,
		"search_metadata": result.Metadata,
		"session_id":      result.SessionID,
	})
}

// GetRecipe fetches a single recipe by id.
func (h *SearchHandler) GetRecipe(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid recipe id"})
		return
	}

	recipe, err := h.search.GetRecipe(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "recipe not found"})
			return
		}
		h.logger.Error("failed to fetch recipe", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to fetch recipe"})
		return
	}

	c.JSON(http.StatusOK, recipe)
}
