package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/partscout/backend/internal/domain"
	"github.com/partscout/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	searchService *usecase.SearchService
}

// NewHandler creates a new HTTP handler
func NewHandler(searchService *usecase.SearchService) *Handler {
	return &Handler{searchService: searchService}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "partscout-backend",
		"version": "1.0.0",
	})
}

// Search runs the aggregation pipeline for a part request and returns the
// normalized query, the full listing table, and the optimal pick.
func (h *Handler) Search(c *gin.Context) {
	result, ok := h.runSearch(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, result)
}

// ExportCSV runs the same aggregation and streams the merged listing table
// as a CSV download.
func (h *Handler) ExportCSV(c *gin.Context) {
	result, ok := h.runSearch(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="auto_parts_results.csv"`)
	c.Status(http.StatusOK)

	if err := usecase.WriteCSV(c.Writer, result.Listings); err != nil {
		// Headers are already out; nothing useful left to send.
		c.Abort()
	}
}

// runSearch binds the request, runs the search service, and writes error
// responses. Returns ok=false when a response has already been written.
func (h *Handler) runSearch(c *gin.Context) (*domain.SearchResult, bool) {
	if h.searchService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "search service not configured"})
		return nil, false
	}

	var req domain.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return nil, false
	}

	result, err := h.searchService.Search(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return nil, false
	}

	return result, true
}
