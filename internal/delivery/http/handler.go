package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projectcart/backend/internal/domain"
	"github.com/projectcart/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	searchService    *usecase.ProductSearchService
	checklistService *usecase.ChecklistService
}

// NewHandler creates a new HTTP handler
func NewHandler(searchService *usecase.ProductSearchService, checklistService *usecase.ChecklistService) *Handler {
	return &Handler{
		searchService:    searchService,
		checklistService: checklistService,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "projectcart-backend",
		"version": "1.0.0",
	})
}

// SearchProducts handles product search requests: finds offers for every
// checklist item and recommends single-retailer bundles
func (h *Handler) SearchProducts(c *gin.Context) {
	if h.searchService == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "Product search not configured",
		})
		return
	}

	var request domain.SearchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Items array is required",
		})
		return
	}

	response, err := h.searchService.SearchProducts(c.Request.Context(), &request)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Items array is required",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to search for products",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GenerateChecklist handles checklist generation requests: turns a freeform
// project description into a structured shopping checklist
func (h *Handler) GenerateChecklist(c *gin.Context) {
	if h.checklistService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Checklist generation not configured",
		})
		return
	}

	var request domain.ChecklistRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Project query is required",
		})
		return
	}

	checklist, err := h.checklistService.GenerateChecklist(c.Request.Context(), request.ProjectQuery)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Project query is required",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate checklist",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, domain.ChecklistResponse{
		Success:      true,
		Checklist:    checklist,
		ProjectQuery: request.ProjectQuery,
	})
}
