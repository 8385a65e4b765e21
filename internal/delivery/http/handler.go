package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/priceboard/backend/internal/domain"
	"github.com/priceboard/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	searchService *usecase.SearchService
	suppliers     domain.SupplierRepository
}

// NewHandler creates a new HTTP handler
func NewHandler(searchService *usecase.SearchService, suppliers domain.SupplierRepository) *Handler {
	return &Handler{
		searchService: searchService,
		suppliers:     suppliers,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "priceboard-backend",
		"version": "1.0.0",
	})
}

// ListSuppliers returns every stored supplier
func (h *Handler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.suppliers.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suppliers": suppliers})
}

// CreateSupplier stores a new supplier with their pasted price list
func (h *Handler) CreateSupplier(c *gin.Context) {
	var input domain.SupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	supplier, err := h.suppliers.Create(c.Request.Context(), input)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, supplier)
}

// UpdateSupplier replaces a supplier's name and raw price list text
func (h *Handler) UpdateSupplier(c *gin.Context) {
	var input domain.SupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	supplier, err := h.suppliers.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, supplier)
}

// DeleteSupplier removes a supplier
func (h *Handler) DeleteSupplier(c *gin.Context) {
	if err := h.suppliers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SearchPriceLists runs the matching engine over every stored
// supplier's price list and returns the ranked results.
func (h *Handler) SearchPriceLists(c *gin.Context) {
	var request domain.SearchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mode, err := usecase.ParseSortMode(request.SortMode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	suppliers, err := h.suppliers.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	results := h.searchService.Search(request.Query, suppliers, mode)
	c.JSON(http.StatusOK, gin.H{
		"query":   request.Query,
		"results": results,
	})
}

// ExpandPriceList exposes the line expander: raw pasted text in,
// normalized offer lines out.
func (h *Handler) ExpandPriceList(c *gin.Context) {
	var request domain.ExpandRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lines := usecase.ExpandLines(request.RawText)
	c.JSON(http.StatusOK, gin.H{"lines": lines})
}

// ExtractLinePrice exposes the price extractor for a single offer line.
// A price of 0 means "no price detected" and is a valid response, not
// an error.
func (h *Handler) ExtractLinePrice(c *gin.Context) {
	var request domain.PriceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"line":  request.Line,
		"price": usecase.ExtractPrice(request.Line),
	})
}

// writeDomainError maps domain sentinel errors to HTTP status codes
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrSupplierNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, domain.ErrInvalidSortMode):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
