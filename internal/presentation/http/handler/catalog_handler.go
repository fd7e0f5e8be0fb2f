package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/narmadatraders/billing-api/internal/application/service"
	"github.com/narmadatraders/billing-api/internal/domain/entity"
	"github.com/narmadatraders/billing-api/internal/presentation/http/dto/response"
	"github.com/narmadatraders/billing-api/pkg/pagination"
)

// CatalogHandler handles catalog HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// List handles paginated catalog listing
// @Summary List Catalog
// @Description Get the bilingual item catalog in natural order
// @Tags catalog
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} response.APIResponse
// @Router /catalog [get]
func (h *CatalogHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	params.Validate()

	entries := h.catalogService.Entries()
	total := int64(len(entries))

	start := params.Offset()
	if start > len(entries) {
		start = len(entries)
	}
	end := start + params.PerPage
	if end > len(entries) {
		end = len(entries)
	}

	page := make([]entity.CatalogItem, end-start)
	copy(page, entries[start:end])

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	response.SuccessWithPagination(c, 200, "Catalog retrieved successfully", pagination.NewPaginatedResult(page, pag))
}

// Suggest handles autocomplete lookups
// @Summary Suggest Items
// @Description Get up to 8 catalog entries matching a partial item name
// @Tags catalog
// @Produce json
// @Param q query string true "Partial item name"
// @Success 200 {object} response.APIResponse
// @Router /catalog/suggest [get]
func (h *CatalogHandler) Suggest(c *gin.Context) {
	query := c.Query("q")
	suggestions := h.catalogService.Suggest(query)
	response.OK(c, "Suggestions retrieved successfully", suggestions)
}
