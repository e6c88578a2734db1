package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/id"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/templates"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/infrastructure/http/v1/dto"
)

// TemplateHandler serves the template registry endpoints.
type TemplateHandler struct {
	service *templates.Service
}

// NewTemplateHandler creates a template handler.
func NewTemplateHandler(service *templates.Service) *TemplateHandler {
	return &TemplateHandler{service: service}
}

// List returns a store's active template entries in display order.
// GET /api/v1/templates/:storeId
func (h *TemplateHandler) List(c *gin.Context) {
	storeID, err := pathID(c, "storeId")
	if err != nil {
		fail(c, err)
		return
	}

	entries, err := h.service.ListActive(c.Request.Context(), storeID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromTemplateEntries(entries))
}

// Add registers one product on a store's template.
// POST /api/v1/templates
func (h *TemplateHandler) Add(c *gin.Context) {
	var req dto.AddTemplateEntryRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	storeID, err := bodyID("storeId", req.StoreID)
	if err != nil {
		fail(c, err)
		return
	}
	productID, err := bodyID("productId", req.ProductID)
	if err != nil {
		fail(c, err)
		return
	}

	entry, err := h.service.Add(c.Request.Context(), storeID, productID, req.DisplayOrder)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromTemplateEntry(entry))
}

// BulkAdd registers many products at once; already-registered products are
// skipped.
// POST /api/v1/templates/bulk
func (h *TemplateHandler) BulkAdd(c *gin.Context) {
	var req dto.BulkAddTemplateRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	storeID, err := bodyID("storeId", req.StoreID)
	if err != nil {
		fail(c, err)
		return
	}
	productIDs := make([]id.ID, len(req.ProductIDs))
	for i, raw := range req.ProductIDs {
		productID, err := bodyID("productIds", raw)
		if err != nil {
			fail(c, err)
			return
		}
		productIDs[i] = productID
	}

	created, err := h.service.BulkAdd(c.Request.Context(), storeID, productIDs)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.BulkAddTemplateResponse{
		Requested: len(req.ProductIDs),
		Created:   created,
	})
}

// Deactivate soft-disables a template entry.
// DELETE /api/v1/templates/:id
func (h *TemplateHandler) Deactivate(c *gin.Context) {
	entryID, err := pathID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), entryID); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
