package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	appctx "github.com/hanjihoon31-beep/erphan-sub000/internal/core/context"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/records/cash"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/infrastructure/http/v1/dto"
)

// CashHandler serves the cash record endpoints.
type CashHandler struct {
	service  *cash.Service
	location *time.Location
}

// NewCashHandler creates a cash record handler.
func NewCashHandler(service *cash.Service, location *time.Location) *CashHandler {
	return &CashHandler{
		service:  service,
		location: location,
	}
}

// GetDay returns the store's cash record for one day. 404 until the first
// edit creates it.
// GET /api/v1/cash-records/day/:storeId/:date
func (h *CashHandler) GetDay(c *gin.Context) {
	storeID, err := pathID(c, "storeId")
	if err != nil {
		fail(c, err)
		return
	}
	date, err := pathDate(c, "date", h.location)
	if err != nil {
		fail(c, err)
		return
	}

	record, err := h.service.GetDay(c.Request.Context(), storeID, date)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromCashRecord(record))
}

// Upsert applies a closing-staff edit, creating the record on first write.
// PUT /api/v1/cash-records/day/:storeId/:date
func (h *CashHandler) Upsert(c *gin.Context) {
	storeID, err := pathID(c, "storeId")
	if err != nil {
		fail(c, err)
		return
	}
	date, err := pathDate(c, "date", h.location)
	if err != nil {
		fail(c, err)
		return
	}

	var req dto.UpsertCashRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	record, err := h.service.Upsert(c.Request.Context(), storeID, date, req.ToEditFields())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromCashRecord(record))
}

// MorningCheck records the next morning's recount of the carried-over till.
// PUT /api/v1/cash-records/:id/morning-check
func (h *CashHandler) MorningCheck(c *gin.Context) {
	recordID, err := pathID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	var req dto.MorningCheckRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	ctx := c.Request.Context()
	record, err := h.service.RecordMorningCheck(ctx, recordID, req.Counts, appctx.GetUserID(ctx))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromCashRecord(record))
}

// Complete closes the day's cash record.
// PUT /api/v1/cash-records/:id/complete
func (h *CashHandler) Complete(c *gin.Context) {
	recordID, err := pathID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.service.Complete(c.Request.Context(), recordID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
