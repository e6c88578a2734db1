package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/apperror"
	appctx "github.com/hanjihoon31-beep/erphan-sub000/internal/core/context"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/types"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/generator"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/records/inventory"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/infrastructure/http/v1/dto"
)

// RecordHandler serves the inventory record lifecycle endpoints.
type RecordHandler struct {
	service  *inventory.Service
	runner   *generator.Runner
	location *time.Location
}

// NewRecordHandler creates an inventory record handler. location is the
// business timezone dates in paths and bodies are interpreted in.
func NewRecordHandler(service *inventory.Service, runner *generator.Runner, location *time.Location) *RecordHandler {
	return &RecordHandler{
		service:  service,
		runner:   runner,
		location: location,
	}
}

// Generate triggers on-demand generation for a date, optionally scoped to one
// store.
// POST /api/v1/inventory-records/generate
func (h *RecordHandler) Generate(c *gin.Context) {
	var req dto.GenerateRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	date, err := types.ParseDay(req.Date, h.location)
	if err != nil {
		fail(c, apperror.NewValidation("invalid date, expected YYYY-MM-DD").
			WithDetail("value", req.Date))
		return
	}

	var report generator.Report
	if req.StoreID != "" {
		storeID, idErr := bodyID("storeId", req.StoreID)
		if idErr != nil {
			fail(c, idErr)
			return
		}
		report, err = h.runner.RunStore(c.Request.Context(), storeID, date)
	} else {
		report, err = h.runner.Run(c.Request.Context(), date)
	}
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromGenerationReport(report))
}

// GetDay returns one store's records for one day in template order.
// GET /api/v1/inventory-records/day/:storeId/:date
func (h *RecordHandler) GetDay(c *gin.Context) {
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

	records, err := h.service.GetDay(c.Request.Context(), storeID, date)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromInventoryRecords(records))
}

// ListPending returns the cross-store approval queue.
// GET /api/v1/inventory-records/pending
func (h *RecordHandler) ListPending(c *gin.Context) {
	records, err := h.service.ListPendingApproval(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromInventoryRecords(records))
}

// Edit applies a partial staff edit.
// PUT /api/v1/inventory-records/:id
func (h *RecordHandler) Edit(c *gin.Context) {
	recordID, err := pathID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	var req dto.EditRecordRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	record, err := h.service.Edit(c.Request.Context(), recordID, req.ToEditFields())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromInventoryRecord(record))
}

// Submit moves one record to pending approval.
// PUT /api/v1/inventory-records/:id/submit
func (h *RecordHandler) Submit(c *gin.Context) {
	recordID, err := pathID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.service.Submit(ctx, recordID, appctx.GetUserID(ctx)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Approve finalizes one record.
// PUT /api/v1/inventory-records/:id/approve
func (h *RecordHandler) Approve(c *gin.Context) {
	recordID, err := pathID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.service.Approve(ctx, recordID, appctx.GetUserID(ctx)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Reject finalizes one record as rejected; the reason is mandatory.
// PUT /api/v1/inventory-records/:id/reject
func (h *RecordHandler) Reject(c *gin.Context) {
	recordID, err := pathID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	var req dto.RejectRecordRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.service.Reject(ctx, recordID, appctx.GetUserID(ctx), req.RejectionReason); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SubmitAll submits every editable record of the store/day as one batch.
// POST /api/v1/inventory-records/submit-all/:storeId/:date
func (h *RecordHandler) SubmitAll(c *gin.Context) {
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

	ctx := c.Request.Context()
	count, err := h.service.SubmitAll(ctx, storeID, date, appctx.GetUserID(ctx))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BatchResponse{Success: true, Count: count})
}

// ApproveAll approves every pending-approval record of the store/day.
// POST /api/v1/inventory-records/approve-all/:storeId/:date
func (h *RecordHandler) ApproveAll(c *gin.Context) {
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

	ctx := c.Request.Context()
	count, err := h.service.ApproveAll(ctx, storeID, date, appctx.GetUserID(ctx))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BatchResponse{Success: true, Count: count})
}
