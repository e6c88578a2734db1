package dto

import (
	"time"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/types"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/generator"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/records/inventory"
)

// GenerateRequest triggers on-demand generation. StoreID empty means every
// active store.
type GenerateRequest struct {
	StoreID string `json:"storeId" binding:"omitempty,uuid"`
	Date    string `json:"date" binding:"required"`
}

// GenerateResponse summarizes a generation run.
type GenerateResponse struct {
	Success      bool                  `json:"success"`
	Date         string                `json:"date"`
	CreatedCount int                   `json:"createdCount"`
	Stores       []GenerateStoreResult `json:"stores"`
}

// GenerateStoreResult is one store's outcome within the run.
type GenerateStoreResult struct {
	StoreID string `json:"storeId"`
	Created int    `json:"created"`
	Skipped bool   `json:"skipped"`
	Reason  string `json:"reason,omitempty"`
}

// FromGenerationReport maps a runner report to the response shape.
func FromGenerationReport(report generator.Report) GenerateResponse {
	resp := GenerateResponse{
		Success:      !report.Failed(),
		Date:         types.FormatDay(report.TargetDate),
		CreatedCount: report.TotalCreated,
		Stores:       make([]GenerateStoreResult, len(report.Stores)),
	}
	for i, s := range report.Stores {
		reason := s.Reason
		if s.Err != nil {
			reason = "failed"
		}
		resp.Stores[i] = GenerateStoreResult{
			StoreID: s.StoreID.String(),
			Created: s.Created,
			Skipped: s.Skipped,
			Reason:  reason,
		}
	}
	return resp
}

// EditRecordRequest is a partial staff edit; absent fields are untouched.
type EditRecordRequest struct {
	MorningStock      *int64  `json:"morningStock"`
	InboundQuantity   *int64  `json:"inboundQuantity"`
	OutboundQuantity  *int64  `json:"outboundQuantity"`
	ClosingStock      *int64  `json:"closingStock"`
	DiscrepancyReason *string `json:"discrepancyReason"`
	Notes             *string `json:"notes"`
}

// ToEditFields converts the request to the domain edit.
func (r EditRecordRequest) ToEditFields() inventory.EditFields {
	return inventory.EditFields{
		MorningStock:      r.MorningStock,
		InboundQuantity:   r.InboundQuantity,
		OutboundQuantity:  r.OutboundQuantity,
		ClosingStock:      r.ClosingStock,
		DiscrepancyReason: r.DiscrepancyReason,
		Notes:             r.Notes,
	}
}

// RejectRecordRequest carries the mandatory rejection reason.
type RejectRecordRequest struct {
	RejectionReason string `json:"rejectionReason" binding:"required"`
}

// BatchResponse reports a bulk submit or approve outcome.
type BatchResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

// InventoryRecordResponse is one daily inventory record.
type InventoryRecordResponse struct {
	ID                   string     `json:"id"`
	StoreID              string     `json:"storeId"`
	ProductID            string     `json:"productId"`
	ProductName          string     `json:"productName,omitempty"`
	ProductUnit          string     `json:"productUnit,omitempty"`
	RecordDate           string     `json:"recordDate"`
	PreviousClosingStock int64      `json:"previousClosingStock"`
	MorningStock         int64      `json:"morningStock"`
	InboundQuantity      int64      `json:"inboundQuantity"`
	OutboundQuantity     int64      `json:"outboundQuantity"`
	ClosingStock         int64      `json:"closingStock"`
	Discrepancy          int64      `json:"discrepancy"`
	DiscrepancyReason    string     `json:"discrepancyReason,omitempty"`
	Notes                string     `json:"notes,omitempty"`
	Status               string     `json:"status"`
	SubmittedBy          *string    `json:"submittedBy,omitempty"`
	SubmittedAt          *time.Time `json:"submittedAt,omitempty"`
	ApprovedBy           *string    `json:"approvedBy,omitempty"`
	ApprovedAt           *time.Time `json:"approvedAt,omitempty"`
	RejectionReason      string     `json:"rejectionReason,omitempty"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

// FromInventoryRecord maps a domain record to its response shape.
func FromInventoryRecord(r *inventory.Record) InventoryRecordResponse {
	return InventoryRecordResponse{
		ID:                   r.ID.String(),
		StoreID:              r.StoreID.String(),
		ProductID:            r.ProductID.String(),
		ProductName:          r.ProductName,
		ProductUnit:          r.ProductUnit,
		RecordDate:           types.FormatDay(r.RecordDate),
		PreviousClosingStock: r.PreviousClosingStock,
		MorningStock:         r.MorningStock,
		InboundQuantity:      r.InboundQuantity,
		OutboundQuantity:     r.OutboundQuantity,
		ClosingStock:         r.ClosingStock,
		Discrepancy:          r.Discrepancy,
		DiscrepancyReason:    r.DiscrepancyReason,
		Notes:                r.Notes,
		Status:               string(r.Status),
		SubmittedBy:          r.SubmittedBy,
		SubmittedAt:          r.SubmittedAt,
		ApprovedBy:           r.ApprovedBy,
		ApprovedAt:           r.ApprovedAt,
		RejectionReason:      r.RejectionReason,
		UpdatedAt:            r.UpdatedAt,
	}
}

// FromInventoryRecords maps a list of records.
func FromInventoryRecords(records []*inventory.Record) []InventoryRecordResponse {
	out := make([]InventoryRecordResponse, len(records))
	for i, r := range records {
		out[i] = FromInventoryRecord(r)
	}
	return out
}
