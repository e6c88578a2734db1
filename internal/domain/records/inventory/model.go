// Package inventory provides the daily inventory record and its lifecycle.
// A record is one product's stock count for one store on one calendar day.
// Records are created only by the generator and mutated only through the
// transition methods below; direct field writes would break the discrepancy
// and status invariants.
package inventory

import (
	"strings"
	"time"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/apperror"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/id"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/types"
)

// Status is the lifecycle state of a daily inventory record.
type Status string

const (
	// StatusPending is the generated, untouched state.
	StatusPending Status = "pending"
	// StatusDrafting marks a record staff have started editing.
	StatusDrafting Status = "drafting"
	// StatusPendingApproval marks a submitted record awaiting management review.
	StatusPendingApproval Status = "pending_approval"
	// StatusApproved is terminal.
	StatusApproved Status = "approved"
	// StatusRejected is terminal; the record remains as a permanent account
	// of the rejection.
	StatusRejected Status = "rejected"
)

// Editable reports whether staff edits are still allowed.
func (s Status) Editable() bool {
	return s == StatusPending || s == StatusDrafting
}

// Terminal reports whether the record has reached a final state.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusDrafting, StatusPendingApproval, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Record represents one product's stock count for one store on one day.
// Unique on (store_id, product_id, record_date).
type Record struct {
	ID         id.ID     `db:"id" json:"id"`
	StoreID    id.ID     `db:"store_id" json:"storeId"`
	ProductID  id.ID     `db:"product_id" json:"productId"`
	RecordDate time.Time `db:"record_date" json:"recordDate"`

	// PreviousClosingStock carries the prior day's closing stock, 0 when no
	// prior-day record exists.
	PreviousClosingStock int64 `db:"previous_closing_stock" json:"previousClosingStock"`
	MorningStock         int64 `db:"morning_stock" json:"morningStock"`
	InboundQuantity      int64 `db:"inbound_quantity" json:"inboundQuantity"`
	OutboundQuantity     int64 `db:"outbound_quantity" json:"outboundQuantity"`
	ClosingStock         int64 `db:"closing_stock" json:"closingStock"`

	// Discrepancy is always morning_stock - previous_closing_stock as of the
	// last edit.
	Discrepancy       int64  `db:"discrepancy" json:"discrepancy"`
	DiscrepancyReason string `db:"discrepancy_reason" json:"discrepancyReason"`
	Notes             string `db:"notes" json:"notes"`

	Status Status `db:"status" json:"status"`

	SubmittedBy     *string    `db:"submitted_by" json:"submittedBy,omitempty"`
	SubmittedAt     *time.Time `db:"submitted_at" json:"submittedAt,omitempty"`
	ApprovedBy      *string    `db:"approved_by" json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time `db:"approved_at" json:"approvedAt,omitempty"`
	RejectionReason string     `db:"rejection_reason" json:"rejectionReason,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
	Version   int       `db:"version" json:"version"`

	// Joined product display fields, populated by day queries only.
	ProductName string `db:"product_name" json:"productName,omitempty"`
	ProductUnit string `db:"product_unit" json:"productUnit,omitempty"`
}

// NewRecord creates a generated record for a store/product/day with all
// quantities at zero and the carried-over closing stock.
func NewRecord(storeID, productID id.ID, recordDate time.Time, previousClosingStock int64) *Record {
	now := time.Now().UTC()
	return &Record{
		ID:                   id.New(),
		StoreID:              storeID,
		ProductID:            productID,
		RecordDate:           types.Day(recordDate),
		PreviousClosingStock: previousClosingStock,
		Status:               StatusPending,
		CreatedAt:            now,
		UpdatedAt:            now,
		Version:              1,
	}
}

// EditFields carries a partial staff edit. Nil fields are left untouched.
type EditFields struct {
	MorningStock      *int64  `json:"morningStock"`
	InboundQuantity   *int64  `json:"inboundQuantity"`
	OutboundQuantity  *int64  `json:"outboundQuantity"`
	ClosingStock      *int64  `json:"closingStock"`
	DiscrepancyReason *string `json:"discrepancyReason"`
	Notes             *string `json:"notes"`
}

// Empty reports whether the edit changes nothing.
func (f EditFields) Empty() bool {
	return f.MorningStock == nil && f.InboundQuantity == nil &&
		f.OutboundQuantity == nil && f.ClosingStock == nil &&
		f.DiscrepancyReason == nil && f.Notes == nil
}

// ApplyEdit applies a staff edit. A touched morning stock recomputes the
// discrepancy, and a pending record moves to drafting.
func (r *Record) ApplyEdit(f EditFields) error {
	if !r.Status.Editable() {
		return apperror.NewInvalidState("record can no longer be edited").
			WithDetail("status", string(r.Status))
	}

	if f.MorningStock != nil {
		r.MorningStock = *f.MorningStock
		r.Discrepancy = r.MorningStock - r.PreviousClosingStock
	}
	if f.InboundQuantity != nil {
		r.InboundQuantity = *f.InboundQuantity
	}
	if f.OutboundQuantity != nil {
		r.OutboundQuantity = *f.OutboundQuantity
	}
	if f.ClosingStock != nil {
		r.ClosingStock = *f.ClosingStock
	}
	if f.DiscrepancyReason != nil {
		r.DiscrepancyReason = *f.DiscrepancyReason
	}
	if f.Notes != nil {
		r.Notes = *f.Notes
	}

	if r.Status == StatusPending {
		r.Status = StatusDrafting
	}
	r.Touch()
	return nil
}

// NeedsDiscrepancyReason reports whether submission is blocked on a missing
// discrepancy reason.
func (r *Record) NeedsDiscrepancyReason() bool {
	return r.Discrepancy != 0 && strings.TrimSpace(r.DiscrepancyReason) == ""
}

// Submit moves the record to pending approval. A non-zero discrepancy
// requires a recorded reason.
func (r *Record) Submit(submitterID string, now time.Time) error {
	if !r.Status.Editable() {
		return apperror.NewInvalidState("only pending or drafting records can be submitted").
			WithDetail("status", string(r.Status))
	}
	if r.NeedsDiscrepancyReason() {
		return apperror.NewValidation("discrepancy reason required").
			WithDetail("field", "discrepancyReason").
			WithDetail("discrepancy", r.Discrepancy)
	}

	r.Status = StatusPendingApproval
	r.SubmittedBy = &submitterID
	r.SubmittedAt = &now
	r.Touch()
	return nil
}

// Approve finalizes the record. Only legal from pending approval.
func (r *Record) Approve(approverID string, now time.Time) error {
	if r.Status != StatusPendingApproval {
		return apperror.NewInvalidState("only records pending approval can be approved").
			WithDetail("status", string(r.Status))
	}

	r.Status = StatusApproved
	r.ApprovedBy = &approverID
	r.ApprovedAt = &now
	r.Touch()
	return nil
}

// Reject finalizes the record as rejected. The reviewer is recorded in the
// approvedBy/approvedAt fields and the reason is mandatory.
func (r *Record) Reject(approverID, reason string, now time.Time) error {
	if strings.TrimSpace(reason) == "" {
		return apperror.NewValidation("rejection reason required").
			WithDetail("field", "rejectionReason")
	}
	if r.Status != StatusPendingApproval {
		return apperror.NewInvalidState("only records pending approval can be rejected").
			WithDetail("status", string(r.Status))
	}

	r.Status = StatusRejected
	r.RejectionReason = reason
	r.ApprovedBy = &approverID
	r.ApprovedAt = &now
	r.Touch()
	return nil
}

// Touch updates the modification timestamp.
func (r *Record) Touch() {
	r.UpdatedAt = time.Now().UTC()
}
