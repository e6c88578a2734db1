package cash

import (
	"time"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/apperror"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/id"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/types"
)

// Status is the lifecycle state of a daily cash record. Cash reconciliation
// is self-certified by closing staff and does not route through an approval
// gate; the next morning's recount of the till is the control step.
type Status string

const (
	StatusPending  Status = "pending"
	StatusDrafting Status = "drafting"
	StatusComplete Status = "complete"
)

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusDrafting, StatusComplete:
		return true
	}
	return false
}

// GiftCard is one gift-card line on the day's takings.
type GiftCard struct {
	GiftCardTypeID string      `json:"giftCardTypeId"`
	Amount         types.Money `json:"amount"`
}

// Voucher is one voucher line on the day's takings.
type Voucher struct {
	VoucherTypeID string      `json:"voucherTypeId"`
	FaceAmount    types.Money `json:"faceAmount"`
	Quantity      int         `json:"quantity"`
}

// MorningCheck is the next day's physical recount of the carried-over till.
type MorningCheck struct {
	TillCount
	CheckedBy *string    `json:"checkedBy,omitempty"`
	CheckedAt *time.Time `json:"checkedAt,omitempty"`
}

// Discrepancy is the difference between the morning recount and the till
// prepared the evening before. Negative amount means shortage.
type Discrepancy struct {
	HasDiscrepancy bool   `json:"hasDiscrepancy"`
	Amount         int64  `json:"amount"`
	Note           string `json:"note,omitempty"`
}

// Sales summarizes the day's sales for display. Informational only; the
// engine does not reconcile it against POS data.
type Sales struct {
	ItemCount   int         `json:"itemCount"`
	TotalAmount types.Money `json:"totalAmount"`
}

// Record represents one store's cash drawer for one day.
// Unique on (store_id, record_date).
type Record struct {
	ID         id.ID     `db:"id" json:"id"`
	StoreID    id.ID     `db:"store_id" json:"storeId"`
	RecordDate time.Time `db:"record_date" json:"recordDate"`

	Deposit      DepositCount `db:"deposit" json:"deposit"`
	GiftCards    []GiftCard   `db:"gift_cards" json:"giftCards"`
	Vouchers     []Voucher    `db:"vouchers" json:"vouchers"`
	CarryOver    TillCount    `db:"carry_over" json:"carryOver"`
	MorningCheck MorningCheck `db:"morning_check" json:"morningCheck"`
	Discrepancy  Discrepancy  `db:"discrepancy" json:"discrepancy"`
	Sales        Sales        `db:"sales" json:"sales"`

	Status Status `db:"status" json:"status"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
	Version   int       `db:"version" json:"version"`
}

// NewRecord creates an empty cash record for a store/day.
func NewRecord(storeID id.ID, recordDate time.Time) *Record {
	now := time.Now().UTC()
	return &Record{
		ID:         id.New(),
		StoreID:    storeID,
		RecordDate: types.Day(recordDate),
		GiftCards:  []GiftCard{},
		Vouchers:   []Voucher{},
		Status:     StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
		Version:    1,
	}
}

// EditFields carries a partial closing-staff edit. Nil groups are untouched.
type EditFields struct {
	Deposit         *DepositCount `json:"deposit"`
	GiftCards       *[]GiftCard   `json:"giftCards"`
	Vouchers        *[]Voucher    `json:"vouchers"`
	CarryOver       *TillCount    `json:"carryOver"`
	Sales           *Sales        `json:"sales"`
	DiscrepancyNote *string       `json:"discrepancyNote"`
}

// ApplyEdit applies a staff edit and recomputes every materialized total.
// A completed record is locked.
func (r *Record) ApplyEdit(f EditFields) error {
	if r.Status == StatusComplete {
		return apperror.NewInvalidState("completed cash record can no longer be edited").
			WithDetail("status", string(r.Status))
	}

	if f.Deposit != nil {
		r.Deposit = *f.Deposit
	}
	if f.GiftCards != nil {
		r.GiftCards = *f.GiftCards
	}
	if f.Vouchers != nil {
		r.Vouchers = *f.Vouchers
	}
	if f.CarryOver != nil {
		r.CarryOver = *f.CarryOver
	}
	if f.Sales != nil {
		r.Sales = *f.Sales
	}
	if f.DiscrepancyNote != nil {
		r.Discrepancy.Note = *f.DiscrepancyNote
	}

	r.Recalculate()
	if r.Status == StatusPending {
		r.Status = StatusDrafting
	}
	r.Touch()
	return nil
}

// RecordMorningCheck stores the next morning's recount of the carried-over
// till. The check is legal in any status: the evening record may already be
// complete when the morning crew counts the till.
func (r *Record) RecordMorningCheck(counts TillCount, checkedBy string, now time.Time) {
	r.MorningCheck.TillCount = counts
	r.MorningCheck.CheckedBy = &checkedBy
	r.MorningCheck.CheckedAt = &now
	r.Recalculate()
	r.Touch()
}

// Complete closes the record. Only a drafting record can complete; an
// untouched record has nothing to certify.
func (r *Record) Complete() error {
	if r.Status != StatusDrafting {
		return apperror.NewInvalidState("only a drafting cash record can be completed").
			WithDetail("status", string(r.Status))
	}
	r.Status = StatusComplete
	r.Touch()
	return nil
}

// Recalculate recomputes all denomination totals and the till discrepancy.
// The discrepancy only exists once both totals are positive, so an unset
// morning check is never compared against a real zero-count till.
func (r *Record) Recalculate() {
	r.Deposit.Recalculate()
	r.CarryOver.Recalculate()
	r.MorningCheck.Recalculate()

	if r.MorningCheck.Total > 0 && r.CarryOver.Total > 0 {
		amount := r.MorningCheck.Total - r.CarryOver.Total
		r.Discrepancy.Amount = amount
		r.Discrepancy.HasDiscrepancy = amount != 0
	} else {
		r.Discrepancy.Amount = 0
		r.Discrepancy.HasDiscrepancy = false
	}
}

// Touch updates the modification timestamp.
func (r *Record) Touch() {
	r.UpdatedAt = time.Now().UTC()
}
