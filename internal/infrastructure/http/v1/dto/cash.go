package dto

import (
	"time"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/types"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/records/cash"
)

// UpsertCashRequest is a partial closing-staff edit of the day's cash record.
// Absent groups are untouched; the record is created on first write.
type UpsertCashRequest struct {
	Deposit         *cash.DepositCount `json:"deposit"`
	GiftCards       *[]cash.GiftCard   `json:"giftCards"`
	Vouchers        *[]cash.Voucher    `json:"vouchers"`
	CarryOver       *cash.TillCount    `json:"carryOver"`
	Sales           *cash.Sales        `json:"sales"`
	DiscrepancyNote *string            `json:"discrepancyNote"`
}

// ToEditFields converts the request to the domain edit.
func (r UpsertCashRequest) ToEditFields() cash.EditFields {
	return cash.EditFields{
		Deposit:         r.Deposit,
		GiftCards:       r.GiftCards,
		Vouchers:        r.Vouchers,
		CarryOver:       r.CarryOver,
		Sales:           r.Sales,
		DiscrepancyNote: r.DiscrepancyNote,
	}
}

// MorningCheckRequest carries the morning recount of the carried-over till.
type MorningCheckRequest struct {
	Counts cash.TillCount `json:"counts"`
}

// CashRecordResponse is one store's cash record for one day.
type CashRecordResponse struct {
	ID           string            `json:"id"`
	StoreID      string            `json:"storeId"`
	RecordDate   string            `json:"recordDate"`
	Deposit      cash.DepositCount `json:"deposit"`
	GiftCards    []cash.GiftCard   `json:"giftCards"`
	Vouchers     []cash.Voucher    `json:"vouchers"`
	CarryOver    cash.TillCount    `json:"carryOver"`
	MorningCheck cash.MorningCheck `json:"morningCheck"`
	Discrepancy  cash.Discrepancy  `json:"discrepancy"`
	Sales        cash.Sales        `json:"sales"`
	Status       string            `json:"status"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// FromCashRecord maps a domain record to its response shape.
func FromCashRecord(r *cash.Record) CashRecordResponse {
	return CashRecordResponse{
		ID:           r.ID.String(),
		StoreID:      r.StoreID.String(),
		RecordDate:   types.FormatDay(r.RecordDate),
		Deposit:      r.Deposit,
		GiftCards:    r.GiftCards,
		Vouchers:     r.Vouchers,
		CarryOver:    r.CarryOver,
		MorningCheck: r.MorningCheck,
		Discrepancy:  r.Discrepancy,
		Sales:        r.Sales,
		Status:       string(r.Status),
		UpdatedAt:    r.UpdatedAt,
	}
}
