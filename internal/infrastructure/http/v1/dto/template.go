// Package dto defines the request and response shapes of the v1 API.
// Handlers translate between these and the domain types; domain models never
// bind directly to request bodies.
package dto

import (
	"time"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/templates"
)

// AddTemplateEntryRequest registers one product on a store's daily template.
type AddTemplateEntryRequest struct {
	StoreID      string `json:"storeId" binding:"required,uuid"`
	ProductID    string `json:"productId" binding:"required,uuid"`
	DisplayOrder int    `json:"displayOrder" binding:"gte=0"`
}

// BulkAddTemplateRequest registers many products at once, in display order.
type BulkAddTemplateRequest struct {
	StoreID    string   `json:"storeId" binding:"required,uuid"`
	ProductIDs []string `json:"productIds" binding:"required,min=1,dive,uuid"`
}

// BulkAddTemplateResponse reports how many entries were actually inserted.
type BulkAddTemplateResponse struct {
	Requested int `json:"requested"`
	Created   int `json:"created"`
}

// TemplateEntryResponse is one template registration with product display
// fields.
type TemplateEntryResponse struct {
	ID           string    `json:"id"`
	StoreID      string    `json:"storeId"`
	ProductID    string    `json:"productId"`
	ProductName  string    `json:"productName"`
	ProductUnit  string    `json:"productUnit"`
	DisplayOrder int       `json:"displayOrder"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// FromTemplateEntry maps a domain entry to its response shape.
func FromTemplateEntry(e *templates.Entry) TemplateEntryResponse {
	return TemplateEntryResponse{
		ID:           e.ID.String(),
		StoreID:      e.StoreID.String(),
		ProductID:    e.ProductID.String(),
		ProductName:  e.ProductName,
		ProductUnit:  e.ProductUnit,
		DisplayOrder: e.DisplayOrder,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
	}
}

// FromTemplateEntries maps a list of entries.
func FromTemplateEntries(entries []*templates.Entry) []TemplateEntryResponse {
	out := make([]TemplateEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = FromTemplateEntry(e)
	}
	return out
}
