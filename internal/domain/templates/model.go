// Package templates provides the per-store daily-record template registry.
// A template entry declares that a product must appear on every generated
// daily inventory form for its store.
package templates

import (
	"context"
	"time"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/apperror"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/id"
)

// Entry represents one (store, product) template registration.
// Entries are soft-disabled, never hard-deleted while records reference them.
type Entry struct {
	ID           id.ID     `db:"id" json:"id"`
	StoreID      id.ID     `db:"store_id" json:"storeId"`
	ProductID    id.ID     `db:"product_id" json:"productId"`
	DisplayOrder int       `db:"display_order" json:"displayOrder"`
	IsActive     bool      `db:"is_active" json:"isActive"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`

	// Joined product display fields, populated by list queries.
	ProductName string `db:"product_name" json:"productName,omitempty"`
	ProductUnit string `db:"product_unit" json:"productUnit,omitempty"`
}

// NewEntry creates an active template entry.
func NewEntry(storeID, productID id.ID, displayOrder int) *Entry {
	return &Entry{
		ID:           id.New(),
		StoreID:      storeID,
		ProductID:    productID,
		DisplayOrder: displayOrder,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
}

// Validate checks entry invariants.
func (e *Entry) Validate(ctx context.Context) error {
	if id.IsNil(e.StoreID) {
		return apperror.NewValidation("store is required").
			WithDetail("field", "storeId")
	}
	if id.IsNil(e.ProductID) {
		return apperror.NewValidation("product is required").
			WithDetail("field", "productId")
	}
	if e.DisplayOrder < 0 {
		return apperror.NewValidation("display order must not be negative").
			WithDetail("field", "displayOrder")
	}
	return nil
}
