package templates

import (
	"context"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/id"
)

// Repository defines the persistence interface for template entries.
type Repository interface {
	// Create inserts a new entry. Returns a DuplicateEntry error when the
	// (store, product) pair is already registered.
	Create(ctx context.Context, entry *Entry) error

	// GetByID retrieves an entry by ID.
	GetByID(ctx context.Context, entryID id.ID) (*Entry, error)

	// ListActive returns active entries for a store joined with product
	// display fields, ordered by (display_order, created_at).
	ListActive(ctx context.Context, storeID id.ID) ([]*Entry, error)

	// ExistingProductIDs returns the subset of productIDs already registered
	// for the store, active or not.
	ExistingProductIDs(ctx context.Context, storeID id.ID, productIDs []id.ID) (map[id.ID]bool, error)

	// NextDisplayOrder returns one past the store's largest display order,
	// counting inactive entries, or 0 when the store has none.
	NextDisplayOrder(ctx context.Context, storeID id.ID) (int, error)

	// SetActive flips the active flag on an entry.
	SetActive(ctx context.Context, entryID id.ID, active bool) error
}
