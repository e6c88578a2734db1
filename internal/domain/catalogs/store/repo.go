package store

import (
	"context"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/id"
)

// Repository defines the read interface for the Store catalog.
type Repository interface {
	// GetByID retrieves a store by ID.
	GetByID(ctx context.Context, storeID id.ID) (*Store, error)

	// ListActive returns all stores with the active flag set, ordered by name.
	ListActive(ctx context.Context) ([]*Store, error)
}
