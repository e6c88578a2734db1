package product

import (
	"context"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/id"
)

// Repository defines the read interface for the Product catalog.
type Repository interface {
	// GetByID retrieves a product by ID.
	GetByID(ctx context.Context, productID id.ID) (*Product, error)

	// GetByIDs retrieves products for a set of IDs; missing IDs are skipped.
	GetByIDs(ctx context.Context, productIDs []id.ID) ([]*Product, error)
}
