package cash

import (
	"context"
	"time"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/id"
)

// Repository defines the persistence interface for cash records.
type Repository interface {
	// Create inserts a new record. Returns a DuplicateEntry error when a
	// record for (store, date) already exists.
	Create(ctx context.Context, record *Record) error

	// GetByID retrieves a record by ID.
	GetByID(ctx context.Context, recordID id.ID) (*Record, error)

	// GetForUpdate retrieves a record with a row lock (inside a transaction).
	GetForUpdate(ctx context.Context, recordID id.ID) (*Record, error)

	// GetByStoreDate retrieves the record for (store, date).
	GetByStoreDate(ctx context.Context, storeID id.ID, date time.Time) (*Record, error)

	// Update persists a mutated record with optimistic version check.
	Update(ctx context.Context, record *Record) error
}
