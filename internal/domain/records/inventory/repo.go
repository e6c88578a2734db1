package inventory

import (
	"context"
	"time"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/id"
)

// Repository defines the persistence interface for inventory records.
type Repository interface {
	// CreateBatch inserts generated records for one store/day and returns
	// the number inserted.
	CreateBatch(ctx context.Context, records []*Record) (int, error)

	// GetByID retrieves a record by ID.
	GetByID(ctx context.Context, recordID id.ID) (*Record, error)

	// GetForUpdate retrieves a record with a row lock (inside a transaction).
	GetForUpdate(ctx context.Context, recordID id.ID) (*Record, error)

	// Update persists a mutated record with optimistic version check.
	Update(ctx context.Context, record *Record) error

	// ExistsForDate reports whether any record exists for (store, *, date).
	ExistsForDate(ctx context.Context, storeID id.ID, date time.Time) (bool, error)

	// ClosingStockByProduct returns product -> closing stock for (store, date).
	ClosingStockByProduct(ctx context.Context, storeID id.ID, date time.Time) (map[id.ID]int64, error)

	// ListForDay returns all records for (store, date) joined with product
	// display fields, ordered by creation order.
	ListForDay(ctx context.Context, storeID id.ID, date time.Time) ([]*Record, error)

	// ListForDayByStatus returns the (store, date) records currently in one
	// of the given statuses, with row locks when inside a transaction.
	ListForDayByStatus(ctx context.Context, storeID id.ID, date time.Time, statuses []Status) ([]*Record, error)

	// ListPendingApproval returns every record awaiting approval across all
	// stores, ordered by (record_date DESC, submitted_at DESC).
	ListPendingApproval(ctx context.Context) ([]*Record, error)
}
