// Package generator materializes per-store daily inventory records from the
// template registry. The algorithm is a pure function over narrow provider
// interfaces; the periodic trigger lives in scheduler.go.
package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/id"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/types"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/catalogs/store"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/records/inventory"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/templates"
	"github.com/hanjihoon31-beep/erphan-sub000/pkg/logger"
)

// StoreProvider lists the stores that participate in a generation run.
type StoreProvider interface {
	ListActive(ctx context.Context) ([]*store.Store, error)
	GetByID(ctx context.Context, storeID id.ID) (*store.Store, error)
}

// TemplateProvider supplies the ordered template for a store.
type TemplateProvider interface {
	ListActive(ctx context.Context, storeID id.ID) ([]*templates.Entry, error)
}

// RecordStore is the slice of the inventory repository the generator needs.
type RecordStore interface {
	ExistsForDate(ctx context.Context, storeID id.ID, date time.Time) (bool, error)
	ClosingStockByProduct(ctx context.Context, storeID id.ID, date time.Time) (map[id.ID]int64, error)
	CreateBatch(ctx context.Context, records []*inventory.Record) (int, error)
}

// StoreResult reports one store's outcome within a run.
type StoreResult struct {
	StoreID id.ID  `json:"storeId"`
	Created int    `json:"created"`
	Skipped bool   `json:"skipped"`
	Reason  string `json:"reason,omitempty"`
	Err     error  `json:"-"`
}

// Report summarizes a generation run across all stores.
type Report struct {
	TargetDate   time.Time     `json:"targetDate"`
	TotalCreated int           `json:"totalCreated"`
	Stores       []StoreResult `json:"stores"`
}

// Failed reports whether every store in the run errored, which means the run
// as a whole failed rather than individual stores being skipped.
func (r Report) Failed() bool {
	if len(r.Stores) == 0 {
		return false
	}
	for _, s := range r.Stores {
		if s.Err == nil {
			return false
		}
	}
	return true
}

// Runner executes generation runs.
type Runner struct {
	stores    StoreProvider
	templates TemplateProvider
	records   RecordStore
}

// NewRunner creates a generation runner.
func NewRunner(stores StoreProvider, templates TemplateProvider, records RecordStore) *Runner {
	return &Runner{
		stores:    stores,
		templates: templates,
		records:   records,
	}
}

// Run generates the target day's records for every active store. Stores are
// processed independently: one store's failure is logged and skipped, never
// aborting the batch.
func (g *Runner) Run(ctx context.Context, targetDate time.Time) (Report, error) {
	target := types.Day(targetDate)
	report := Report{TargetDate: target}

	stores, err := g.stores.ListActive(ctx)
	if err != nil {
		return report, fmt.Errorf("list active stores: %w", err)
	}

	for _, st := range stores {
		result := g.runStore(ctx, st, target)
		report.Stores = append(report.Stores, result)
		report.TotalCreated += result.Created

		if result.Err != nil {
			logger.Error(ctx, "generation failed for store",
				"store_id", st.ID,
				"date", types.FormatDay(target),
				"error", result.Err,
			)
		}
	}

	logger.Info(ctx, "generation run finished",
		"date", types.FormatDay(target),
		"stores", len(stores),
		"total_created", report.TotalCreated,
	)
	return report, nil
}

// RunStore generates one store's records for the target day, used by the
// on-demand API when a storeId is supplied.
func (g *Runner) RunStore(ctx context.Context, storeID id.ID, targetDate time.Time) (Report, error) {
	target := types.Day(targetDate)
	report := Report{TargetDate: target}

	st, err := g.stores.GetByID(ctx, storeID)
	if err != nil {
		return report, err
	}

	result := g.runStore(ctx, st, target)
	report.Stores = append(report.Stores, result)
	report.TotalCreated = result.Created
	if result.Err != nil {
		return report, result.Err
	}
	return report, nil
}

func (g *Runner) runStore(ctx context.Context, st *store.Store, target time.Time) StoreResult {
	result := StoreResult{StoreID: st.ID}

	// Idempotence: a retriggered run must never duplicate a day. The unique
	// (store, product, date) index backstops this check.
	exists, err := g.records.ExistsForDate(ctx, st.ID, target)
	if err != nil {
		result.Err = fmt.Errorf("check existing records: %w", err)
		return result
	}
	if exists {
		result.Skipped = true
		result.Reason = "already generated"
		return result
	}

	entries, err := g.templates.ListActive(ctx, st.ID)
	if err != nil {
		result.Err = fmt.Errorf("load template: %w", err)
		return result
	}
	if len(entries) == 0 {
		// A store without a template is a valid, non-error outcome.
		result.Skipped = true
		result.Reason = "no active template entries"
		logger.Warn(ctx, "store has no template entries, skipping",
			"store_id", st.ID,
			"date", types.FormatDay(target),
		)
		return result
	}

	previousDate := types.PreviousDay(target)
	closing, err := g.records.ClosingStockByProduct(ctx, st.ID, previousDate)
	if err != nil {
		result.Err = fmt.Errorf("load previous closing stock: %w", err)
		return result
	}

	records := make([]*inventory.Record, 0, len(entries))
	for _, entry := range entries {
		records = append(records, inventory.NewRecord(st.ID, entry.ProductID, target, closing[entry.ProductID]))
	}

	created, err := g.records.CreateBatch(ctx, records)
	if err != nil {
		result.Err = fmt.Errorf("insert records: %w", err)
		return result
	}

	result.Created = created
	return result
}
