package inventory

import (
	"context"
	"time"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/apperror"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/id"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/tx"
	"github.com/hanjihoon31-beep/erphan-sub000/pkg/logger"
)

// Service drives the inventory record lifecycle. All mutations go through
// the model's transition methods; bulk operations run inside one transaction
// so a mid-batch fault never leaves the day half-submitted.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new inventory record service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

// Edit applies a partial staff edit to a record and returns the updated
// record. Editing a pending record moves it to drafting; a touched morning
// stock recomputes the discrepancy.
func (s *Service) Edit(ctx context.Context, recordID id.ID, fields EditFields) (*Record, error) {
	var record *Record
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		record, err = s.repo.GetForUpdate(ctx, recordID)
		if err != nil {
			return err
		}
		if err := record.ApplyEdit(fields); err != nil {
			return err
		}
		return s.repo.Update(ctx, record)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Submit moves one record to pending approval.
func (s *Service) Submit(ctx context.Context, recordID id.ID, submitterID string) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		record, err := s.repo.GetForUpdate(ctx, recordID)
		if err != nil {
			return err
		}
		if err := record.Submit(submitterID, time.Now().UTC()); err != nil {
			return err
		}
		return s.repo.Update(ctx, record)
	})
}

// SubmitAll submits every pending/drafting record for (store, date).
// The batch is all-or-nothing: if any selected record is missing a required
// discrepancy reason the whole batch is rejected with the invalid count, and
// the updates share one transaction.
func (s *Service) SubmitAll(ctx context.Context, storeID id.ID, date time.Time, submitterID string) (int, error) {
	submitted := 0
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		records, err := s.repo.ListForDayByStatus(ctx, storeID, date, []Status{StatusPending, StatusDrafting})
		if err != nil {
			return err
		}
		if len(records) == 0 {
			return apperror.NewNotFound("submittable records", storeID.String()).
				WithDetail("date", date.Format("2006-01-02"))
		}

		// Validation pass before any mutation.
		invalid := 0
		for _, record := range records {
			if record.NeedsDiscrepancyReason() {
				invalid++
			}
		}
		if invalid > 0 {
			return apperror.NewValidation("discrepancy reason required").
				WithDetail("invalidCount", invalid).
				WithDetail("totalCount", len(records))
		}

		now := time.Now().UTC()
		for _, record := range records {
			if err := record.Submit(submitterID, now); err != nil {
				return err
			}
			if err := s.repo.Update(ctx, record); err != nil {
				return err
			}
			submitted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info(ctx, "records submitted",
		"store_id", storeID,
		"date", date.Format("2006-01-02"),
		"count", submitted,
	)
	return submitted, nil
}

// Approve finalizes one record. Admin only; enforced at the HTTP layer.
func (s *Service) Approve(ctx context.Context, recordID id.ID, approverID string) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		record, err := s.repo.GetForUpdate(ctx, recordID)
		if err != nil {
			return err
		}
		if err := record.Approve(approverID, time.Now().UTC()); err != nil {
			return err
		}
		return s.repo.Update(ctx, record)
	})
}

// Reject finalizes one record as rejected; the reason is mandatory.
func (s *Service) Reject(ctx context.Context, recordID id.ID, approverID, reason string) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		record, err := s.repo.GetForUpdate(ctx, recordID)
		if err != nil {
			return err
		}
		if err := record.Reject(approverID, reason, time.Now().UTC()); err != nil {
			return err
		}
		return s.repo.Update(ctx, record)
	})
}

// ApproveAll approves every pending-approval record for (store, date) in one
// transaction and returns the number modified.
func (s *Service) ApproveAll(ctx context.Context, storeID id.ID, date time.Time, approverID string) (int, error) {
	approved := 0
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		records, err := s.repo.ListForDayByStatus(ctx, storeID, date, []Status{StatusPendingApproval})
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		for _, record := range records {
			if err := record.Approve(approverID, now); err != nil {
				return err
			}
			if err := s.repo.Update(ctx, record); err != nil {
				return err
			}
			approved++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info(ctx, "records approved",
		"store_id", storeID,
		"date", date.Format("2006-01-02"),
		"count", approved,
	)
	return approved, nil
}

// GetDay returns the store's records for one day with product display
// fields, in generation (template) order.
func (s *Service) GetDay(ctx context.Context, storeID id.ID, date time.Time) ([]*Record, error) {
	return s.repo.ListForDay(ctx, storeID, date)
}

// ListPendingApproval feeds the cross-store management approval queue.
func (s *Service) ListPendingApproval(ctx context.Context) ([]*Record, error) {
	return s.repo.ListPendingApproval(ctx)
}
