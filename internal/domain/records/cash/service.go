package cash

import (
	"context"
	"time"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/apperror"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/id"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/tx"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/types"
	"github.com/hanjihoon31-beep/erphan-sub000/pkg/logger"
)

// Service drives the cash record lifecycle. Cash records are created lazily
// on the first edit for a store/day rather than by the nightly generator.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new cash record service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

// GetDay returns the store's cash record for one day.
func (s *Service) GetDay(ctx context.Context, storeID id.ID, date time.Time) (*Record, error) {
	return s.repo.GetByStoreDate(ctx, storeID, types.Day(date))
}

// Upsert applies a closing-staff edit to the store/day record, creating it
// on first write.
func (s *Service) Upsert(ctx context.Context, storeID id.ID, date time.Time, fields EditFields) (*Record, error) {
	day := types.Day(date)

	var record *Record
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetByStoreDate(ctx, storeID, day)
		switch {
		case err == nil:
			record = existing
			if err := record.ApplyEdit(fields); err != nil {
				return err
			}
			return s.repo.Update(ctx, record)
		case apperror.IsNotFound(err):
			record = NewRecord(storeID, day)
			if err := record.ApplyEdit(fields); err != nil {
				return err
			}
			return s.repo.Create(ctx, record)
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// RecordMorningCheck stores the morning recount of the carried-over till and
// recomputes the till discrepancy.
func (s *Service) RecordMorningCheck(ctx context.Context, recordID id.ID, counts TillCount, checkedBy string) (*Record, error) {
	var record *Record
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		record, err = s.repo.GetForUpdate(ctx, recordID)
		if err != nil {
			return err
		}
		record.RecordMorningCheck(counts, checkedBy, time.Now().UTC())
		return s.repo.Update(ctx, record)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "cash morning check recorded",
		"record_id", recordID,
		"morning_total", record.MorningCheck.Total,
		"carry_over_total", record.CarryOver.Total,
		"has_discrepancy", record.Discrepancy.HasDiscrepancy,
	)
	return record, nil
}

// Complete closes the day's cash record.
func (s *Service) Complete(ctx context.Context, recordID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		record, err := s.repo.GetForUpdate(ctx, recordID)
		if err != nil {
			return err
		}
		if err := record.Complete(); err != nil {
			return err
		}
		return s.repo.Update(ctx, record)
	})
}
