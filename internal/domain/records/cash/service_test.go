package cash

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/apperror"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/id"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/types"
)

type nopTx struct{}

func (nopTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeRepo is an in-memory cash.Repository.
type fakeRepo struct {
	records map[id.ID]*Record
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: map[id.ID]*Record{}}
}

func (f *fakeRepo) Create(ctx context.Context, record *Record) error {
	for _, r := range f.records {
		if r.StoreID == record.StoreID && types.SameDay(r.RecordDate, record.RecordDate) {
			return apperror.NewDuplicate("cash record", "store/date", record.StoreID.String())
		}
	}
	f.records[record.ID] = record
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, recordID id.ID) (*Record, error) {
	r, ok := f.records[recordID]
	if !ok {
		return nil, apperror.NewNotFound("cash record", recordID)
	}
	return r, nil
}

func (f *fakeRepo) GetForUpdate(ctx context.Context, recordID id.ID) (*Record, error) {
	return f.GetByID(ctx, recordID)
}

func (f *fakeRepo) GetByStoreDate(ctx context.Context, storeID id.ID, date time.Time) (*Record, error) {
	for _, r := range f.records {
		if r.StoreID == storeID && types.SameDay(r.RecordDate, date) {
			return r, nil
		}
	}
	return nil, apperror.NewNotFound("cash record", storeID)
}

func (f *fakeRepo) Update(ctx context.Context, record *Record) error {
	if _, ok := f.records[record.ID]; !ok {
		return apperror.NewNotFound("cash record", record.ID)
	}
	f.records[record.ID] = record
	record.Version++
	return nil
}

var day = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

func TestUpsertCreatesOnFirstEdit(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopTx{})
	storeID := id.New()

	record, err := svc.Upsert(context.Background(), storeID, day, EditFields{
		CarryOver: &TillCount{Bill10000: 5},
	})
	require.NoError(t, err)

	assert.Equal(t, StatusDrafting, record.Status)
	assert.EqualValues(t, 50000, record.CarryOver.Total)
	assert.Len(t, repo.records, 1)
}

func TestUpsertUpdatesExistingRecord(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopTx{})
	storeID := id.New()

	first, err := svc.Upsert(context.Background(), storeID, day, EditFields{
		CarryOver: &TillCount{Bill10000: 5},
	})
	require.NoError(t, err)

	second, err := svc.Upsert(context.Background(), storeID, day, EditFields{
		Deposit: &DepositCount{Bill50000: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.EqualValues(t, 50000, second.CarryOver.Total)
	assert.EqualValues(t, 50000, second.Deposit.Total)
	assert.Len(t, repo.records, 1)
}

func TestGetDayMissingRecord(t *testing.T) {
	svc := NewService(newFakeRepo(), nopTx{})

	_, err := svc.GetDay(context.Background(), id.New(), day)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestMorningCheckAfterComplete(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopTx{})
	storeID := id.New()

	record, err := svc.Upsert(context.Background(), storeID, day, EditFields{
		CarryOver: &TillCount{Bill10000: 5},
	})
	require.NoError(t, err)
	require.NoError(t, svc.Complete(context.Background(), record.ID))

	// The evening record is complete by the time the morning crew counts.
	checked, err := svc.RecordMorningCheck(context.Background(), record.ID, TillCount{Bill10000: 4}, "opener-1")
	require.NoError(t, err)

	assert.Equal(t, StatusComplete, checked.Status)
	assert.True(t, checked.Discrepancy.HasDiscrepancy)
	assert.EqualValues(t, -10000, checked.Discrepancy.Amount)
}

func TestCompleteUntouchedRecord(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopTx{})

	record := NewRecord(id.New(), day)
	require.NoError(t, repo.Create(context.Background(), record))

	err := svc.Complete(context.Background(), record.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidState(err))
}
