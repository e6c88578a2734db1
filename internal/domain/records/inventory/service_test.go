package inventory

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

// nopTx runs the function without a real transaction.
type nopTx struct{}

func (nopTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeRepo is an in-memory inventory.Repository.
type fakeRepo struct {
	records map[id.ID]*Record
}

func newFakeRepo(records ...*Record) *fakeRepo {
	m := make(map[id.ID]*Record, len(records))
	for _, r := range records {
		m[r.ID] = r
	}
	return &fakeRepo{records: m}
}

func (f *fakeRepo) CreateBatch(ctx context.Context, records []*Record) (int, error) {
	for _, r := range records {
		f.records[r.ID] = r
	}
	return len(records), nil
}

func (f *fakeRepo) GetByID(ctx context.Context, recordID id.ID) (*Record, error) {
	r, ok := f.records[recordID]
	if !ok {
		return nil, apperror.NewNotFound("inventory record", recordID)
	}
	return r, nil
}

func (f *fakeRepo) GetForUpdate(ctx context.Context, recordID id.ID) (*Record, error) {
	return f.GetByID(ctx, recordID)
}

func (f *fakeRepo) Update(ctx context.Context, record *Record) error {
	if _, ok := f.records[record.ID]; !ok {
		return apperror.NewNotFound("inventory record", record.ID)
	}
	f.records[record.ID] = record
	record.Version++
	return nil
}

func (f *fakeRepo) ExistsForDate(ctx context.Context, storeID id.ID, date time.Time) (bool, error) {
	for _, r := range f.records {
		if r.StoreID == storeID && types.SameDay(r.RecordDate, date) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) ClosingStockByProduct(ctx context.Context, storeID id.ID, date time.Time) (map[id.ID]int64, error) {
	result := make(map[id.ID]int64)
	for _, r := range f.records {
		if r.StoreID == storeID && types.SameDay(r.RecordDate, date) {
			result[r.ProductID] = r.ClosingStock
		}
	}
	return result, nil
}

func (f *fakeRepo) ListForDay(ctx context.Context, storeID id.ID, date time.Time) ([]*Record, error) {
	var out []*Record
	for _, r := range f.records {
		if r.StoreID == storeID && types.SameDay(r.RecordDate, date) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListForDayByStatus(ctx context.Context, storeID id.ID, date time.Time, statuses []Status) ([]*Record, error) {
	var out []*Record
	for _, r := range f.records {
		if r.StoreID != storeID || !types.SameDay(r.RecordDate, date) {
			continue
		}
		for _, s := range statuses {
			if r.Status == s {
				out = append(out, r)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) ListPendingApproval(ctx context.Context) ([]*Record, error) {
	var out []*Record
	for _, r := range f.records {
		if r.Status == StatusPendingApproval {
			out = append(out, r)
		}
	}
	return out, nil
}

var testDay = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

func TestServiceEditRecomputesDiscrepancy(t *testing.T) {
	storeID := id.New()
	record := NewRecord(storeID, id.New(), testDay, 100)
	repo := newFakeRepo(record)
	svc := NewService(repo, nopTx{})

	updated, err := svc.Edit(context.Background(), record.ID, EditFields{MorningStock: intPtr(95)})
	require.NoError(t, err)

	assert.EqualValues(t, -5, updated.Discrepancy)
	assert.Equal(t, StatusDrafting, updated.Status)
}

func TestServiceEditUnknownRecord(t *testing.T) {
	svc := NewService(newFakeRepo(), nopTx{})

	_, err := svc.Edit(context.Background(), id.New(), EditFields{Notes: strPtr("x")})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestServiceSubmitAllRejectsWholeBatchOnMissingReason(t *testing.T) {
	storeID := id.New()
	ok := NewRecord(storeID, id.New(), testDay, 10)
	require.NoError(t, ok.ApplyEdit(EditFields{MorningStock: intPtr(10)}))

	bad := NewRecord(storeID, id.New(), testDay, 10)
	require.NoError(t, bad.ApplyEdit(EditFields{MorningStock: intPtr(7)}))

	repo := newFakeRepo(ok, bad)
	svc := NewService(repo, nopTx{})

	_, err := svc.SubmitAll(context.Background(), storeID, testDay, "staff-1")
	require.Error(t, err)
	appErr, found := apperror.AsAppError(err)
	require.True(t, found)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Equal(t, 1, appErr.Details["invalidCount"])
	assert.Equal(t, 2, appErr.Details["totalCount"])

	// Nothing was submitted, including the valid record.
	assert.Equal(t, StatusDrafting, ok.Status)
	assert.Equal(t, StatusDrafting, bad.Status)
}

func TestServiceSubmitAllSubmitsPendingAndDrafting(t *testing.T) {
	storeID := id.New()
	untouched := NewRecord(storeID, id.New(), testDay, 0)
	edited := NewRecord(storeID, id.New(), testDay, 5)
	require.NoError(t, edited.ApplyEdit(EditFields{MorningStock: intPtr(5)}))

	otherDay := NewRecord(storeID, id.New(), testDay.AddDate(0, 0, 1), 0)

	repo := newFakeRepo(untouched, edited, otherDay)
	svc := NewService(repo, nopTx{})

	count, err := svc.SubmitAll(context.Background(), storeID, testDay, "staff-1")
	require.NoError(t, err)

	assert.Equal(t, 2, count)
	assert.Equal(t, StatusPendingApproval, untouched.Status)
	assert.Equal(t, StatusPendingApproval, edited.Status)
	assert.Equal(t, StatusPending, otherDay.Status)
}

func TestServiceSubmitAllEmptyDay(t *testing.T) {
	svc := NewService(newFakeRepo(), nopTx{})

	_, err := svc.SubmitAll(context.Background(), id.New(), testDay, "staff-1")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestServiceApproveAllCountsOnlyPendingApproval(t *testing.T) {
	storeID := id.New()
	first := NewRecord(storeID, id.New(), testDay, 0)
	second := NewRecord(storeID, id.New(), testDay, 0)
	require.NoError(t, first.Submit("staff-1", time.Now()))
	require.NoError(t, second.Submit("staff-1", time.Now()))

	stillDrafting := NewRecord(storeID, id.New(), testDay, 0)
	require.NoError(t, stillDrafting.ApplyEdit(EditFields{MorningStock: intPtr(1)}))

	repo := newFakeRepo(first, second, stillDrafting)
	svc := NewService(repo, nopTx{})

	count, err := svc.ApproveAll(context.Background(), storeID, testDay, "manager-1")
	require.NoError(t, err)

	assert.Equal(t, 2, count)
	assert.Equal(t, StatusApproved, first.Status)
	assert.Equal(t, StatusApproved, second.Status)
	assert.Equal(t, StatusDrafting, stillDrafting.Status)
}

func TestServiceRejectRecordsReviewer(t *testing.T) {
	record := NewRecord(id.New(), id.New(), testDay, 0)
	require.NoError(t, record.Submit("staff-1", time.Now()))

	repo := newFakeRepo(record)
	svc := NewService(repo, nopTx{})

	err := svc.Reject(context.Background(), record.ID, "manager-1", "photo evidence missing")
	require.NoError(t, err)

	assert.Equal(t, StatusRejected, record.Status)
	require.NotNil(t, record.ApprovedBy)
	assert.Equal(t, "manager-1", *record.ApprovedBy)
}
