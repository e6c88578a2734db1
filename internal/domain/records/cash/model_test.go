package cash

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/apperror"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/id"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/types"
)

func newTestRecord() *Record {
	return NewRecord(id.New(), time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
}

func TestNewRecordStartsPending(t *testing.T) {
	r := newTestRecord()

	assert.Equal(t, StatusPending, r.Status)
	assert.NotNil(t, r.GiftCards)
	assert.NotNil(t, r.Vouchers)
	assert.False(t, r.Discrepancy.HasDiscrepancy)
}

func TestApplyEditRecalculatesTotals(t *testing.T) {
	r := newTestRecord()

	err := r.ApplyEdit(EditFields{
		Deposit:   &DepositCount{Bill50000: 2, Bill10000: 3},
		CarryOver: &TillCount{Bill10000: 5},
	})
	require.NoError(t, err)

	assert.EqualValues(t, 130000, r.Deposit.Total)
	assert.EqualValues(t, 50000, r.CarryOver.Total)
	assert.Equal(t, StatusDrafting, r.Status)
}

func TestApplyEditPartialGroupsUntouched(t *testing.T) {
	r := newTestRecord()
	require.NoError(t, r.ApplyEdit(EditFields{CarryOver: &TillCount{Bill10000: 5}}))

	sales := Sales{ItemCount: 120, TotalAmount: types.MustMoney("834500")}
	require.NoError(t, r.ApplyEdit(EditFields{Sales: &sales}))

	assert.EqualValues(t, 50000, r.CarryOver.Total)
	assert.Equal(t, 120, r.Sales.ItemCount)
}

func TestApplyEditLockedWhenComplete(t *testing.T) {
	r := newTestRecord()
	require.NoError(t, r.ApplyEdit(EditFields{CarryOver: &TillCount{Bill10000: 5}}))
	require.NoError(t, r.Complete())

	err := r.ApplyEdit(EditFields{Deposit: &DepositCount{Bill1000: 1}})
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidState(err))
}

func TestCompleteOnlyFromDrafting(t *testing.T) {
	r := newTestRecord()

	err := r.Complete()
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidState(err))

	require.NoError(t, r.ApplyEdit(EditFields{CarryOver: &TillCount{Bill1000: 1}}))
	require.NoError(t, r.Complete())
	assert.Equal(t, StatusComplete, r.Status)

	assert.Error(t, r.Complete())
}

func TestMorningCheckComputesShortage(t *testing.T) {
	r := newTestRecord()
	require.NoError(t, r.ApplyEdit(EditFields{CarryOver: &TillCount{Bill10000: 5}}))
	require.NoError(t, r.Complete())

	// Morning recount finds 49000 against a 50000 carry-over.
	r.RecordMorningCheck(TillCount{Bill10000: 4, Bill5000: 1, Bill2000: 2}, "opener-1", time.Now())

	assert.EqualValues(t, 49000, r.MorningCheck.Total)
	assert.True(t, r.Discrepancy.HasDiscrepancy)
	assert.EqualValues(t, -1000, r.Discrepancy.Amount)
	require.NotNil(t, r.MorningCheck.CheckedBy)
	assert.Equal(t, "opener-1", *r.MorningCheck.CheckedBy)
}

func TestMorningCheckMatchingTill(t *testing.T) {
	r := newTestRecord()
	require.NoError(t, r.ApplyEdit(EditFields{CarryOver: &TillCount{Bill10000: 5}}))

	r.RecordMorningCheck(TillCount{Bill10000: 5}, "opener-1", time.Now())

	assert.False(t, r.Discrepancy.HasDiscrepancy)
	assert.EqualValues(t, 0, r.Discrepancy.Amount)
}

func TestDiscrepancyNeedsBothTotals(t *testing.T) {
	r := newTestRecord()

	// Morning check without a recorded carry-over never flags a discrepancy.
	r.RecordMorningCheck(TillCount{Bill10000: 3}, "opener-1", time.Now())
	assert.False(t, r.Discrepancy.HasDiscrepancy)
	assert.EqualValues(t, 0, r.Discrepancy.Amount)

	// Once the carry-over is known the comparison becomes real.
	require.NoError(t, r.ApplyEdit(EditFields{CarryOver: &TillCount{Bill10000: 3}}))
	assert.False(t, r.Discrepancy.HasDiscrepancy)

	require.NoError(t, r.ApplyEdit(EditFields{CarryOver: &TillCount{Bill10000: 4}}))
	assert.True(t, r.Discrepancy.HasDiscrepancy)
	assert.EqualValues(t, -10000, r.Discrepancy.Amount)
}

func TestDiscrepancyNoteSurvivesRecalculate(t *testing.T) {
	r := newTestRecord()
	require.NoError(t, r.ApplyEdit(EditFields{
		CarryOver:       &TillCount{Bill10000: 5},
		DiscrepancyNote: strPtr("till counted twice"),
	}))

	r.RecordMorningCheck(TillCount{Bill10000: 4}, "opener-1", time.Now())

	assert.Equal(t, "till counted twice", r.Discrepancy.Note)
	assert.True(t, r.Discrepancy.HasDiscrepancy)
}

func strPtr(v string) *string { return &v }
