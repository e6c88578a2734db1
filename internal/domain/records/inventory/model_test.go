package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/apperror"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/id"
)

func intPtr(v int64) *int64   { return &v }
func strPtr(v string) *string { return &v }

func newTestRecord(prevClosing int64) *Record {
	return NewRecord(id.New(), id.New(), time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), prevClosing)
}

func TestNewRecordStartsPending(t *testing.T) {
	r := newTestRecord(100)

	assert.Equal(t, StatusPending, r.Status)
	assert.EqualValues(t, 100, r.PreviousClosingStock)
	assert.EqualValues(t, 0, r.Discrepancy)
	assert.Equal(t, 1, r.Version)
}

func TestApplyEditComputesDiscrepancy(t *testing.T) {
	r := newTestRecord(100)

	err := r.ApplyEdit(EditFields{MorningStock: intPtr(95)})
	require.NoError(t, err)

	assert.EqualValues(t, -5, r.Discrepancy)
	assert.Equal(t, StatusDrafting, r.Status)
}

func TestApplyEditLeavesDiscrepancyWhenMorningUntouched(t *testing.T) {
	r := newTestRecord(100)
	require.NoError(t, r.ApplyEdit(EditFields{MorningStock: intPtr(95)}))

	err := r.ApplyEdit(EditFields{ClosingStock: intPtr(40), Notes: strPtr("restock delayed")})
	require.NoError(t, err)

	assert.EqualValues(t, -5, r.Discrepancy)
	assert.EqualValues(t, 40, r.ClosingStock)
	assert.Equal(t, "restock delayed", r.Notes)
}

func TestApplyEditRejectedAfterSubmission(t *testing.T) {
	r := newTestRecord(0)
	require.NoError(t, r.Submit("staff-1", time.Now()))

	err := r.ApplyEdit(EditFields{MorningStock: intPtr(3)})
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidState(err))
}

func TestSubmitRequiresDiscrepancyReason(t *testing.T) {
	r := newTestRecord(100)
	require.NoError(t, r.ApplyEdit(EditFields{MorningStock: intPtr(95)}))

	err := r.Submit("staff-1", time.Now())
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)

	// A whitespace-only reason does not count.
	require.NoError(t, r.ApplyEdit(EditFields{DiscrepancyReason: strPtr("   ")}))
	require.Error(t, r.Submit("staff-1", time.Now()))

	require.NoError(t, r.ApplyEdit(EditFields{DiscrepancyReason: strPtr("damaged in storage")}))
	require.NoError(t, r.Submit("staff-1", time.Now()))
	assert.Equal(t, StatusPendingApproval, r.Status)
	require.NotNil(t, r.SubmittedBy)
	assert.Equal(t, "staff-1", *r.SubmittedBy)
}

func TestSubmitWithZeroDiscrepancyNeedsNoReason(t *testing.T) {
	r := newTestRecord(100)
	require.NoError(t, r.ApplyEdit(EditFields{MorningStock: intPtr(100)}))

	require.NoError(t, r.Submit("staff-1", time.Now()))
	assert.Equal(t, StatusPendingApproval, r.Status)
}

func TestSubmitOnlyFromEditableStates(t *testing.T) {
	r := newTestRecord(0)
	require.NoError(t, r.Submit("staff-1", time.Now()))

	err := r.Submit("staff-1", time.Now())
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidState(err))
}

func TestApproveTransitions(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(*Record)
		wantErr bool
	}{
		{
			name:    "pending cannot be approved",
			prepare: func(r *Record) {},
			wantErr: true,
		},
		{
			name: "drafting cannot be approved",
			prepare: func(r *Record) {
				_ = r.ApplyEdit(EditFields{MorningStock: intPtr(0)})
			},
			wantErr: true,
		},
		{
			name: "pending approval can be approved",
			prepare: func(r *Record) {
				_ = r.Submit("staff-1", time.Now())
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRecord(0)
			tt.prepare(r)

			err := r.Approve("manager-1", time.Now())
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperror.IsInvalidState(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StatusApproved, r.Status)
			require.NotNil(t, r.ApprovedBy)
			assert.Equal(t, "manager-1", *r.ApprovedBy)
		})
	}
}

func TestApprovedIsTerminal(t *testing.T) {
	r := newTestRecord(0)
	require.NoError(t, r.Submit("staff-1", time.Now()))
	require.NoError(t, r.Approve("manager-1", time.Now()))

	assert.Error(t, r.Approve("manager-1", time.Now()))
	assert.Error(t, r.Reject("manager-1", "late", time.Now()))
	assert.Error(t, r.ApplyEdit(EditFields{Notes: strPtr("x")}))
}

func TestRejectRequiresReason(t *testing.T) {
	r := newTestRecord(0)
	require.NoError(t, r.Submit("staff-1", time.Now()))

	err := r.Reject("manager-1", "  ", time.Now())
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)

	require.NoError(t, r.Reject("manager-1", "counts do not match delivery note", time.Now()))
	assert.Equal(t, StatusRejected, r.Status)
	assert.Equal(t, "counts do not match delivery note", r.RejectionReason)
	assert.True(t, r.Status.Terminal())
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, StatusPending.Editable())
	assert.True(t, StatusDrafting.Editable())
	assert.False(t, StatusPendingApproval.Editable())
	assert.False(t, StatusApproved.Editable())
	assert.False(t, StatusRejected.Editable())

	assert.True(t, StatusApproved.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.False(t, StatusPendingApproval.Terminal())

	assert.True(t, StatusPending.Valid())
	assert.False(t, Status("archived").Valid())
}
