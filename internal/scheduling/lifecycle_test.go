package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/pkg/ptr"
)

var (
	admin = domain.Actor{ID: "admin-1", Role: domain.RoleAdmin}
	owner = domain.Actor{ID: "user-1", Role: domain.RoleUser}
	other = domain.Actor{ID: "user-2", Role: domain.RoleUser}

	reviewedAt = time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC)
)

func pendingBooking() *domain.Booking {
	return &domain.Booking{Status: domain.StatusPending, UserID: owner.ID}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from   domain.BookingStatus
		action Action
		want   bool
	}{
		{domain.StatusPending, ActionApprove, true},
		{domain.StatusPending, ActionReject, true},
		{domain.StatusPending, ActionCancel, true},
		{domain.StatusApproved, ActionCancel, true},
		{domain.StatusApproved, ActionApprove, false},
		{domain.StatusApproved, ActionReject, false},
		{domain.StatusRejected, ActionApprove, false},
		{domain.StatusRejected, ActionCancel, false},
		{domain.StatusCancelled, ActionCancel, false},
		{domain.StatusCancelled, ActionApprove, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.action),
			"from=%s action=%s", tt.from, tt.action)
	}
}

func TestApprove(t *testing.T) {
	b := pendingBooking()

	err := Approve(b, admin, nil, reviewedAt)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, b.Status)
	require.NotNil(t, b.ReviewedBy)
	assert.Equal(t, admin.ID, *b.ReviewedBy)
	require.NotNil(t, b.ReviewedAt)
	assert.Equal(t, reviewedAt, *b.ReviewedAt)
	assert.Nil(t, b.AdminRemarks)

	// Повторный approve недопустим
	err = Approve(b, admin, nil, reviewedAt)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestApprove_RequiresAdmin(t *testing.T) {
	b := pendingBooking()

	err := Approve(b, owner, nil, reviewedAt)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, domain.StatusPending, b.Status)
}

func TestReject(t *testing.T) {
	b := pendingBooking()

	err := Reject(b, admin, "facility under repair", reviewedAt)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, b.Status)
	require.NotNil(t, b.AdminRemarks)
	assert.Equal(t, "facility under repair", *b.AdminRemarks)
	require.NotNil(t, b.ReviewedBy)
	assert.Equal(t, admin.ID, *b.ReviewedBy)
}

func TestReject_RequiresRemarks(t *testing.T) {
	b := pendingBooking()

	err := Reject(b, admin, "   ", reviewedAt)
	assert.ErrorIs(t, err, ErrRemarksRequired)
	assert.Equal(t, domain.StatusPending, b.Status)
}

func TestReject_ApprovedBookingCannotBeRejected(t *testing.T) {
	b := pendingBooking()
	require.NoError(t, Approve(b, admin, nil, reviewedAt))

	err := Reject(b, admin, "changed my mind", reviewedAt)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, domain.StatusApproved, b.Status)
}

func TestCancel(t *testing.T) {
	t.Run("owner cancels pending", func(t *testing.T) {
		b := pendingBooking()
		require.NoError(t, Cancel(b, owner))
		assert.Equal(t, domain.StatusCancelled, b.Status)
		assert.Nil(t, b.ReviewedBy)
		assert.Nil(t, b.ReviewedAt)
	})

	t.Run("admin cancels approved", func(t *testing.T) {
		b := pendingBooking()
		require.NoError(t, Approve(b, admin, nil, reviewedAt))
		require.NoError(t, Cancel(b, admin))
		assert.Equal(t, domain.StatusCancelled, b.Status)
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		b := pendingBooking()
		assert.ErrorIs(t, Cancel(b, other), ErrForbidden)
		assert.Equal(t, domain.StatusPending, b.Status)
	})

	t.Run("cancelling twice fails", func(t *testing.T) {
		b := pendingBooking()
		require.NoError(t, Cancel(b, owner))
		assert.ErrorIs(t, Cancel(b, owner), ErrInvalidTransition)
	})

	t.Run("rejected booking cannot be cancelled", func(t *testing.T) {
		b := pendingBooking()
		b.AdminRemarks = ptr.Ptr("no")
		require.NoError(t, Reject(b, admin, "no", reviewedAt))
		assert.ErrorIs(t, Cancel(b, owner), ErrInvalidTransition)
	})
}
