package review_booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-FacilityService/internal/notifier"
	"github.com/m04kA/SMC-FacilityService/pkg/ptr"
	"github.com/m04kA/SMC-FacilityService/pkg/types"
)

type fakeBookingRepo struct {
	booking   *domain.Booking
	getErr    error
	approved  []*domain.Booking
	listErr   error
	reviewErr error

	reviewedFrom domain.BookingStatus
	reviewedTo   domain.BookingStatus
	reviewedBy   string
	remarks      *string
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ uuid.UUID) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	b := *f.booking
	return &b, nil
}

func (f *fakeBookingRepo) ListForSlot(_ context.Context, _ uuid.UUID, _ time.Time, _ []domain.BookingStatus) ([]*domain.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.approved, nil
}

func (f *fakeBookingRepo) Review(_ context.Context, _ uuid.UUID, from, to domain.BookingStatus, reviewedBy string, _ time.Time, remarks *string) error {
	if f.reviewErr != nil {
		return f.reviewErr
	}
	f.reviewedFrom = from
	f.reviewedTo = to
	f.reviewedBy = reviewedBy
	f.remarks = remarks
	return nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeNotifier struct {
	events []notifier.Event
}

func (f *fakeNotifier) PublishBookingEvent(_ context.Context, event notifier.Event) error {
	f.events = append(f.events, event)
	return nil
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var (
	monday   = time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	fixedNow = time.Date(2025, 11, 5, 9, 30, 0, 0, time.UTC)
	admin    = domain.Actor{ID: "admin-1", Role: domain.RoleAdmin}
)

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:          uuid.New(),
		FacilityID:  uuid.New(),
		UserID:      "user-1",
		BookingDate: monday,
		StartTime:   types.TimeString("10:00"),
		EndTime:     types.TimeString("11:00"),
		Status:      domain.StatusPending,
	}
}

func newUseCase(repo *fakeBookingRepo, notif *fakeNotifier) *UseCase {
	return New(repo, &fakeTxManager{}, notif, noopLogger{}).
		WithTimeProvider(&fakeTimeProvider{now: fixedNow})
}

func TestExecute_Approve(t *testing.T) {
	b := pendingBooking()
	repo := &fakeBookingRepo{booking: b}
	notif := &fakeNotifier{}

	uc := newUseCase(repo, notif)

	resp, err := uc.Execute(context.Background(), Request{
		BookingID: b.ID,
		Actor:     admin,
		Decision:  DecisionApprove,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, resp.Booking.Status)
	require.NotNil(t, resp.Booking.ReviewedBy)
	assert.Equal(t, admin.ID, *resp.Booking.ReviewedBy)
	require.NotNil(t, resp.Booking.ReviewedAt)
	assert.Equal(t, fixedNow, *resp.Booking.ReviewedAt)
	assert.Nil(t, resp.Booking.AdminRemarks)

	assert.Equal(t, domain.StatusPending, repo.reviewedFrom)
	assert.Equal(t, domain.StatusApproved, repo.reviewedTo)

	require.Len(t, notif.events, 1)
	assert.Equal(t, notifier.EventBookingApproved, notif.events[0].Type)
}

func TestExecute_Approve_ConflictWithApproved(t *testing.T) {
	b := pendingBooking()
	other := &domain.Booking{
		ID:          uuid.New(),
		FacilityID:  b.FacilityID,
		BookingDate: monday,
		StartTime:   types.TimeString("10:30"),
		EndTime:     types.TimeString("12:00"),
		Status:      domain.StatusApproved,
	}
	repo := &fakeBookingRepo{booking: b, approved: []*domain.Booking{other}}

	uc := newUseCase(repo, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), Request{
		BookingID: b.ID,
		Actor:     admin,
		Decision:  DecisionApprove,
	})

	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_Reject(t *testing.T) {
	b := pendingBooking()
	repo := &fakeBookingRepo{booking: b}
	notif := &fakeNotifier{}

	uc := newUseCase(repo, notif)

	resp, err := uc.Execute(context.Background(), Request{
		BookingID: b.ID,
		Actor:     admin,
		Decision:  DecisionReject,
		Remarks:   ptr.Ptr("Зал занят под ремонт"),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, resp.Booking.Status)
	require.NotNil(t, resp.Booking.AdminRemarks)
	assert.Equal(t, "Зал занят под ремонт", *resp.Booking.AdminRemarks)

	require.Len(t, notif.events, 1)
	assert.Equal(t, notifier.EventBookingRejected, notif.events[0].Type)
}

func TestExecute_Reject_RequiresRemarks(t *testing.T) {
	b := pendingBooking()
	repo := &fakeBookingRepo{booking: b}

	uc := newUseCase(repo, &fakeNotifier{})

	tests := []struct {
		name    string
		remarks *string
	}{
		{name: "nil remarks", remarks: nil},
		{name: "blank remarks", remarks: ptr.Ptr("   ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), Request{
				BookingID: b.ID,
				Actor:     admin,
				Decision:  DecisionReject,
				Remarks:   tt.remarks,
			})

			assert.ErrorIs(t, err, ErrRemarksRequired)
		})
	}
}

func TestExecute_NonAdmin(t *testing.T) {
	b := pendingBooking()
	uc := newUseCase(&fakeBookingRepo{booking: b}, &fakeNotifier{})

	for _, role := range []domain.Role{domain.RoleUser, domain.RoleTechnician, domain.RoleManager} {
		t.Run(string(role), func(t *testing.T) {
			_, err := uc.Execute(context.Background(), Request{
				BookingID: b.ID,
				Actor:     domain.Actor{ID: "someone", Role: role},
				Decision:  DecisionApprove,
			})

			assert.ErrorIs(t, err, ErrForbidden)
		})
	}
}

func TestExecute_NotPending(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusApproved, domain.StatusRejected, domain.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			b := pendingBooking()
			b.Status = status

			uc := newUseCase(&fakeBookingRepo{booking: b}, &fakeNotifier{})

			_, err := uc.Execute(context.Background(), Request{
				BookingID: b.ID,
				Actor:     admin,
				Decision:  DecisionApprove,
			})

			assert.ErrorIs(t, err, ErrInvalidTransition)
		})
	}
}

func TestExecute_ConcurrentStatusChange(t *testing.T) {
	b := pendingBooking()
	repo := &fakeBookingRepo{booking: b, reviewErr: booking.ErrStatusChanged}

	uc := newUseCase(repo, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), Request{
		BookingID: b.ID,
		Actor:     admin,
		Decision:  DecisionApprove,
	})

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestExecute_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{getErr: booking.ErrBookingNotFound}

	uc := newUseCase(repo, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), Request{
		BookingID: uuid.New(),
		Actor:     admin,
		Decision:  DecisionApprove,
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}
