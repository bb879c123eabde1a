package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-FacilityService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-FacilityService/internal/notifier"
	"github.com/m04kA/SMC-FacilityService/internal/service/bookings/models"
	"github.com/m04kA/SMC-FacilityService/pkg/ptr"
	"github.com/m04kA/SMC-FacilityService/pkg/types"
)

type fakeRepo struct {
	booking   *domain.Booking
	getErr    error
	list      []*domain.Booking
	listErr   error
	updateErr error
	deleteErr error

	updatedTo   domain.BookingStatus
	updatedFrom []domain.BookingStatus
	deletedID   uuid.UUID
	filter      domain.BookingsFilter
}

func (f *fakeRepo) GetByID(_ context.Context, _ uuid.UUID) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	b := *f.booking
	return &b, nil
}

func (f *fakeRepo) ListByUser(_ context.Context, _ string, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

func (f *fakeRepo) ListWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.filter = filter
	return f.list, nil
}

func (f *fakeRepo) UpdateStatusFrom(_ context.Context, _ uuid.UUID, to domain.BookingStatus, from ...domain.BookingStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedTo = to
	f.updatedFrom = from
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

type fakeNotifier struct {
	events []notifier.Event
}

func (f *fakeNotifier) PublishBookingEvent(_ context.Context, event notifier.Event) error {
	f.events = append(f.events, event)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var (
	owner = domain.Actor{ID: "user-1", Role: domain.RoleUser}
	admin = domain.Actor{ID: "admin-1", Role: domain.RoleAdmin}
	other = domain.Actor{ID: "user-2", Role: domain.RoleUser}
)

func sampleBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          uuid.New(),
		FacilityID:  uuid.New(),
		UserID:      owner.ID,
		BookingDate: time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("10:00"),
		EndTime:     types.TimeString("11:00"),
		Status:      status,
	}
}

func TestGetByID_Owner(t *testing.T) {
	b := sampleBooking(domain.StatusPending)
	svc := NewService(&fakeRepo{booking: b}, &fakeNotifier{}, noopLogger{})

	resp, err := svc.GetByID(context.Background(), b.ID, owner)

	require.NoError(t, err)
	assert.Equal(t, b.ID, resp.ID)
}

func TestGetByID_Admin(t *testing.T) {
	b := sampleBooking(domain.StatusPending)
	svc := NewService(&fakeRepo{booking: b}, &fakeNotifier{}, noopLogger{})

	_, err := svc.GetByID(context.Background(), b.ID, admin)

	assert.NoError(t, err)
}

func TestGetByID_Stranger(t *testing.T) {
	b := sampleBooking(domain.StatusPending)
	svc := NewService(&fakeRepo{booking: b}, &fakeNotifier{}, noopLogger{})

	_, err := svc.GetByID(context.Background(), b.ID, other)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{getErr: bookingRepo.ErrBookingNotFound}, &fakeNotifier{}, noopLogger{})

	_, err := svc.GetByID(context.Background(), uuid.New(), owner)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings(t *testing.T) {
	list := []*domain.Booking{sampleBooking(domain.StatusPending), sampleBooking(domain.StatusApproved)}
	svc := NewService(&fakeRepo{list: list}, &fakeNotifier{}, noopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: owner.ID,
		Actor:  owner,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}

func TestGetUserBookings_ForeignHistory(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeNotifier{}, noopLogger{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: owner.ID,
		Actor:  other,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeNotifier{}, noopLogger{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: owner.ID,
		Actor:  owner,
		Status: ptr.Ptr("confirmed"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListBookings_AdminOnly(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeNotifier{}, noopLogger{})

	_, err := svc.ListBookings(context.Background(), &models.ListBookingsRequest{Actor: owner})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestListBookings_Filter(t *testing.T) {
	repo := &fakeRepo{list: []*domain.Booking{sampleBooking(domain.StatusRejected)}}
	svc := NewService(repo, &fakeNotifier{}, noopLogger{})

	facilityID := uuid.New()
	resp, err := svc.ListBookings(context.Background(), &models.ListBookingsRequest{
		Actor:           admin,
		FacilityID:      &facilityID,
		Status:          ptr.Ptr("rejected"),
		IncludeInactive: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.NotNil(t, repo.filter.Status)
	assert.Equal(t, domain.StatusRejected, *repo.filter.Status)
	assert.True(t, repo.filter.IncludeInactive)
}

func TestCancel_ByOwner(t *testing.T) {
	b := sampleBooking(domain.StatusApproved)
	repo := &fakeRepo{booking: b}
	notif := &fakeNotifier{}
	svc := NewService(repo, notif, noopLogger{})

	resp, err := svc.Cancel(context.Background(), b.ID, owner)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, domain.StatusCancelled, repo.updatedTo)
	assert.Equal(t, []domain.BookingStatus{domain.StatusApproved}, repo.updatedFrom)

	require.Len(t, notif.events, 1)
	assert.Equal(t, notifier.EventBookingCancelled, notif.events[0].Type)
}

func TestCancel_ByStranger(t *testing.T) {
	b := sampleBooking(domain.StatusPending)
	svc := NewService(&fakeRepo{booking: b}, &fakeNotifier{}, noopLogger{})

	_, err := svc.Cancel(context.Background(), b.ID, other)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_Terminal(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusRejected, domain.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			b := sampleBooking(status)
			svc := NewService(&fakeRepo{booking: b}, &fakeNotifier{}, noopLogger{})

			_, err := svc.Cancel(context.Background(), b.ID, owner)

			assert.ErrorIs(t, err, ErrCannotCancel)
		})
	}
}

func TestCancel_ConcurrentStatusChange(t *testing.T) {
	b := sampleBooking(domain.StatusPending)
	repo := &fakeRepo{booking: b, updateErr: bookingRepo.ErrStatusChanged}
	svc := NewService(repo, &fakeNotifier{}, noopLogger{})

	_, err := svc.Cancel(context.Background(), b.ID, owner)

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestDelete_AdminOnly(t *testing.T) {
	b := sampleBooking(domain.StatusCancelled)
	repo := &fakeRepo{booking: b}
	svc := NewService(repo, &fakeNotifier{}, noopLogger{})

	err := svc.Delete(context.Background(), b.ID, owner)
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.Delete(context.Background(), b.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, b.ID, repo.deletedID)
}
