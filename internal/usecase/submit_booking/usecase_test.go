package submit_booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/internal/infra/storage/facility"
	"github.com/m04kA/SMC-FacilityService/internal/integrations/userservice"
	"github.com/m04kA/SMC-FacilityService/internal/notifier"
	"github.com/m04kA/SMC-FacilityService/pkg/ptr"
	"github.com/m04kA/SMC-FacilityService/pkg/types"
)

type fakeBookingRepo struct {
	existing  []*domain.Booking
	listErr   error
	createErr error
	created   *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *b
	out.ID = uuid.New()
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	f.created = &out
	return &out, nil
}

func (f *fakeBookingRepo) ListForSlot(_ context.Context, _ uuid.UUID, _ time.Time, _ []domain.BookingStatus) ([]*domain.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.existing, nil
}

type fakeFacilityRepo struct {
	facility *domain.Facility
	err      error
}

func (f *fakeFacilityRepo) GetByID(_ context.Context, _ uuid.UUID) (*domain.Facility, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.facility, nil
}

type fakeUserClient struct {
	user *userservice.User
	err  error
}

func (f *fakeUserClient) GetUserWithGracefulDegradation(_ context.Context, _ string) (*userservice.User, error) {
	return f.user, f.err
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeNotifier struct {
	events []notifier.Event
	err    error
}

func (f *fakeNotifier) PublishBookingEvent(_ context.Context, event notifier.Event) error {
	if f.err != nil {
		return f.err
	}
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
	// 2025-11-10 — понедельник
	monday   = time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	fixedNow = time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC)
)

func activeFacility(windows ...domain.TimeWindow) *domain.Facility {
	return &domain.Facility{
		ID:                  uuid.New(),
		Name:                "Лекционный зал A-101",
		Type:                domain.TypeLectureHall,
		Status:              domain.FacilityActive,
		AvailabilityWindows: windows,
	}
}

func validRequest(facilityID uuid.UUID) Request {
	return Request{
		FacilityID: facilityID,
		Actor:      domain.Actor{ID: "user-1", Role: domain.RoleUser},
		Date:       monday,
		StartTime:  types.TimeString("10:00"),
		EndTime:    types.TimeString("11:00"),
		Purpose:    "Семинар по распределённым системам",
	}
}

func newUseCase(bookings *fakeBookingRepo, facilities *fakeFacilityRepo, users *fakeUserClient, notif *fakeNotifier) *UseCase {
	return New(bookings, facilities, users, &fakeTxManager{}, notif, time.UTC, noopLogger{}).
		WithTimeProvider(&fakeTimeProvider{now: fixedNow})
}

func TestExecute_Success(t *testing.T) {
	fac := activeFacility()
	bookings := &fakeBookingRepo{}
	notif := &fakeNotifier{}
	users := &fakeUserClient{user: &userservice.User{ID: "user-1", Name: "Иван Петров", Email: "ivan@example.com"}}

	uc := newUseCase(bookings, &fakeFacilityRepo{facility: fac}, users, notif)

	resp, err := uc.Execute(context.Background(), validRequest(fac.ID))

	require.NoError(t, err)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, domain.StatusPending, resp.Booking.Status)
	assert.Equal(t, fac.Name, resp.Booking.FacilityName)
	require.NotNil(t, resp.Booking.UserName)
	assert.Equal(t, "Иван Петров", *resp.Booking.UserName)
	assert.Nil(t, resp.Booking.ReviewedBy)
	assert.Nil(t, resp.Booking.ReviewedAt)

	require.Len(t, notif.events, 1)
	assert.Equal(t, notifier.EventBookingSubmitted, notif.events[0].Type)
	assert.Equal(t, resp.Booking.ID, notif.events[0].BookingID)
}

func TestExecute_UserServiceDown_ProceedsWithoutProfile(t *testing.T) {
	fac := activeFacility()
	bookings := &fakeBookingRepo{}
	users := &fakeUserClient{err: userservice.ErrServiceDegraded}

	uc := newUseCase(bookings, &fakeFacilityRepo{facility: fac}, users, &fakeNotifier{})

	resp, err := uc.Execute(context.Background(), validRequest(fac.ID))

	require.NoError(t, err)
	assert.Nil(t, resp.Booking.UserName)
	assert.Nil(t, resp.Booking.UserEmail)
}

func TestExecute_SlotConflict(t *testing.T) {
	fac := activeFacility()
	conflicting := &domain.Booking{
		ID:          uuid.New(),
		FacilityID:  fac.ID,
		BookingDate: monday,
		StartTime:   types.TimeString("10:30"),
		EndTime:     types.TimeString("11:30"),
		Status:      domain.StatusApproved,
	}
	bookings := &fakeBookingRepo{existing: []*domain.Booking{conflicting}}

	uc := newUseCase(bookings, &fakeFacilityRepo{facility: fac}, &fakeUserClient{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest(fac.ID))

	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, bookings.created)
}

func TestExecute_TouchingSlots_NoConflict(t *testing.T) {
	fac := activeFacility()
	adjacent := &domain.Booking{
		ID:          uuid.New(),
		FacilityID:  fac.ID,
		BookingDate: monday,
		StartTime:   types.TimeString("09:00"),
		EndTime:     types.TimeString("10:00"),
		Status:      domain.StatusApproved,
	}
	bookings := &fakeBookingRepo{existing: []*domain.Booking{adjacent}}

	uc := newUseCase(bookings, &fakeFacilityRepo{facility: fac}, &fakeUserClient{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest(fac.ID))

	assert.NoError(t, err)
}

func TestExecute_OutsideAvailability(t *testing.T) {
	fac := activeFacility(domain.TimeWindow{
		DayOfWeek: "MONDAY",
		StartTime: types.TimeString("14:00"),
		EndTime:   types.TimeString("18:00"),
	})

	uc := newUseCase(&fakeBookingRepo{}, &fakeFacilityRepo{facility: fac}, &fakeUserClient{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest(fac.ID))

	assert.ErrorIs(t, err, ErrOutsideAvailability)
}

func TestExecute_FacilityInactive(t *testing.T) {
	fac := activeFacility()
	fac.Status = domain.FacilityOutOfService

	uc := newUseCase(&fakeBookingRepo{}, &fakeFacilityRepo{facility: fac}, &fakeUserClient{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest(fac.ID))

	assert.ErrorIs(t, err, ErrFacilityInactive)
}

func TestExecute_FacilityNotFound(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{}, &fakeFacilityRepo{err: facility.ErrFacilityNotFound}, &fakeUserClient{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest(uuid.New()))

	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestExecute_PastDate(t *testing.T) {
	fac := activeFacility()
	req := validRequest(fac.ID)
	req.Date = fixedNow.AddDate(0, 0, -1)

	uc := newUseCase(&fakeBookingRepo{}, &fakeFacilityRepo{facility: fac}, &fakeUserClient{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_Validation(t *testing.T) {
	facilityID := uuid.New()

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{
			name:   "missing facility id",
			mutate: func(r *Request) { r.FacilityID = uuid.Nil },
		},
		{
			name:   "missing user id",
			mutate: func(r *Request) { r.Actor.ID = "" },
		},
		{
			name:   "start after end",
			mutate: func(r *Request) { r.StartTime = "12:00"; r.EndTime = "10:00" },
		},
		{
			name:   "start equals end",
			mutate: func(r *Request) { r.StartTime = "10:00"; r.EndTime = "10:00" },
		},
		{
			name:   "bad time format",
			mutate: func(r *Request) { r.StartTime = "25:00" },
		},
		{
			name:   "blank purpose",
			mutate: func(r *Request) { r.Purpose = "   " },
		},
		{
			name:   "non-positive attendees",
			mutate: func(r *Request) { r.ExpectedAttendees = ptr.Ptr(0) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(facilityID)
			tt.mutate(&req)

			uc := newUseCase(&fakeBookingRepo{}, &fakeFacilityRepo{facility: activeFacility()}, &fakeUserClient{}, &fakeNotifier{})

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_NotifierFailure_DoesNotFail(t *testing.T) {
	fac := activeFacility()
	notif := &fakeNotifier{err: assert.AnError}

	uc := newUseCase(&fakeBookingRepo{}, &fakeFacilityRepo{facility: fac}, &fakeUserClient{}, notif)

	resp, err := uc.Execute(context.Background(), validRequest(fac.ID))

	require.NoError(t, err)
	assert.NotNil(t, resp.Booking)
}
