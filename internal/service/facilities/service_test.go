package facilities

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	facilityRepo "github.com/m04kA/SMC-FacilityService/internal/infra/storage/facility"
	"github.com/m04kA/SMC-FacilityService/internal/service/facilities/models"
	"github.com/m04kA/SMC-FacilityService/pkg/ptr"
	"github.com/m04kA/SMC-FacilityService/pkg/types"
)

type fakeRepo struct {
	facility  *domain.Facility
	list      []*domain.Facility
	getErr    error
	createErr error
	updateErr error
	statusErr error

	created   *domain.Facility
	updated   *domain.Facility
	setStatus domain.FacilityStatus
	filter    domain.FacilitiesFilter
}

func (f *fakeRepo) Create(_ context.Context, fac *domain.Facility) (*domain.Facility, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *fac
	out.ID = uuid.New()
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	f.created = &out
	return &out, nil
}

func (f *fakeRepo) GetByID(_ context.Context, _ uuid.UUID) (*domain.Facility, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	fac := *f.facility
	return &fac, nil
}

func (f *fakeRepo) List(_ context.Context, filter domain.FacilitiesFilter) ([]*domain.Facility, error) {
	f.filter = filter
	return f.list, nil
}

func (f *fakeRepo) Update(_ context.Context, fac *domain.Facility) (*domain.Facility, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated = fac
	return fac, nil
}

func (f *fakeRepo) SetStatus(_ context.Context, _ uuid.UUID, status domain.FacilityStatus) error {
	if f.statusErr != nil {
		return f.statusErr
	}
	f.setStatus = status
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var (
	admin = domain.Actor{ID: "admin-1", Role: domain.RoleAdmin}
	user  = domain.Actor{ID: "user-1", Role: domain.RoleUser}
)

func createRequest() *models.CreateFacilityRequest {
	return &models.CreateFacilityRequest{
		Actor:    admin,
		Name:     "Лаборатория робототехники",
		Type:     "lab",
		Capacity: ptr.Ptr(30),
		AvailabilityWindows: []models.TimeWindowDTO{
			{DayOfWeek: "MONDAY", StartTime: "09:00", EndTime: "13:00"},
			{DayOfWeek: "MONDAY", StartTime: "14:00", EndTime: "18:00"},
		},
	}
}

func TestCreate(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Create(context.Background(), createRequest())

	require.NoError(t, err)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, admin.ID, resp.CreatedBy)
	assert.Len(t, resp.AvailabilityWindows, 2)
	assert.Equal(t, domain.FacilityActive, repo.created.Status)
}

func TestCreate_NonAdmin(t *testing.T) {
	svc := NewService(&fakeRepo{}, noopLogger{})

	req := createRequest()
	req.Actor = user

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CreateFacilityRequest)
	}{
		{
			name:   "blank name",
			mutate: func(r *models.CreateFacilityRequest) { r.Name = "  " },
		},
		{
			name:   "unknown type",
			mutate: func(r *models.CreateFacilityRequest) { r.Type = "swimming_pool" },
		},
		{
			name:   "non-positive capacity",
			mutate: func(r *models.CreateFacilityRequest) { r.Capacity = ptr.Ptr(0) },
		},
		{
			name: "bad day of week",
			mutate: func(r *models.CreateFacilityRequest) {
				r.AvailabilityWindows = []models.TimeWindowDTO{{DayOfWeek: "HOLIDAY", StartTime: "09:00", EndTime: "10:00"}}
			},
		},
		{
			name: "bad time format",
			mutate: func(r *models.CreateFacilityRequest) {
				r.AvailabilityWindows = []models.TimeWindowDTO{{DayOfWeek: "MONDAY", StartTime: "9am", EndTime: "10:00"}}
			},
		},
		{
			name: "start after end",
			mutate: func(r *models.CreateFacilityRequest) {
				r.AvailabilityWindows = []models.TimeWindowDTO{{DayOfWeek: "MONDAY", StartTime: "12:00", EndTime: "10:00"}}
			},
		},
		{
			name: "overlapping windows same day",
			mutate: func(r *models.CreateFacilityRequest) {
				r.AvailabilityWindows = []models.TimeWindowDTO{
					{DayOfWeek: "MONDAY", StartTime: "09:00", EndTime: "12:00"},
					{DayOfWeek: "MONDAY", StartTime: "11:00", EndTime: "14:00"},
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createRequest()
			tt.mutate(req)

			svc := NewService(&fakeRepo{}, noopLogger{})

			_, err := svc.Create(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreate_TouchingWindowsAllowed(t *testing.T) {
	req := createRequest()
	req.AvailabilityWindows = []models.TimeWindowDTO{
		{DayOfWeek: "MONDAY", StartTime: "09:00", EndTime: "12:00"},
		{DayOfWeek: "MONDAY", StartTime: "12:00", EndTime: "18:00"},
	}

	svc := NewService(&fakeRepo{}, noopLogger{})

	_, err := svc.Create(context.Background(), req)

	assert.NoError(t, err)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{getErr: facilityRepo.ErrFacilityNotFound}, noopLogger{})

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestList_Filter(t *testing.T) {
	repo := &fakeRepo{list: []*domain.Facility{{ID: uuid.New(), Name: "Проектор BenQ", Type: domain.TypeProjector, Status: domain.FacilityActive}}}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListFacilitiesRequest{
		Type:   ptr.Ptr("projector"),
		Status: ptr.Ptr("active"),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.NotNil(t, repo.filter.Type)
	assert.Equal(t, domain.TypeProjector, *repo.filter.Type)
}

func TestList_InvalidFilter(t *testing.T) {
	svc := NewService(&fakeRepo{}, noopLogger{})

	_, err := svc.List(context.Background(), &models.ListFacilitiesRequest{Type: ptr.Ptr("garage")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), &models.ListFacilitiesRequest{Status: ptr.Ptr("broken")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate(t *testing.T) {
	existing := &domain.Facility{
		ID:     uuid.New(),
		Name:   "Аудитория Б-202",
		Type:   domain.TypeMeetingRoom,
		Status: domain.FacilityOutOfService,
		AvailabilityWindows: []domain.TimeWindow{
			{DayOfWeek: "FRIDAY", StartTime: types.TimeString("09:00"), EndTime: types.TimeString("18:00")},
		},
	}
	repo := &fakeRepo{facility: existing}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateFacilityRequest{
		Actor: admin,
		ID:    existing.ID,
		Name:  "Аудитория Б-203",
		Type:  "meeting_room",
	})

	require.NoError(t, err)
	assert.Equal(t, "Аудитория Б-203", resp.Name)
	// Статус через Update не меняется
	assert.Equal(t, string(domain.FacilityOutOfService), resp.Status)
	assert.Empty(t, repo.updated.AvailabilityWindows)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{getErr: facilityRepo.ErrFacilityNotFound}, noopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateFacilityRequest{
		Actor: admin,
		ID:    uuid.New(),
		Name:  "Что-нибудь",
		Type:  "lab",
	})

	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestSetStatus(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, noopLogger{})

	err := svc.SetStatus(context.Background(), uuid.New(), "out_of_service", admin)

	require.NoError(t, err)
	assert.Equal(t, domain.FacilityOutOfService, repo.setStatus)
}

func TestSetStatus_Guards(t *testing.T) {
	svc := NewService(&fakeRepo{}, noopLogger{})

	err := svc.SetStatus(context.Background(), uuid.New(), "out_of_service", user)
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.SetStatus(context.Background(), uuid.New(), "retired", admin)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
