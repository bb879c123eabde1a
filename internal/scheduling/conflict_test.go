package scheduling

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/pkg/types"
)

var facilityID = uuid.New()

func booking(facility uuid.UUID, date time.Time, start, end string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          uuid.New(),
		FacilityID:  facility,
		UserID:      "user-1",
		BookingDate: date,
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		Status:      status,
	}
}

func TestFindConflict_OverlapDetection(t *testing.T) {
	existing := []*domain.Booking{
		booking(facilityID, monday, "09:00", "10:00", domain.StatusPending),
	}

	tests := []struct {
		name       string
		start, end string
		conflict   bool
	}{
		{"partial overlap from behind", "09:30", "10:30", true},
		{"partial overlap from front", "08:30", "09:30", true},
		{"candidate contains existing", "08:00", "11:00", true},
		{"existing contains candidate", "09:15", "09:45", true},
		{"identical interval", "09:00", "10:00", true},
		{"touching at existing end", "10:00", "11:00", false},
		{"touching at existing start", "08:00", "09:00", false},
		{"disjoint before", "07:00", "08:00", false},
		{"disjoint after", "11:00", "12:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := booking(facilityID, monday, tt.start, tt.end, domain.StatusPending)
			got := FindConflict(candidate, existing)
			if tt.conflict {
				assert.NotNil(t, got)
				assert.Equal(t, existing[0].ID, got.ID)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestFindConflict_IgnoresOtherFacilityAndDate(t *testing.T) {
	candidate := booking(facilityID, monday, "09:00", "10:00", domain.StatusPending)

	otherFacility := booking(uuid.New(), monday, "09:00", "10:00", domain.StatusApproved)
	otherDate := booking(facilityID, monday.AddDate(0, 0, 1), "09:00", "10:00", domain.StatusApproved)

	assert.Nil(t, FindConflict(candidate, []*domain.Booking{otherFacility, otherDate}))
}

func TestFindConflict_IgnoresInactiveStatuses(t *testing.T) {
	candidate := booking(facilityID, monday, "09:00", "10:00", domain.StatusPending)

	existing := []*domain.Booking{
		booking(facilityID, monday, "09:00", "10:00", domain.StatusRejected),
		booking(facilityID, monday, "09:00", "10:00", domain.StatusCancelled),
	}
	assert.Nil(t, FindConflict(candidate, existing))

	// Тот же интервал со статусом APPROVED конфликтует
	existing = append(existing, booking(facilityID, monday, "09:30", "10:30", domain.StatusApproved))
	got := FindConflict(candidate, existing)
	assert.NotNil(t, got)
	assert.Equal(t, domain.StatusApproved, got.Status)
}

func TestFindConflictExcluding_SkipsOwnID(t *testing.T) {
	self := booking(facilityID, monday, "09:00", "10:00", domain.StatusPending)

	// Повторная проверка при approve: бронирование не конфликтует само с собой
	assert.Nil(t, FindConflictExcluding(self, []*domain.Booking{self}, self.ID))

	other := booking(facilityID, monday, "09:30", "10:30", domain.StatusApproved)
	got := FindConflictExcluding(self, []*domain.Booking{self, other}, self.ID)
	assert.NotNil(t, got)
	assert.Equal(t, other.ID, got.ID)
}

func TestFindConflict_ReturnsFirstConflicting(t *testing.T) {
	first := booking(facilityID, monday, "09:00", "10:00", domain.StatusPending)
	second := booking(facilityID, monday, "09:30", "10:30", domain.StatusPending)

	candidate := booking(facilityID, monday, "09:15", "09:45", domain.StatusPending)
	got := FindConflict(candidate, []*domain.Booking{first, second})
	assert.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID)
}
