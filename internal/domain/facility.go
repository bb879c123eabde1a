package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FacilityService/pkg/types"
)

// FacilityType represents the category of a bookable campus resource
type FacilityType string

const (
	TypeLectureHall    FacilityType = "lecture_hall"
	TypeLab            FacilityType = "lab"
	TypeMeetingRoom    FacilityType = "meeting_room"
	TypeProjector      FacilityType = "projector"
	TypeCamera         FacilityType = "camera"
	TypeOtherEquipment FacilityType = "other_equipment"
)

// FacilityStatus represents the operational status of a facility
type FacilityStatus string

const (
	FacilityActive       FacilityStatus = "active"
	FacilityOutOfService FacilityStatus = "out_of_service"
)

// TimeWindow is a recurring weekly time range during which a facility
// may be booked. Windows never span midnight.
type TimeWindow struct {
	DayOfWeek string           `json:"dayOfWeek"` // "MONDAY" ... "SUNDAY"
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
}

// Matches returns true if the window applies to the given weekday
func (w TimeWindow) Matches(day time.Weekday) bool {
	return w.DayOfWeek == DayOfWeek(day)
}

// Contains returns true if [start, end] lies entirely inside the window
func (w TimeWindow) Contains(start, end types.TimeString) bool {
	return !w.StartTime.IsAfter(start) && !end.IsAfter(w.EndTime)
}

// Facility represents a bookable campus resource
// (lecture hall, lab, meeting room, or equipment)
type Facility struct {
	ID          uuid.UUID
	Name        string
	Type        FacilityType
	Description *string
	Capacity    *int
	Location    *string
	Status      FacilityStatus

	// Пустой список означает отсутствие ограничений ("всегда открыт")
	AvailabilityWindows []TimeWindow

	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the facility accepts new bookings
func (f *Facility) IsActive() bool {
	return f.Status == FacilityActive
}

// AlwaysOpen returns true if no availability windows are configured
func (f *Facility) AlwaysOpen() bool {
	return len(f.AvailabilityWindows) == 0
}

// WindowsForDay returns the availability windows for the given weekday
func (f *Facility) WindowsForDay(day time.Weekday) []TimeWindow {
	windows := make([]TimeWindow, 0)
	for _, w := range f.AvailabilityWindows {
		if w.Matches(day) {
			windows = append(windows, w)
		}
	}
	return windows
}

// FacilitiesFilter фильтр для списка ресурсов
type FacilitiesFilter struct {
	Type   *FacilityType
	Status *FacilityStatus
}
