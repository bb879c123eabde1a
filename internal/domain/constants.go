package domain

import "time"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxPurposeLength      = 500
	MaxAdminRemarksLength = 500
	MaxFacilityNameLength = 200
)

// ActiveStatuses статусы, удерживающие слот
// Используются при проверке конфликтов
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
}

// InactiveStatuses терминальные статусы, не удерживающие слот
var InactiveStatuses = []BookingStatus{
	StatusRejected,
	StatusCancelled,
}

// ValidBookingStatuses все допустимые статусы бронирования
var ValidBookingStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
	StatusRejected,
	StatusCancelled,
}

// ValidFacilityTypes все допустимые типы ресурсов
var ValidFacilityTypes = []FacilityType{
	TypeLectureHall,
	TypeLab,
	TypeMeetingRoom,
	TypeProjector,
	TypeCamera,
	TypeOtherEquipment,
}

// dayNames соответствие time.Weekday значениям dayOfWeek в окнах доступности
var dayNames = map[time.Weekday]string{
	time.Monday:    "MONDAY",
	time.Tuesday:   "TUESDAY",
	time.Wednesday: "WEDNESDAY",
	time.Thursday:  "THURSDAY",
	time.Friday:    "FRIDAY",
	time.Saturday:  "SATURDAY",
	time.Sunday:    "SUNDAY",
}

// DayOfWeek возвращает каноническое имя дня недели ("MONDAY" ... "SUNDAY")
func DayOfWeek(day time.Weekday) string {
	return dayNames[day]
}

// IsValidDayOfWeek проверяет, что строка является допустимым днем недели
func IsValidDayOfWeek(s string) bool {
	for _, name := range dayNames {
		if name == s {
			return true
		}
	}
	return false
}

// IsValidBookingStatus проверяет, что строка является допустимым статусом
func IsValidBookingStatus(s string) bool {
	for _, status := range ValidBookingStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}

// IsValidFacilityType проверяет, что строка является допустимым типом ресурса
func IsValidFacilityType(s string) bool {
	for _, t := range ValidFacilityTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}
