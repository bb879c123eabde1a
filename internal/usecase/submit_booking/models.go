package submit_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/pkg/types"
)

// Request запрос на создание бронирования
type Request struct {
	FacilityID        uuid.UUID
	Actor             domain.Actor
	Date              time.Time
	StartTime         types.TimeString
	EndTime           types.TimeString
	Purpose           string
	ExpectedAttendees *int
}

// Response результат создания бронирования
type Response struct {
	Booking *domain.Booking
}
