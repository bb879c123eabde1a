package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/internal/service/bookings/models"
	submitBooking "github.com/m04kA/SMC-FacilityService/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-FacilityService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FacilityID        string `json:"facilityId"`
	BookingDate       string `json:"bookingDate"` // "2025-11-10"
	StartTime         string `json:"startTime"`   // "10:00"
	EndTime           string `json:"endTime"`     // "11:00"
	Purpose           string `json:"purpose"`
	ExpectedAttendees *int   `json:"expectedAttendees,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(actor domain.Actor) (submitBooking.Request, error) {
	facilityID, err := uuid.Parse(r.FacilityID)
	if err != nil {
		return submitBooking.Request{}, err
	}

	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return submitBooking.Request{}, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return submitBooking.Request{}, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return submitBooking.Request{}, err
	}

	return submitBooking.Request{
		FacilityID:        facilityID,
		Actor:             actor,
		Date:              bookingDate,
		StartTime:         startTime,
		EndTime:           endTime,
		Purpose:           r.Purpose,
		ExpectedAttendees: r.ExpectedAttendees,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *models.BookingResponse {
	return models.FromDomainBooking(resp.Booking)
}
