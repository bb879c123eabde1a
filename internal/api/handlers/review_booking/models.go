package review_booking

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/internal/service/bookings/models"
	reviewBooking "github.com/m04kA/SMC-FacilityService/internal/usecase/review_booking"
)

// ReviewBookingRequest HTTP request model
type ReviewBookingRequest struct {
	Decision string  `json:"decision"` // "approve" | "reject"
	Remarks  *string `json:"remarks,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReviewBookingRequest) ToUseCaseRequest(bookingID uuid.UUID, actor domain.Actor) reviewBooking.Request {
	return reviewBooking.Request{
		BookingID: bookingID,
		Actor:     actor,
		Decision:  reviewBooking.Decision(r.Decision),
		Remarks:   r.Remarks,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reviewBooking.Response) *models.BookingResponse {
	return models.FromDomainBooking(resp.Booking)
}
