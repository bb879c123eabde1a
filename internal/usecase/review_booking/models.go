package review_booking

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

// Decision решение администратора по заявке
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Request запрос на рассмотрение бронирования
type Request struct {
	BookingID uuid.UUID
	Actor     domain.Actor
	Decision  Decision
	Remarks   *string
}

// Response результат рассмотрения
type Response struct {
	Booking *domain.Booking
}
