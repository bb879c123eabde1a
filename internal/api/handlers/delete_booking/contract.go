package delete_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

type BookingService interface {
	Delete(ctx context.Context, bookingID uuid.UUID, actor domain.Actor) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
