package get_free_windows

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListForSlot(ctx context.Context, facilityID uuid.UUID, date time.Time, statuses []domain.BookingStatus) ([]*domain.Booking, error)
}

// FacilityRepository интерфейс репозитория ресурсов
type FacilityRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Facility, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
