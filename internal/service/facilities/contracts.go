package facilities

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

// FacilityRepository интерфейс репозитория ресурсов
type FacilityRepository interface {
	Create(ctx context.Context, f *domain.Facility) (*domain.Facility, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Facility, error)
	List(ctx context.Context, filter domain.FacilitiesFilter) ([]*domain.Facility, error)
	Update(ctx context.Context, f *domain.Facility) (*domain.Facility, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.FacilityStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
