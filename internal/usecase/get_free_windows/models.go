package get_free_windows

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FacilityService/pkg/types"
)

// Request запрос свободных окон ресурса на дату
type Request struct {
	FacilityID uuid.UUID
	Date       time.Time
}

// FreeWindow свободный интервал времени в пределах дня
type FreeWindow struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Response список свободных окон, отсортированный по времени начала
type Response struct {
	FacilityID uuid.UUID
	Date       time.Time
	Windows    []FreeWindow
}
