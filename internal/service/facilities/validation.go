package facilities

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/internal/service/facilities/models"
	"github.com/m04kA/SMC-FacilityService/pkg/types"
)

// validateFacilityFields проверяет общие поля запросов на создание и обновление
func validateFacilityFields(name, facilityType string, capacity *int, windows []models.TimeWindowDTO) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxFacilityNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxFacilityNameLength)
	}

	if !domain.IsValidFacilityType(facilityType) {
		return fmt.Errorf("%w: unknown facility type: %s", ErrInvalidInput, facilityType)
	}

	if capacity != nil && *capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}

	return validateWindows(windows)
}

// validateWindows проверяет окна доступности: формат времени, допустимый
// день недели, начало раньше конца и отсутствие пересечений в рамках дня
func validateWindows(windows []models.TimeWindowDTO) error {
	for i, w := range windows {
		if !domain.IsValidDayOfWeek(w.DayOfWeek) {
			return fmt.Errorf("%w: window %d: unknown dayOfWeek: %s", ErrInvalidInput, i, w.DayOfWeek)
		}

		start := types.TimeString(w.StartTime)
		end := types.TimeString(w.EndTime)

		if err := start.Validate(); err != nil {
			return fmt.Errorf("%w: window %d: startTime: %v", ErrInvalidInput, i, err)
		}
		if err := end.Validate(); err != nil {
			return fmt.Errorf("%w: window %d: endTime: %v", ErrInvalidInput, i, err)
		}
		if !start.IsBefore(end) {
			return fmt.Errorf("%w: window %d: startTime must be before endTime", ErrInvalidInput, i)
		}
	}

	// Окна одного дня не должны пересекаться
	for i := 0; i < len(windows); i++ {
		for j := i + 1; j < len(windows); j++ {
			if windows[i].DayOfWeek != windows[j].DayOfWeek {
				continue
			}
			si, ei := types.TimeString(windows[i].StartTime), types.TimeString(windows[i].EndTime)
			sj, ej := types.TimeString(windows[j].StartTime), types.TimeString(windows[j].EndTime)
			if si.IsBefore(ej) && sj.IsBefore(ei) {
				return fmt.Errorf("%w: windows %d and %d overlap on %s", ErrInvalidInput, i, j, windows[i].DayOfWeek)
			}
		}
	}

	return nil
}
