package scheduling

import (
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/pkg/types"
)

// IsWithinAvailability проверяет, попадает ли интервал [start, end]
// в окна доступности ресурса на день недели указанной даты.
//
// Правила:
//   - Пустой список окон означает отсутствие ограничений, всегда true
//   - Иначе интервал должен целиком лежать хотя бы в одном окне этого дня
//   - Интервалы через полночь в этой модели невыразимы: end <= start всегда false
func IsWithinAvailability(windows []domain.TimeWindow, date time.Time, start, end types.TimeString) bool {
	if !start.IsBefore(end) {
		return false
	}

	if len(windows) == 0 {
		return true
	}

	day := date.Weekday()
	for _, w := range windows {
		if w.Matches(day) && w.Contains(start, end) {
			return true
		}
	}

	return false
}
