package scheduling

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

// FindConflict возвращает первое активное бронирование, пересекающееся
// с кандидатом по времени, или nil, если конфликтов нет.
//
// Сравниваются только бронирования того же ресурса на ту же дату со
// статусами PENDING/APPROVED. Интервалы полуоткрытые [start, end):
// s1 < e2 && s2 < e1. Касание границ (одно заканчивается ровно там,
// где начинается другое) конфликтом не считается.
func FindConflict(candidate *domain.Booking, existing []*domain.Booking) *domain.Booking {
	return FindConflictExcluding(candidate, existing, uuid.Nil)
}

// FindConflictExcluding работает как FindConflict, но пропускает бронирование
// с указанным ID. Используется при повторной проверке во время approve,
// чтобы бронирование не конфликтовало само с собой.
func FindConflictExcluding(candidate *domain.Booking, existing []*domain.Booking, excludeID uuid.UUID) *domain.Booking {
	for _, b := range existing {
		if excludeID != uuid.Nil && b.ID == excludeID {
			continue
		}
		if b.FacilityID != candidate.FacilityID {
			continue
		}
		if !sameDay(b.BookingDate, candidate.BookingDate) {
			continue
		}
		if !b.IsActive() {
			continue
		}

		if candidate.StartTime.IsBefore(b.EndTime) && b.StartTime.IsBefore(candidate.EndTime) {
			return b
		}
	}

	return nil
}

// sameDay проверяет, что две даты относятся к одному и тому же дню
func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
