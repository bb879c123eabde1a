package get_free_windows

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/internal/infra/storage/facility"
	"github.com/m04kA/SMC-FacilityService/pkg/types"
)

// fullDayEnd конец суток для ресурсов без окон доступности
const (
	fullDayStart = 0
	fullDayEnd   = 23*60 + 59
)

// UseCase расчёт свободных окон ресурса на конкретную дату
type UseCase struct {
	bookings   BookingRepository
	facilities FacilityRepository
	log        Logger
}

func New(bookings BookingRepository, facilities FacilityRepository, log Logger) *UseCase {
	return &UseCase{
		bookings:   bookings,
		facilities: facilities,
		log:        log,
	}
}

// interval интервал внутри дня в минутах от полуночи
type interval struct {
	start int
	end   int
}

// Execute возвращает свободные интервалы: окна доступности ресурса
// за вычетом активных (PENDING и APPROVED) бронирований на эту дату
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if req.FacilityID == uuid.Nil {
		return nil, fmt.Errorf("%w: facilityId is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	fac, err := uc.facilities.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facility.ErrFacilityNotFound) {
			return nil, fmt.Errorf("%w: facility %s", ErrFacilityNotFound, req.FacilityID)
		}
		uc.log.Error("Execute - failed to load facility %s: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: Execute - failed to load facility: %v", ErrInternal, err)
	}

	// Выведенный из эксплуатации ресурс забронировать нельзя,
	// свободных окон у него нет
	if !fac.IsActive() {
		return &Response{FacilityID: req.FacilityID, Date: req.Date, Windows: []FreeWindow{}}, nil
	}

	open, err := uc.openIntervals(fac, req)
	if err != nil {
		return nil, err
	}

	active, err := uc.bookings.ListForSlot(ctx, req.FacilityID, req.Date, domain.ActiveStatuses)
	if err != nil {
		uc.log.Error("Execute - failed to list bookings for %s on %s: %v", req.FacilityID, req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Execute - failed to list bookings: %v", ErrInternal, err)
	}

	busy, err := uc.busyIntervals(active)
	if err != nil {
		return nil, err
	}

	free := subtract(open, busy)

	windows := make([]FreeWindow, 0, len(free))
	for _, iv := range free {
		start, err := types.NewTimeStringFromMinutes(iv.start)
		if err != nil {
			return nil, fmt.Errorf("%w: Execute - bad interval start %d: %v", ErrInternal, iv.start, err)
		}
		end, err := types.NewTimeStringFromMinutes(iv.end)
		if err != nil {
			return nil, fmt.Errorf("%w: Execute - bad interval end %d: %v", ErrInternal, iv.end, err)
		}
		windows = append(windows, FreeWindow{StartTime: start, EndTime: end})
	}

	return &Response{FacilityID: req.FacilityID, Date: req.Date, Windows: windows}, nil
}

// openIntervals окна доступности ресурса на день запроса в минутах.
// Если окна не настроены, ресурс открыт весь день.
func (uc *UseCase) openIntervals(fac *domain.Facility, req Request) ([]interval, error) {
	if fac.AlwaysOpen() {
		return []interval{{start: fullDayStart, end: fullDayEnd}}, nil
	}

	dayWindows := fac.WindowsForDay(req.Date.Weekday())
	open := make([]interval, 0, len(dayWindows))
	for _, w := range dayWindows {
		start, err := w.StartTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: openIntervals - bad window start %q: %v", ErrInternal, w.StartTime, err)
		}
		end, err := w.EndTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: openIntervals - bad window end %q: %v", ErrInternal, w.EndTime, err)
		}
		open = append(open, interval{start: start, end: end})
	}

	sort.Slice(open, func(i, j int) bool { return open[i].start < open[j].start })
	return open, nil
}

func (uc *UseCase) busyIntervals(bookings []*domain.Booking) ([]interval, error) {
	busy := make([]interval, 0, len(bookings))
	for _, b := range bookings {
		start, err := b.StartTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: busyIntervals - bad booking start %q: %v", ErrInternal, b.StartTime, err)
		}
		end, err := b.EndTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: busyIntervals - bad booking end %q: %v", ErrInternal, b.EndTime, err)
		}
		busy = append(busy, interval{start: start, end: end})
	}

	sort.Slice(busy, func(i, j int) bool { return busy[i].start < busy[j].start })
	return busy, nil
}

// subtract вычитает занятые интервалы из открытых.
// Оба среза отсортированы по началу интервала.
func subtract(open, busy []interval) []interval {
	free := make([]interval, 0, len(open))
	for _, o := range open {
		cursor := o.start
		for _, b := range busy {
			if b.end <= cursor || b.start >= o.end {
				continue
			}
			if b.start > cursor {
				free = append(free, interval{start: cursor, end: b.start})
			}
			if b.end > cursor {
				cursor = b.end
			}
		}
		if cursor < o.end {
			free = append(free, interval{start: cursor, end: o.end})
		}
	}
	return free
}
