package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/internal/infra/storage/facility"
	"github.com/m04kA/SMC-FacilityService/internal/notifier"
	"github.com/m04kA/SMC-FacilityService/internal/scheduling"
)

// UseCase создание заявки на бронирование ресурса
type UseCase struct {
	bookings     BookingRepository
	facilities   FacilityRepository
	users        UserServiceClient
	txManager    TransactionManager
	notifier     Notifier
	timeProvider TimeProvider
	campusLoc    *time.Location
	log          Logger
}

func New(
	bookings BookingRepository,
	facilities FacilityRepository,
	users UserServiceClient,
	txManager TransactionManager,
	notif Notifier,
	campusLoc *time.Location,
	log Logger,
) *UseCase {
	return &UseCase{
		bookings:     bookings,
		facilities:   facilities,
		users:        users,
		txManager:    txManager,
		notifier:     notif,
		timeProvider: &RealTimeProvider{},
		campusLoc:    campusLoc,
		log:          log,
	}
}

// WithTimeProvider устанавливает кастомный провайдер времени (для тестирования)
func (uc *UseCase) WithTimeProvider(provider TimeProvider) *UseCase {
	uc.timeProvider = provider
	return uc
}

// Execute создает заявку на бронирование в статусе PENDING
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	fac, err := uc.facilities.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facility.ErrFacilityNotFound) {
			return nil, fmt.Errorf("%w: facility %s", ErrFacilityNotFound, req.FacilityID)
		}
		uc.log.Error("Execute - failed to load facility %s: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: Execute - failed to load facility: %v", ErrInternal, err)
	}

	if !fac.IsActive() {
		return nil, fmt.Errorf("%w: facility %s", ErrFacilityInactive, req.FacilityID)
	}

	now := uc.timeProvider.Now().In(uc.campusLoc)
	if err := uc.validateDate(req.Date, now); err != nil {
		return nil, err
	}

	if !scheduling.IsWithinAvailability(fac.AvailabilityWindows, req.Date, req.StartTime, req.EndTime) {
		return nil, fmt.Errorf("%w: %s %s-%s", ErrOutsideAvailability, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)
	}

	booking := &domain.Booking{
		FacilityID:        req.FacilityID,
		UserID:            req.Actor.ID,
		BookingDate:       req.Date,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		Purpose:           strings.TrimSpace(req.Purpose),
		ExpectedAttendees: req.ExpectedAttendees,
		Status:            domain.StatusPending,
		FacilityName:      fac.Name,
	}

	// Профиль пользователя денормализуется в запись бронирования. Недоступность
	// UserService не блокирует создание заявки.
	user, err := uc.users.GetUserWithGracefulDegradation(ctx, req.Actor.ID)
	if err != nil {
		uc.log.Warn("Execute - user profile unavailable for %s: %v", req.Actor.ID, err)
	} else if user != nil {
		booking.UserName = &user.Name
		booking.UserEmail = &user.Email
	}

	var created *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.bookings.ListForSlot(txCtx, req.FacilityID, req.Date, domain.ActiveStatuses)
		if err != nil {
			return fmt.Errorf("%w: Execute - failed to list bookings for slot: %v", ErrInternal, err)
		}

		if conflict := scheduling.FindConflict(booking, existing); conflict != nil {
			return fmt.Errorf("%w: booking %s occupies %s-%s", ErrSlotConflict, conflict.ID, conflict.StartTime, conflict.EndTime)
		}

		created, err = uc.bookings.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: Execute - failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotConflict) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.log.Error("Execute - transaction failed: %v", err)
		return nil, fmt.Errorf("%w: Execute - transaction failed: %v", ErrInternal, err)
	}

	uc.log.Info("Execute - booking %s created for facility %s by user %s", created.ID, created.FacilityID, created.UserID)

	uc.publishSubmitted(ctx, created)

	return &Response{Booking: created}, nil
}

// validateDate проверяет, что дата бронирования не в прошлом (в таймзоне кампуса)
func (uc *UseCase) validateDate(date time.Time, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.campusLoc)
	requested := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, uc.campusLoc)
	if requested.Before(today) {
		return fmt.Errorf("%w: %s", ErrInvalidDate, date.Format(domain.DateFormat))
	}
	return nil
}

func (uc *UseCase) publishSubmitted(ctx context.Context, b *domain.Booking) {
	if uc.notifier == nil {
		return
	}

	event := notifier.Event{
		Type:       notifier.EventBookingSubmitted,
		BookingID:  b.ID,
		FacilityID: b.FacilityID,
		UserID:     b.UserID,
		Status:     string(b.Status),
		OccurredAt: uc.timeProvider.Now().In(uc.campusLoc),
	}
	if err := uc.notifier.PublishBookingEvent(ctx, event); err != nil {
		uc.log.Warn("publishSubmitted - failed to publish event for booking %s: %v", b.ID, err)
	}
}
