package review_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-FacilityService/internal/notifier"
	"github.com/m04kA/SMC-FacilityService/internal/scheduling"
)

// UseCase рассмотрение заявки администратором: подтверждение или отклонение
type UseCase struct {
	bookings     BookingRepository
	txManager    TransactionManager
	notifier     Notifier
	timeProvider TimeProvider
	log          Logger
}

func New(bookings BookingRepository, txManager TransactionManager, notif Notifier, log Logger) *UseCase {
	return &UseCase{
		bookings:     bookings,
		txManager:    txManager,
		notifier:     notif,
		timeProvider: &RealTimeProvider{},
		log:          log,
	}
}

// WithTimeProvider устанавливает кастомный провайдер времени (для тестирования)
func (uc *UseCase) WithTimeProvider(provider TimeProvider) *UseCase {
	uc.timeProvider = provider
	return uc
}

// Execute применяет решение администратора к PENDING-бронированию.
// Подтверждение повторно проверяет отсутствие конфликта с уже
// подтверждёнными бронированиями в той же транзакции.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if !req.Actor.IsAdmin() {
		return nil, fmt.Errorf("%w: role %s", ErrForbidden, req.Actor.Role)
	}

	var reviewed *domain.Booking
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		b, err := uc.bookings.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, booking.ErrBookingNotFound) {
				return fmt.Errorf("%w: booking %s", ErrBookingNotFound, req.BookingID)
			}
			return fmt.Errorf("%w: Execute - failed to load booking: %v", ErrInternal, err)
		}

		now := uc.timeProvider.Now()

		switch req.Decision {
		case DecisionApprove:
			if err := uc.approve(txCtx, b, req, now); err != nil {
				return err
			}
		case DecisionReject:
			if err := uc.reject(txCtx, b, req, now); err != nil {
				return err
			}
		}

		reviewed = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info("Execute - booking %s %s by admin %s", reviewed.ID, reviewed.Status, req.Actor.ID)

	uc.publishReviewed(ctx, reviewed)

	return &Response{Booking: reviewed}, nil
}

func (uc *UseCase) approve(ctx context.Context, b *domain.Booking, req Request, now time.Time) error {
	// Между подачей заявки и её рассмотрением другой слот мог быть
	// подтверждён, поэтому конфликт проверяется заново.
	approved, err := uc.bookings.ListForSlot(ctx, b.FacilityID, b.BookingDate, []domain.BookingStatus{domain.StatusApproved})
	if err != nil {
		return fmt.Errorf("%w: approve - failed to list approved bookings: %v", ErrInternal, err)
	}

	if conflict := scheduling.FindConflictExcluding(b, approved, b.ID); conflict != nil {
		return fmt.Errorf("%w: booking %s occupies %s-%s", ErrSlotConflict, conflict.ID, conflict.StartTime, conflict.EndTime)
	}

	prev := b.Status
	if err := scheduling.Approve(b, req.Actor, req.Remarks, now); err != nil {
		return uc.mapLifecycleError(err)
	}

	if err := uc.bookings.Review(ctx, b.ID, prev, b.Status, req.Actor.ID, now, req.Remarks); err != nil {
		return uc.mapStorageError(ctx, b.ID, err)
	}
	return nil
}

func (uc *UseCase) reject(ctx context.Context, b *domain.Booking, req Request, now time.Time) error {
	remarks := ""
	if req.Remarks != nil {
		remarks = *req.Remarks
	}

	prev := b.Status
	if err := scheduling.Reject(b, req.Actor, remarks, now); err != nil {
		return uc.mapLifecycleError(err)
	}

	if err := uc.bookings.Review(ctx, b.ID, prev, b.Status, req.Actor.ID, now, b.AdminRemarks); err != nil {
		return uc.mapStorageError(ctx, b.ID, err)
	}
	return nil
}

func (uc *UseCase) mapLifecycleError(err error) error {
	switch {
	case errors.Is(err, scheduling.ErrForbidden):
		return fmt.Errorf("%w: %v", ErrForbidden, err)
	case errors.Is(err, scheduling.ErrRemarksRequired):
		return fmt.Errorf("%w: %v", ErrRemarksRequired, err)
	case errors.Is(err, scheduling.ErrInvalidTransition):
		return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// mapStorageError различает проигрыш CAS-гонки и реальную ошибку хранилища
func (uc *UseCase) mapStorageError(ctx context.Context, id uuid.UUID, err error) error {
	if errors.Is(err, booking.ErrStatusChanged) {
		uc.log.Warn("mapStorageError - booking %s status changed concurrently", id)
		return fmt.Errorf("%w: booking %s was modified concurrently", ErrInvalidTransition, id)
	}
	if errors.Is(err, booking.ErrBookingNotFound) {
		return fmt.Errorf("%w: booking %s", ErrBookingNotFound, id)
	}
	return fmt.Errorf("%w: failed to persist review: %v", ErrInternal, err)
}

func (uc *UseCase) publishReviewed(ctx context.Context, b *domain.Booking) {
	if uc.notifier == nil {
		return
	}

	eventType := notifier.EventBookingApproved
	if b.Status == domain.StatusRejected {
		eventType = notifier.EventBookingRejected
	}

	event := notifier.Event{
		Type:       eventType,
		BookingID:  b.ID,
		FacilityID: b.FacilityID,
		UserID:     b.UserID,
		Status:     string(b.Status),
		OccurredAt: uc.timeProvider.Now(),
	}
	if err := uc.notifier.PublishBookingEvent(ctx, event); err != nil {
		uc.log.Warn("publishReviewed - failed to publish event for booking %s: %v", b.ID, err)
	}
}

func validateRequest(req Request) error {
	if req.BookingID == uuid.Nil {
		return fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}

	if req.Actor.ID == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	if req.Decision != DecisionApprove && req.Decision != DecisionReject {
		return fmt.Errorf("%w: decision must be approve or reject", ErrInvalidInput)
	}

	if req.Remarks != nil && len(strings.TrimSpace(*req.Remarks)) > domain.MaxAdminRemarksLength {
		return fmt.Errorf("%w: remarks exceed %d characters", ErrInvalidInput, domain.MaxAdminRemarksLength)
	}

	return nil
}
