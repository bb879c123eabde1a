package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-FacilityService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-FacilityService/internal/notifier"
	"github.com/m04kA/SMC-FacilityService/internal/scheduling"
	"github.com/m04kA/SMC-FacilityService/internal/service/bookings/models"
)

// Service сервис для чтения, отмены и удаления бронирований
type Service struct {
	bookingRepo  BookingRepository
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, notif Notifier, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		notifier:     notif,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider устанавливает кастомный провайдер времени (для тестирования)
func (s *Service) WithTimeProvider(provider TimeProvider) *Service {
	s.timeProvider = provider
	return s
}

// GetByID получает бронирование по ID
// Пользователь может видеть только своё бронирование, администратор - любое
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, actor domain.Actor) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, actor.ID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !actor.Owns(booking) && !actor.IsAdmin() {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", actor.ID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу. Чужую историю видит только администратор
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s, status=%v", req.UserID, req.Status)

	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	if req.Actor.ID != req.UserID && !req.Actor.IsAdmin() {
		s.logger.Warn("GetUserBookings: access denied for user=%s to history of user=%s", req.Actor.ID, req.UserID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%s", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.ListByUser(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%s", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// ListBookings получает бронирования с гибкой фильтрацией
// Поддерживает фильтрацию по ресурсу, периоду, статусу и включение неактивных
// Доступно только администраторам
func (s *Service) ListBookings(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListBookings: fetching bookings for admin=%s", req.Actor.ID)

	if !req.Actor.IsAdmin() {
		s.logger.Warn("ListBookings: access denied for user=%s", req.Actor.ID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListBookings: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBookings: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Разрешено владельцу бронирования или администратору.
// Отмена из терминального статуса возвращает ErrCannotCancel
func (s *Service) Cancel(ctx context.Context, bookingID uuid.UUID, actor domain.Actor) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", bookingID, actor.ID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	prev := booking.Status

	if err := scheduling.Cancel(booking, actor); err != nil {
		switch {
		case errors.Is(err, scheduling.ErrForbidden):
			s.logger.Warn("Cancel: access denied for user=%s to booking id=%s", actor.ID, bookingID)
			return nil, ErrAccessDenied
		case errors.Is(err, scheduling.ErrInvalidTransition):
			s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", bookingID, prev)
			return nil, ErrCannotCancel
		default:
			return nil, fmt.Errorf("%w: Cancel - lifecycle error: %v", ErrInternal, err)
		}
	}

	if err := s.bookingRepo.UpdateStatusFrom(ctx, bookingID, domain.StatusCancelled, prev); err != nil {
		if errors.Is(err, bookingRepo.ErrStatusChanged) {
			s.logger.Warn("Cancel: booking id=%s status changed concurrently", bookingID)
			return nil, ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)

	s.publishCancelled(ctx, booking)

	return models.FromDomainBooking(booking), nil
}

// Delete удаляет запись бронирования
// Доступно только администраторам; обычная отмена статуса предпочтительнее
func (s *Service) Delete(ctx context.Context, bookingID uuid.UUID, actor domain.Actor) error {
	s.logger.Info("Delete: deleting booking id=%s by user=%s", bookingID, actor.ID)

	if !actor.IsAdmin() {
		s.logger.Warn("Delete: access denied for user=%s", actor.ID)
		return ErrAccessDenied
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%s", bookingID)
	return nil
}

func (s *Service) publishCancelled(ctx context.Context, b *domain.Booking) {
	if s.notifier == nil {
		return
	}

	event := notifier.Event{
		Type:       notifier.EventBookingCancelled,
		BookingID:  b.ID,
		FacilityID: b.FacilityID,
		UserID:     b.UserID,
		Status:     string(b.Status),
		OccurredAt: s.timeProvider.Now(),
	}
	if err := s.notifier.PublishBookingEvent(ctx, event); err != nil {
		s.logger.Warn("publishCancelled: failed to publish event for booking %s: %v", b.ID, err)
	}
}
