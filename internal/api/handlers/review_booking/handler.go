package review_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
	reviewBooking "github.com/m04kA/SMC-FacilityService/internal/usecase/review_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные запроса, decision должен быть approve или reject"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "рассмотрение заявок доступно только администратору"
	msgNotPending         = "бронирование уже рассмотрено или отменено"
	msgRemarksRequired    = "отклонение заявки требует указания причины"
	msgSlotConflict       = "слот уже занят подтверждённым бронированием"
	msgUnauthorized       = "пользователь не аутентифицирован"
)

type Handler struct {
	useCase ReviewBookingUseCase
	logger  Logger
}

func NewHandler(useCase ReviewBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/review
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFrom(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["bookingId"])
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/review - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req ReviewBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/review - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID, actor))
	if err != nil {
		switch {
		case errors.Is(err, reviewBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/review - Invalid input: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, reviewBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/review - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reviewBooking.ErrForbidden):
			h.logger.Warn("PATCH /bookings/{id}/review - Access denied: booking_id=%s, user_id=%s", bookingID, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reviewBooking.ErrRemarksRequired):
			h.logger.Warn("PATCH /bookings/{id}/review - Remarks required: booking_id=%s", bookingID)
			handlers.RespondBadRequest(w, msgRemarksRequired)

		case errors.Is(err, reviewBooking.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/{id}/review - Not pending: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgNotPending)

		case errors.Is(err, reviewBooking.ErrSlotConflict):
			h.logger.Warn("PATCH /bookings/{id}/review - Slot conflict: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgSlotConflict)

		default:
			h.logger.Error("PATCH /bookings/{id}/review - Failed to review booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/review - Booking reviewed successfully: booking_id=%s, status=%s, admin=%s",
		bookingID, result.Booking.Status, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
