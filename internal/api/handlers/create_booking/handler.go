package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
	submitBooking "github.com/m04kA/SMC-FacilityService/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidRequestFields = "некорректные поля запроса, ожидается facilityId (UUID), bookingDate (YYYY-MM-DD), startTime и endTime (HH:MM)"
	msgInvalidInput         = "некорректные данные бронирования"
	msgPastDate             = "дата бронирования в прошлом"
	msgFacilityNotFound     = "ресурс не найден"
	msgFacilityInactive     = "ресурс выведен из эксплуатации"
	msgOutsideAvailability  = "запрошенное время вне окон доступности ресурса"
	msgSlotConflict         = "временной слот уже занят"
	msgUnauthorized         = "пользователь не аутентифицирован"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFrom(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%s, error=%v", actor.ID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, submitBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Past booking date: user_id=%s, date=%s", actor.ID, req.BookingDate)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, submitBooking.ErrFacilityNotFound):
			h.logger.Warn("POST /bookings - Facility not found: facility_id=%s", req.FacilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, submitBooking.ErrFacilityInactive):
			h.logger.Warn("POST /bookings - Facility inactive: facility_id=%s", req.FacilityID)
			handlers.RespondConflict(w, msgFacilityInactive)

		case errors.Is(err, submitBooking.ErrOutsideAvailability):
			h.logger.Warn("POST /bookings - Outside availability: facility_id=%s, user_id=%s", req.FacilityID, actor.ID)
			handlers.RespondBadRequest(w, msgOutsideAvailability)

		case errors.Is(err, submitBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: facility_id=%s, user_id=%s", req.FacilityID, actor.ID)
			handlers.RespondConflict(w, msgSlotConflict)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, error=%v", actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, facility_id=%s, user_id=%s",
		result.Booking.ID, req.FacilityID, actor.ID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
