package get_free_windows

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/domain"
	getFreeWindows "github.com/m04kA/SMC-FacilityService/internal/usecase/get_free_windows"
)

const (
	msgInvalidFacilityID = "некорректный ID ресурса"
	msgInvalidDate       = "некорректная дата, ожидается YYYY-MM-DD"
	msgNotFound          = "ресурс не найден"
)

type Handler struct {
	useCase GetFreeWindowsUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeWindowsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/free-windows?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityID, err := uuid.Parse(vars["facilityId"])
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/free-windows - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/free-windows - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), getFreeWindows.Request{
		FacilityID: facilityID,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getFreeWindows.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{id}/free-windows - Invalid input: facility_id=%s, error=%v", facilityID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getFreeWindows.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id}/free-windows - Facility not found: facility_id=%s", facilityID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /facilities/{id}/free-windows - Failed to get free windows: facility_id=%s, error=%v", facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{id}/free-windows - Free windows retrieved: facility_id=%s, count=%d",
		facilityID, len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
