package submit_booking

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

// validateRequest проверяет корректность запроса на создание бронирования
func validateRequest(req Request) error {
	if req.FacilityID == uuid.Nil {
		return fmt.Errorf("%w: facilityId is required", ErrInvalidInput)
	}

	if req.Actor.ID == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: bookingDate is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	purpose := strings.TrimSpace(req.Purpose)
	if purpose == "" {
		return fmt.Errorf("%w: purpose is required", ErrInvalidInput)
	}
	if len(purpose) > domain.MaxPurposeLength {
		return fmt.Errorf("%w: purpose exceeds %d characters", ErrInvalidInput, domain.MaxPurposeLength)
	}

	if req.ExpectedAttendees != nil && *req.ExpectedAttendees <= 0 {
		return fmt.Errorf("%w: expectedAttendees must be positive", ErrInvalidInput)
	}

	return nil
}
