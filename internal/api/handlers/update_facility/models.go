package update_facility

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/internal/service/facilities/models"
)

// UpdateFacilityRequest HTTP request model
type UpdateFacilityRequest struct {
	Name                string                 `json:"name"`
	Type                string                 `json:"type"`
	Description         *string                `json:"description,omitempty"`
	Capacity            *int                   `json:"capacity,omitempty"`
	Location            *string                `json:"location,omitempty"`
	AvailabilityWindows []models.TimeWindowDTO `json:"availabilityWindows,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateFacilityRequest) ToServiceRequest(id uuid.UUID, actor domain.Actor) *models.UpdateFacilityRequest {
	return &models.UpdateFacilityRequest{
		Actor:               actor,
		ID:                  id,
		Name:                r.Name,
		Type:                r.Type,
		Description:         r.Description,
		Capacity:            r.Capacity,
		Location:            r.Location,
		AvailabilityWindows: r.AvailabilityWindows,
	}
}
