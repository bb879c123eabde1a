package create_facility

import (
	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/internal/service/facilities/models"
)

// CreateFacilityRequest HTTP request model
type CreateFacilityRequest struct {
	Name                string                 `json:"name"`
	Type                string                 `json:"type"`
	Description         *string                `json:"description,omitempty"`
	Capacity            *int                   `json:"capacity,omitempty"`
	Location            *string                `json:"location,omitempty"`
	AvailabilityWindows []models.TimeWindowDTO `json:"availabilityWindows,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateFacilityRequest) ToServiceRequest(actor domain.Actor) *models.CreateFacilityRequest {
	return &models.CreateFacilityRequest{
		Actor:               actor,
		Name:                r.Name,
		Type:                r.Type,
		Description:         r.Description,
		Capacity:            r.Capacity,
		Location:            r.Location,
		AvailabilityWindows: r.AvailabilityWindows,
	}
}
