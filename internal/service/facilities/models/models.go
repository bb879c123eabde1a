package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/pkg/types"
)

// TimeWindowDTO окно доступности в запросах и ответах API
type TimeWindowDTO struct {
	DayOfWeek string `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FacilityResponse ресурс в ответе API
type FacilityResponse struct {
	ID                  uuid.UUID       `json:"id"`
	Name                string          `json:"name"`
	Type                string          `json:"type"`
	Description         *string         `json:"description,omitempty"`
	Capacity            *int            `json:"capacity,omitempty"`
	Location            *string         `json:"location,omitempty"`
	Status              string          `json:"status"`
	AvailabilityWindows []TimeWindowDTO `json:"availabilityWindows"`
	CreatedBy           string          `json:"createdBy"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

// FacilityListResponse список ресурсов
type FacilityListResponse struct {
	Facilities []*FacilityResponse `json:"facilities"`
	Total      int                 `json:"total"`
}

// CreateFacilityRequest запрос на создание ресурса
type CreateFacilityRequest struct {
	Actor               domain.Actor
	Name                string
	Type                string
	Description         *string
	Capacity            *int
	Location            *string
	AvailabilityWindows []TimeWindowDTO
}

// UpdateFacilityRequest запрос на обновление ресурса
type UpdateFacilityRequest struct {
	Actor               domain.Actor
	ID                  uuid.UUID
	Name                string
	Type                string
	Description         *string
	Capacity            *int
	Location            *string
	AvailabilityWindows []TimeWindowDTO
}

// ListFacilitiesRequest запрос списка ресурсов с фильтрацией
type ListFacilitiesRequest struct {
	Type   *string
	Status *string
}

// ToDomainWindows конвертирует DTO окон в domain-модели
func ToDomainWindows(windows []TimeWindowDTO) []domain.TimeWindow {
	out := make([]domain.TimeWindow, 0, len(windows))
	for _, w := range windows {
		out = append(out, domain.TimeWindow{
			DayOfWeek: w.DayOfWeek,
			StartTime: types.TimeString(w.StartTime),
			EndTime:   types.TimeString(w.EndTime),
		})
	}
	return out
}

// FromDomainFacility конвертирует domain-модель в ответ API
func FromDomainFacility(f *domain.Facility) *FacilityResponse {
	windows := make([]TimeWindowDTO, 0, len(f.AvailabilityWindows))
	for _, w := range f.AvailabilityWindows {
		windows = append(windows, TimeWindowDTO{
			DayOfWeek: w.DayOfWeek,
			StartTime: w.StartTime.String(),
			EndTime:   w.EndTime.String(),
		})
	}

	return &FacilityResponse{
		ID:                  f.ID,
		Name:                f.Name,
		Type:                string(f.Type),
		Description:         f.Description,
		Capacity:            f.Capacity,
		Location:            f.Location,
		Status:              string(f.Status),
		AvailabilityWindows: windows,
		CreatedBy:           f.CreatedBy,
		CreatedAt:           f.CreatedAt,
		UpdatedAt:           f.UpdatedAt,
	}
}

// FromDomainFacilityList конвертирует список domain-моделей в ответ API
func FromDomainFacilityList(facilities []*domain.Facility) *FacilityListResponse {
	items := make([]*FacilityResponse, 0, len(facilities))
	for _, f := range facilities {
		items = append(items, FromDomainFacility(f))
	}
	return &FacilityListResponse{Facilities: items, Total: len(items)}
}
