package facilities

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	facilityRepo "github.com/m04kA/SMC-FacilityService/internal/infra/storage/facility"
	"github.com/m04kA/SMC-FacilityService/internal/service/facilities/models"
)

// Service сервис для управления каталогом ресурсов кампуса
type Service struct {
	facilityRepo FacilityRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса ресурсов
func NewService(facilityRepo FacilityRepository, logger Logger) *Service {
	return &Service{
		facilityRepo: facilityRepo,
		logger:       logger,
	}
}

// Create создает новый ресурс
// Доступно только администраторам
func (s *Service) Create(ctx context.Context, req *models.CreateFacilityRequest) (*models.FacilityResponse, error) {
	s.logger.Info("Create: creating facility name=%q by user=%s", req.Name, req.Actor.ID)

	if !req.Actor.IsAdmin() {
		s.logger.Warn("Create: access denied for user=%s", req.Actor.ID)
		return nil, ErrAccessDenied
	}

	if err := validateFacilityFields(req.Name, req.Type, req.Capacity, req.AvailabilityWindows); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	facility := &domain.Facility{
		Name:                strings.TrimSpace(req.Name),
		Type:                domain.FacilityType(req.Type),
		Description:         req.Description,
		Capacity:            req.Capacity,
		Location:            req.Location,
		Status:              domain.FacilityActive,
		AvailabilityWindows: models.ToDomainWindows(req.AvailabilityWindows),
		CreatedBy:           req.Actor.ID,
	}

	created, err := s.facilityRepo.Create(ctx, facility)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created facility id=%s", created.ID)
	return models.FromDomainFacility(created), nil
}

// GetByID получает ресурс по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.FacilityResponse, error) {
	s.logger.Info("GetByID: fetching facility id=%s", id)

	facility, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("GetByID: facility id=%s not found", id)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("GetByID: repository error for facility id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainFacility(facility), nil
}

// List получает список ресурсов с опциональной фильтрацией по типу и статусу
func (s *Service) List(ctx context.Context, req *models.ListFacilitiesRequest) (*models.FacilityListResponse, error) {
	s.logger.Info("List: fetching facilities, type=%v, status=%v", req.Type, req.Status)

	filter := domain.FacilitiesFilter{}

	if req.Type != nil {
		if !domain.IsValidFacilityType(*req.Type) {
			s.logger.Warn("List: invalid type=%s", *req.Type)
			return nil, fmt.Errorf("%w: unknown facility type: %s", ErrInvalidInput, *req.Type)
		}
		t := domain.FacilityType(*req.Type)
		filter.Type = &t
	}

	if req.Status != nil {
		status := domain.FacilityStatus(*req.Status)
		if status != domain.FacilityActive && status != domain.FacilityOutOfService {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: unknown facility status: %s", ErrInvalidInput, *req.Status)
		}
		filter.Status = &status
	}

	facilities, err := s.facilityRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d facilities", len(facilities))
	return models.FromDomainFacilityList(facilities), nil
}

// Update обновляет ресурс целиком, включая окна доступности
// Доступно только администраторам. Статус через Update не меняется
func (s *Service) Update(ctx context.Context, req *models.UpdateFacilityRequest) (*models.FacilityResponse, error) {
	s.logger.Info("Update: updating facility id=%s by user=%s", req.ID, req.Actor.ID)

	if !req.Actor.IsAdmin() {
		s.logger.Warn("Update: access denied for user=%s", req.Actor.ID)
		return nil, ErrAccessDenied
	}

	if err := validateFacilityFields(req.Name, req.Type, req.Capacity, req.AvailabilityWindows); err != nil {
		s.logger.Warn("Update: validation failed for facility id=%s: %v", req.ID, err)
		return nil, err
	}

	current, err := s.facilityRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("Update: facility id=%s not found", req.ID)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("Update: repository error for facility id=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	current.Name = strings.TrimSpace(req.Name)
	current.Type = domain.FacilityType(req.Type)
	current.Description = req.Description
	current.Capacity = req.Capacity
	current.Location = req.Location
	current.AvailabilityWindows = models.ToDomainWindows(req.AvailabilityWindows)

	updated, err := s.facilityRepo.Update(ctx, current)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("Update: facility id=%s disappeared during update", req.ID)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("Update: repository error for facility id=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated facility id=%s", req.ID)
	return models.FromDomainFacility(updated), nil
}

// SetStatus переводит ресурс между active и out_of_service
// Доступно только администраторам. Существующие бронирования не затрагиваются
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status string, actor domain.Actor) error {
	s.logger.Info("SetStatus: setting facility id=%s status=%s by user=%s", id, status, actor.ID)

	if !actor.IsAdmin() {
		s.logger.Warn("SetStatus: access denied for user=%s", actor.ID)
		return ErrAccessDenied
	}

	domainStatus := domain.FacilityStatus(status)
	if domainStatus != domain.FacilityActive && domainStatus != domain.FacilityOutOfService {
		s.logger.Warn("SetStatus: invalid status=%s for facility id=%s", status, id)
		return fmt.Errorf("%w: unknown facility status: %s", ErrInvalidInput, status)
	}

	if err := s.facilityRepo.SetStatus(ctx, id, domainStatus); err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("SetStatus: facility id=%s not found", id)
			return ErrFacilityNotFound
		}
		s.logger.Error("SetStatus: repository error for facility id=%s: %v", id, err)
		return fmt.Errorf("%w: SetStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetStatus: successfully set facility id=%s status=%s", id, status)
	return nil
}
