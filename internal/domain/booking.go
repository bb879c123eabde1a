package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FacilityService/pkg/types"
)

// BookingStatus represents the workflow status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusApproved  BookingStatus = "approved"
	StatusRejected  BookingStatus = "rejected"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a booking request for a campus facility
type Booking struct {
	ID         uuid.UUID
	FacilityID uuid.UUID
	UserID     string

	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString

	Purpose           string
	ExpectedAttendees *int
	Status            BookingStatus

	// Denormalized data for history
	FacilityName string
	UserName     *string
	UserEmail    *string

	// Review info, set on approve/reject
	AdminRemarks *string
	ReviewedBy   *string
	ReviewedAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking holds its slot (PENDING or APPROVED)
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// IsTerminal returns true if no further transitions are possible
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusRejected || b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// CanBeReviewed returns true if an admin can still approve or reject
func (b *Booking) CanBeReviewed() bool {
	return b.Status == StatusPending
}

// BookingsFilter фильтр для админского списка бронирований
type BookingsFilter struct {
	FacilityID      *uuid.UUID     // Фильтр по ресурсу (опционально)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отклоненные и отмененные
}
