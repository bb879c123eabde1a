package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

// BookingResponse бронирование в ответе API
type BookingResponse struct {
	ID                uuid.UUID  `json:"id"`
	FacilityID        uuid.UUID  `json:"facilityId"`
	FacilityName      string     `json:"facilityName"`
	UserID            string     `json:"userId"`
	UserName          *string    `json:"userName,omitempty"`
	UserEmail         *string    `json:"userEmail,omitempty"`
	BookingDate       string     `json:"bookingDate"`
	StartTime         string     `json:"startTime"`
	EndTime           string     `json:"endTime"`
	Purpose           string     `json:"purpose"`
	ExpectedAttendees *int       `json:"expectedAttendees,omitempty"`
	Status            string     `json:"status"`
	AdminRemarks      *string    `json:"adminRemarks,omitempty"`
	ReviewedBy        *string    `json:"reviewedBy,omitempty"`
	ReviewedAt        *time.Time `json:"reviewedAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// GetUserBookingsRequest запрос истории бронирований пользователя
type GetUserBookingsRequest struct {
	UserID string
	Actor  domain.Actor
	Status *string
}

// ListBookingsRequest админский запрос списка бронирований с фильтрацией
type ListBookingsRequest struct {
	Actor           domain.Actor
	FacilityID      *uuid.UUID
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeInactive bool
}

// ToDomainFilter конвертирует запрос в domain-фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		FacilityID:      r.FacilityID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.BookingsFilter{}, err
		}
		filter.Status = &status
	}

	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(*r.StartDate) {
		return domain.BookingsFilter{}, fmt.Errorf("endDate is before startDate")
	}

	return filter, nil
}

// ToDomainBookingStatus конвертирует строковый статус в domain.BookingStatus
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	if !domain.IsValidBookingStatus(s) {
		return "", fmt.Errorf("unknown booking status: %s", s)
	}
	return domain.BookingStatus(s), nil
}

// FromDomainBooking конвертирует domain-модель в ответ API
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                b.ID,
		FacilityID:        b.FacilityID,
		FacilityName:      b.FacilityName,
		UserID:            b.UserID,
		UserName:          b.UserName,
		UserEmail:         b.UserEmail,
		BookingDate:       b.BookingDate.Format(domain.DateFormat),
		StartTime:         b.StartTime.String(),
		EndTime:           b.EndTime.String(),
		Purpose:           b.Purpose,
		ExpectedAttendees: b.ExpectedAttendees,
		Status:            string(b.Status),
		AdminRemarks:      b.AdminRemarks,
		ReviewedBy:        b.ReviewedBy,
		ReviewedAt:        b.ReviewedAt,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain-моделей в ответ API
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	items := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: items, Total: len(items)}
}
