package scheduling

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

// Action действие над бронированием в рамках жизненного цикла
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionCancel  Action = "cancel"
)

// transitions таблица допустимых переходов: действие -> статусы,
// из которых оно разрешено. REJECTED и CANCELLED терминальны,
// APPROVED может перейти только в CANCELLED.
var transitions = map[Action][]domain.BookingStatus{
	ActionApprove: {domain.StatusPending},
	ActionReject:  {domain.StatusPending},
	ActionCancel:  {domain.StatusPending, domain.StatusApproved},
}

// CanTransition возвращает true, если действие допустимо из указанного статуса
func CanTransition(from domain.BookingStatus, action Action) bool {
	for _, allowed := range transitions[action] {
		if from == allowed {
			return true
		}
	}
	return false
}

// Approve переводит бронирование PENDING -> APPROVED
// Требует права администратора; заполняет reviewedBy/reviewedAt
func Approve(b *domain.Booking, actor domain.Actor, remarks *string, now time.Time) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if !CanTransition(b.Status, ActionApprove) {
		return ErrInvalidTransition
	}

	b.Status = domain.StatusApproved
	b.AdminRemarks = remarks
	b.ReviewedBy = &actor.ID
	b.ReviewedAt = &now
	return nil
}

// Reject переводит бронирование PENDING -> REJECTED
// Требует права администратора и непустую причину отклонения
func Reject(b *domain.Booking, actor domain.Actor, remarks string, now time.Time) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if !CanTransition(b.Status, ActionReject) {
		return ErrInvalidTransition
	}
	if strings.TrimSpace(remarks) == "" {
		return ErrRemarksRequired
	}

	b.Status = domain.StatusRejected
	b.AdminRemarks = &remarks
	b.ReviewedBy = &actor.ID
	b.ReviewedAt = &now
	return nil
}

// Cancel переводит бронирование PENDING/APPROVED -> CANCELLED
// Разрешено владельцу бронирования или администратору; review-поля не трогаются
func Cancel(b *domain.Booking, actor domain.Actor) error {
	if !actor.Owns(b) && !actor.IsAdmin() {
		return ErrForbidden
	}
	if !CanTransition(b.Status, ActionCancel) {
		return ErrInvalidTransition
	}

	b.Status = domain.StatusCancelled
	return nil
}
