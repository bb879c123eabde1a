package review_booking

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("invalid input data")

	// ErrBookingNotFound бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrForbidden действие доступно только администратору
	ErrForbidden = errors.New("action requires admin role")

	// ErrInvalidTransition бронирование уже не в статусе PENDING
	ErrInvalidTransition = errors.New("booking is not pending review")

	// ErrRemarksRequired отклонение требует указания причины
	ErrRemarksRequired = errors.New("rejection requires admin remarks")

	// ErrSlotConflict слот занят другим подтверждённым бронированием
	ErrSlotConflict = errors.New("slot conflicts with an approved booking")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal error")
)
