package bookings

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("invalid input data")

	// ErrBookingNotFound бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied доступ запрещён
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel бронирование нельзя отменить из текущего статуса
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal error")
)
