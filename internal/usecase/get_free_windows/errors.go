package get_free_windows

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("invalid input data")

	// ErrFacilityNotFound ресурс не найден
	ErrFacilityNotFound = errors.New("facility not found")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal error")
)
