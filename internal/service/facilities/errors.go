package facilities

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("invalid input data")

	// ErrFacilityNotFound ресурс не найден
	ErrFacilityNotFound = errors.New("facility not found")

	// ErrAccessDenied управление ресурсами доступно только администратору
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal error")
)
