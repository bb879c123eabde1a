package submit_booking

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate дата бронирования в прошлом
	ErrInvalidDate = errors.New("booking date is in the past")

	// ErrFacilityNotFound ресурс не найден
	ErrFacilityNotFound = errors.New("facility not found")

	// ErrFacilityInactive ресурс выведен из эксплуатации
	ErrFacilityInactive = errors.New("facility is out of service")

	// ErrOutsideAvailability запрошенный слот вне окон доступности ресурса
	ErrOutsideAvailability = errors.New("slot is outside facility availability")

	// ErrSlotConflict слот пересекается с существующим бронированием
	ErrSlotConflict = errors.New("slot conflicts with an existing booking")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal error")
)
