package scheduling

import "errors"

var (
	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("scheduling: invalid status transition")

	// ErrForbidden возвращается, когда у актора нет прав на переход
	ErrForbidden = errors.New("scheduling: actor is not allowed to perform this transition")

	// ErrRemarksRequired возвращается при отклонении без указания причины
	ErrRemarksRequired = errors.New("scheduling: admin remarks are required for rejection")
)
