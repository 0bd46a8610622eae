package confirm_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("confirm_booking: booking not found")

	// ErrCannotConfirm возвращается, когда статус бронирования не допускает подтверждения
	ErrCannotConfirm = errors.New("confirm_booking: booking cannot be confirmed")

	// ErrDateBlocked возвращается, когда дата бронирования была закрыта после резерва
	ErrDateBlocked = errors.New("confirm_booking: booking date is blocked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
