package attach_form_data

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("attach_form_data: booking not found")

	// ErrInvalidState возвращается, когда бронирование уже ушло дальше pending_form
	ErrInvalidState = errors.New("attach_form_data: booking is not awaiting form data")

	// ErrDuplicateResponse возвращается, когда external_response_id уже
	// привязан к другому бронированию
	ErrDuplicateResponse = errors.New("attach_form_data: external response already attached to another booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("attach_form_data: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("attach_form_data: internal error")
)
