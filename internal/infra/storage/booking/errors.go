package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDuplicateExternalResponse возвращается при повторной вставке external_response_id
	ErrDuplicateExternalResponse = errors.New("booking.repository: external response already attached")

	// ErrSequenceNotInitialized возвращается, если строка счетчика номеров отсутствует
	ErrSequenceNotInitialized = errors.New("booking.repository: booking sequence row is missing")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
