package create_booking

import "errors"

var (
	// ErrSlotNotFound возвращается, когда один из слотов цепочки не найден
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrSlotNotAvailable возвращается, когда слот уже занят или заблокирован
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrDateBlocked возвращается, когда дата слота закрыта для записи
	ErrDateBlocked = errors.New("create_booking: date is blocked")

	// ErrInvalidChain возвращается, когда связанные слоты не образуют корректную цепочку
	ErrInvalidChain = errors.New("create_booking: invalid slot chain")

	// ErrInvalidServiceType возвращается при неизвестном типе услуги
	ErrInvalidServiceType = errors.New("create_booking: invalid service type")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
