package calendar

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot not found")

	// ErrSlotAlreadyExists возвращается при дублировании (дата, время, мастер)
	ErrSlotAlreadyExists = errors.New("slot already exists")

	// ErrSlotReferenced возвращается при попытке удалить слот,
	// на который ссылается неотмененное бронирование
	ErrSlotReferenced = errors.New("slot is referenced by an active booking")

	// ErrInvalidStartTime возвращается, когда время начала не из канонической сетки
	ErrInvalidStartTime = errors.New("start time is not in the canonical grid")

	// ErrDateBlocked возвращается при попытке создать слот на закрытую дату
	ErrDateBlocked = errors.New("date falls inside a blocked range")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrBookingNotCancelled возвращается при попытке освободить слоты
	// неотмененного бронирования
	ErrBookingNotCancelled = errors.New("booking is not cancelled")

	// ErrRangeNotFound возвращается, когда закрытый диапазон не найден
	ErrRangeNotFound = errors.New("blocked range not found")

	// ErrInvalidRange возвращается при некорректном диапазоне дат
	ErrInvalidRange = errors.New("invalid date range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("calendar service: internal error")
)
