package allocator

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот из цепочки не найден
	ErrSlotNotFound = errors.New("allocator: slot not found")

	// ErrSlotUnavailable возвращается, когда слот не в статусе available
	ErrSlotUnavailable = errors.New("allocator: slot is not available")

	// ErrNonConsecutiveSlots возвращается, когда связанный слот не является
	// следующим временем канонической сетки после предыдущего слота цепочки
	ErrNonConsecutiveSlots = errors.New("allocator: linked slots are not consecutive")

	// ErrCrossDateSlots возвращается, когда слоты цепочки лежат на разных датах
	ErrCrossDateSlots = errors.New("allocator: linked slots are on different dates")

	// ErrCrossResourceSlots возвращается, когда слоты цепочки принадлежат разным мастерам
	ErrCrossResourceSlots = errors.New("allocator: linked slots belong to different resources")

	// ErrBlockedSlot возвращается, когда дата слота попадает в закрытый диапазон
	// или слот явно заблокирован администратором
	ErrBlockedSlot = errors.New("allocator: slot date is blocked")

	// ErrUnexpectedLinkedSlots возвращается, когда для однослотовой услуги
	// переданы связанные слоты
	ErrUnexpectedLinkedSlots = errors.New("allocator: unexpected linked slots for single-slot service")

	// ErrMissingLinkedSlots возвращается, когда для многослотовой услуги
	// передано неверное количество связанных слотов
	ErrMissingLinkedSlots = errors.New("allocator: wrong number of linked slots for service")

	// ErrInvalidServiceType возвращается при неизвестном типе услуги
	ErrInvalidServiceType = errors.New("allocator: invalid service type")

	// ErrNotInTransaction возвращается при вызове аллокации вне транзакции
	ErrNotInTransaction = errors.New("allocator: AllocateChain must run inside a transaction")
)
