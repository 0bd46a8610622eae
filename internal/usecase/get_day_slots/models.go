package get_day_slots

import (
	"time"

	"github.com/velmark/NST-BookingService/internal/domain"
	"github.com/velmark/NST-BookingService/pkg/types"
)

// Request модель запроса на получение слотов дня
type Request struct {
	Date       time.Time // Дата (обязательно)
	ResourceID *int64    // Фильтр по мастеру (опционально)
}

// SlotInfo информация об одном слоте дня
type SlotInfo struct {
	ID         int64            // ID слота
	StartTime  types.TimeString // Время начала
	Status     string           // Статус слота
	ResourceID *int64           // Мастер
	Bookable   bool             // Доступен ли слот для записи прямо сейчас
}

// Response модель ответа со слотами дня
type Response struct {
	Date        time.Time  // Запрошенная дата
	DateBlocked bool       // Закрыта ли дата для записи
	Slots       []SlotInfo // Слоты дня, отсортированные по времени
}

// fromDomainSlot конвертирует доменный слот в элемент ответа
func fromDomainSlot(s *domain.Slot, dateBlocked bool) SlotInfo {
	return SlotInfo{
		ID:         s.ID,
		StartTime:  s.StartTime,
		Status:     string(s.Status),
		ResourceID: s.ResourceID,
		Bookable:   s.IsAvailable() && !dateBlocked,
	}
}
