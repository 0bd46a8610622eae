package create_booking

import (
	"time"

	"github.com/velmark/NST-BookingService/internal/domain"
	"github.com/velmark/NST-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	StartSlotID   int64              // ID основного слота
	ServiceType   domain.ServiceType // Тип услуги
	LinkedSlotIDs []int64            // Дополнительные слоты цепочки (для многослотовых услуг)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             int64   // ID созданного бронирования
	BookingNumber  string  // Человекочитаемый номер вида "NB00042"
	ReferenceToken string  // Токен для публичного доступа клиента
	SlotID         int64   // Основной слот
	LinkedSlotIDs  []int64 // Связанные слоты
	ServiceType    string  // Тип услуги
	ResourceID     *int64  // Мастер цепочки
	Status         string  // Статус бронирования

	Date      time.Time        // Дата основного слота
	StartTime types.TimeString // Время начала основного слота

	CreatedAt time.Time // Время создания
}
