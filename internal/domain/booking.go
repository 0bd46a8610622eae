package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPendingForm    BookingStatus = "pending_form"
	StatusPendingPayment BookingStatus = "pending_payment"
	StatusConfirmed      BookingStatus = "confirmed"
	StatusCancelled      BookingStatus = "cancelled"
)

// Booking represents a customer reservation of one or more consecutive slots
type Booking struct {
	ID             int64
	BookingNumber  string // Человекочитаемый номер вида "NB00042"
	ReferenceToken string // Токен для публичного доступа клиента к своей записи

	SlotID        int64   // Основной слот
	LinkedSlotIDs []int64 // Дополнительные последовательные слоты (для многослотовых услуг)
	ServiceType   ServiceType
	ResourceID    *int64

	Status BookingStatus

	// Данные клиента, прикрепляются после заполнения внешней формы
	CustomerID         *int64
	CustomerName       *string
	CustomerPhone      *string
	ExternalResponseID *string // Ключ идемпотентности внешней формы

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ChainSlotIDs returns the full ordered slot chain: primary slot first,
// then the linked slots in consecutive time order.
// Все переходы статусов (confirm, release, expire) обходят ровно этот список
func (b *Booking) ChainSlotIDs() []int64 {
	chain := make([]int64, 0, 1+len(b.LinkedSlotIDs))
	chain = append(chain, b.SlotID)
	chain = append(chain, b.LinkedSlotIDs...)
	return chain
}

// IsTerminal returns true if the booking reached a terminal state
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCancelled
}

// CanBeConfirmed returns true if the booking may transition to confirmed
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPendingForm || b.Status == StatusPendingPayment
}

// CanBeCancelled returns true if the booking may transition to cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status != StatusCancelled
}

// IsExpired returns true if an unconfirmed draft booking outlived maxAge
func (b *Booking) IsExpired(now time.Time, maxAge time.Duration) bool {
	return b.Status == StatusPendingForm && now.Sub(b.CreatedAt) > maxAge
}

// BookingsFilter фильтр для получения списка бронирований
type BookingsFilter struct {
	StartDate        *time.Time     // Начало периода по дате основного слота (опционально)
	EndDate          *time.Time     // Конец периода (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	ResourceID       *int64         // Фильтр по мастеру (опционально)
	IncludeCancelled bool           // Включать ли отмененные бронирования
}
