package create_booking

import (
	"context"

	"github.com/velmark/NST-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	NextNumber(ctx context.Context) (int64, error)
}

// SlotAllocator интерфейс сервиса резервирования цепочек слотов
type SlotAllocator interface {
	AllocateChain(ctx context.Context, startSlotID int64, serviceType domain.ServiceType, linkedSlotIDs []int64) ([]*domain.Slot, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
