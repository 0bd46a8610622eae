package calendar

import (
	"context"

	"github.com/velmark/NST-BookingService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Create(ctx context.Context, s *domain.Slot) (*domain.Slot, error)
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	List(ctx context.Context, filter domain.SlotsFilter) ([]*domain.Slot, error)
	UpdateStatus(ctx context.Context, id int64, status domain.SlotStatus) error
	Delete(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ExistsActiveBySlotID(ctx context.Context, slotID int64) (bool, error)
}

// BlockedRangeRepository интерфейс репозитория закрытых диапазонов
type BlockedRangeRepository interface {
	Create(ctx context.Context, br *domain.BlockedRange) (*domain.BlockedRange, error)
	List(ctx context.Context) ([]*domain.BlockedRange, error)
	ListActive(ctx context.Context) ([]*domain.BlockedRange, error)
	Deactivate(ctx context.Context, id int64) error
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
