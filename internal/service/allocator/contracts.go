package allocator

import (
	"context"

	"github.com/velmark/NST-BookingService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	UpdateStatus(ctx context.Context, id int64, status domain.SlotStatus) error
}

// BlockedRangeRepository интерфейс репозитория закрытых диапазонов
type BlockedRangeRepository interface {
	ListActive(ctx context.Context) ([]*domain.BlockedRange, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
