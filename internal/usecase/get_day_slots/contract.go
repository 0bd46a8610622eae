package get_day_slots

import (
	"context"

	"github.com/velmark/NST-BookingService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	List(ctx context.Context, filter domain.SlotsFilter) ([]*domain.Slot, error)
}

// BlockedRangeRepository интерфейс репозитория закрытых дат
type BlockedRangeRepository interface {
	ListActive(ctx context.Context) ([]*domain.BlockedRange, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
