package create_slot

import (
	"context"
	"time"

	"github.com/velmark/NST-BookingService/internal/domain"
	"github.com/velmark/NST-BookingService/pkg/types"
)

type CalendarService interface {
	CreateSlot(ctx context.Context, date time.Time, startTime types.TimeString, resourceID *int64, note *string) (*domain.Slot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
