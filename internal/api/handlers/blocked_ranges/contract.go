package blocked_ranges

import (
	"context"
	"time"

	"github.com/velmark/NST-BookingService/internal/domain"
)

type CalendarService interface {
	CreateBlockedRange(ctx context.Context, startDate, endDate time.Time, reason *string, scope domain.BlockedRangeScope) (*domain.BlockedRange, error)
	ListBlockedRanges(ctx context.Context) ([]*domain.BlockedRange, error)
	DeactivateBlockedRange(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
