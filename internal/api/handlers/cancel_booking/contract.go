package cancel_booking

import "context"

type CancelBookingUseCase interface {
	Execute(ctx context.Context, bookingID int64, reason string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
