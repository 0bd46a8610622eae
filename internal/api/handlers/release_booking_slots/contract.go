package release_booking_slots

import "context"

type CalendarService interface {
	ReleaseBookingSlots(ctx context.Context, bookingID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
