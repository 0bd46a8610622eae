package notifyservice

// Event тип события бронирования для уведомления
type Event string

const (
	EventBookingConfirmed Event = "booking_confirmed"
	EventBookingCancelled Event = "booking_cancelled"
)

// NotifyRequest запрос на отправку уведомления
type NotifyRequest struct {
	Event         Event  `json:"event"`
	BookingNumber string `json:"bookingNumber"`
	CustomerID    *int64 `json:"customerId,omitempty"`
	Reason        string `json:"reason,omitempty"`
}
