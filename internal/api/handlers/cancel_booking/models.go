package cancel_booking

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"` // Причина отмены (опционально)
}
