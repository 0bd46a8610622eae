package create_booking

import (
	"time"

	"github.com/velmark/NST-BookingService/internal/domain"
	createBooking "github.com/velmark/NST-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	StartSlotID   int64   `json:"startSlotId"`
	ServiceType   string  `json:"serviceType"`             // "manicure", "pedicure", "mani_pedi", "full_set"
	LinkedSlotIDs []int64 `json:"linkedSlotIds,omitempty"` // Для многослотовых услуг
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             int64   `json:"id"`
	BookingNumber  string  `json:"bookingNumber"`
	ReferenceToken string  `json:"referenceToken"`
	SlotID         int64   `json:"slotId"`
	LinkedSlotIDs  []int64 `json:"linkedSlotIds,omitempty"`
	ServiceType    string  `json:"serviceType"`
	ResourceID     *int64  `json:"resourceId,omitempty"`
	Status         string  `json:"status"`
	Date           string  `json:"date"`
	StartTime      string  `json:"startTime"`
	CreatedAt      string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		StartSlotID:   r.StartSlotID,
		ServiceType:   domain.ServiceType(r.ServiceType),
		LinkedSlotIDs: r.LinkedSlotIDs,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		BookingNumber:  resp.BookingNumber,
		ReferenceToken: resp.ReferenceToken,
		SlotID:         resp.SlotID,
		LinkedSlotIDs:  resp.LinkedSlotIDs,
		ServiceType:    resp.ServiceType,
		ResourceID:     resp.ResourceID,
		Status:         resp.Status,
		Date:           resp.Date.Format(domain.DateFormat),
		StartTime:      resp.StartTime.String(),
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
