package create_slot

import (
	"time"

	"github.com/velmark/NST-BookingService/internal/domain"
)

// CreateSlotRequest HTTP request model
type CreateSlotRequest struct {
	Date       string  `json:"date"`      // "2026-09-15"
	StartTime  string  `json:"startTime"` // "10:00"
	ResourceID *int64  `json:"resourceId,omitempty"`
	Note       *string `json:"note,omitempty"`
}

// SlotResponse HTTP response model
type SlotResponse struct {
	ID         int64   `json:"id"`
	Date       string  `json:"date"`
	StartTime  string  `json:"startTime"`
	Status     string  `json:"status"`
	ResourceID *int64  `json:"resourceId,omitempty"`
	Note       *string `json:"note,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}

// FromDomainSlot конвертирует domain слот в HTTP response
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	return &SlotResponse{
		ID:         s.ID,
		Date:       s.Date.Format(domain.DateFormat),
		StartTime:  s.StartTime.String(),
		Status:     string(s.Status),
		ResourceID: s.ResourceID,
		Note:       s.Note,
		CreatedAt:  s.CreatedAt.Format(time.RFC3339),
	}
}
