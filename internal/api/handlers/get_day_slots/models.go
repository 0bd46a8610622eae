package get_day_slots

import (
	"github.com/velmark/NST-BookingService/internal/domain"
	getDaySlots "github.com/velmark/NST-BookingService/internal/usecase/get_day_slots"
)

// SlotResponse HTTP модель одного слота
type SlotResponse struct {
	ID         int64  `json:"id"`
	StartTime  string `json:"startTime"`
	Status     string `json:"status"`
	ResourceID *int64 `json:"resourceId,omitempty"`
	Bookable   bool   `json:"bookable"`
}

// DaySlotsResponse HTTP модель ответа со слотами дня
type DaySlotsResponse struct {
	Date        string         `json:"date"`
	DateBlocked bool           `json:"dateBlocked"`
	Slots       []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySlots.Response) *DaySlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			ID:         s.ID,
			StartTime:  s.StartTime.String(),
			Status:     s.Status,
			ResourceID: s.ResourceID,
			Bookable:   s.Bookable,
		})
	}

	return &DaySlotsResponse{
		Date:        resp.Date.Format(domain.DateFormat),
		DateBlocked: resp.DateBlocked,
		Slots:       slots,
	}
}
