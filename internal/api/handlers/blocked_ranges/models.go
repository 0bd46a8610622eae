package blocked_ranges

import (
	"fmt"
	"time"

	"github.com/velmark/NST-BookingService/internal/domain"
)

// CreateBlockedRangeRequest HTTP request model.
// Для scope=day достаточно startDate, endDate подставляется равным startDate.
// Для scope=month указывается первый день месяца, интервал раскрывается
// до последнего дня
type CreateBlockedRangeRequest struct {
	StartDate string  `json:"startDate"` // "2026-09-15"
	EndDate   string  `json:"endDate,omitempty"`
	Scope     string  `json:"scope"` // "day", "range", "month"
	Reason    *string `json:"reason,omitempty"`
}

// BlockedRangeResponse HTTP response model
type BlockedRangeResponse struct {
	ID        int64   `json:"id"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Scope     string  `json:"scope"`
	Reason    *string `json:"reason,omitempty"`
	Active    bool    `json:"active"`
	CreatedAt string  `json:"createdAt"`
}

// BlockedRangeListResponse HTTP response со списком диапазонов
type BlockedRangeListResponse struct {
	Ranges []*BlockedRangeResponse `json:"ranges"`
	Total  int                     `json:"total"`
}

// parseDates разворачивает запрос в пару дат согласно scope
func (r *CreateBlockedRangeRequest) parseDates() (time.Time, time.Time, error) {
	start, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid startDate: %w", err)
	}

	switch domain.BlockedRangeScope(r.Scope) {
	case domain.ScopeDay:
		return start, start, nil

	case domain.ScopeMonth:
		first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
		last := first.AddDate(0, 1, -1)
		return first, last, nil

	case domain.ScopeRange:
		if r.EndDate == "" {
			return time.Time{}, time.Time{}, fmt.Errorf("endDate is required for scope=range")
		}
		end, err := time.Parse(domain.DateFormat, r.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid endDate: %w", err)
		}
		return start, end, nil

	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown scope %q", r.Scope)
	}
}

// FromDomainBlockedRange конвертирует domain диапазон в HTTP response
func FromDomainBlockedRange(br *domain.BlockedRange) *BlockedRangeResponse {
	return &BlockedRangeResponse{
		ID:        br.ID,
		StartDate: br.StartDate.Format(domain.DateFormat),
		EndDate:   br.EndDate.Format(domain.DateFormat),
		Scope:     string(br.Scope),
		Reason:    br.Reason,
		Active:    br.Active,
		CreatedAt: br.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainBlockedRangeList конвертирует список domain диапазонов
func FromDomainBlockedRangeList(ranges []*domain.BlockedRange) *BlockedRangeListResponse {
	result := make([]*BlockedRangeResponse, 0, len(ranges))
	for _, br := range ranges {
		result = append(result, FromDomainBlockedRange(br))
	}
	return &BlockedRangeListResponse{
		Ranges: result,
		Total:  len(result),
	}
}
