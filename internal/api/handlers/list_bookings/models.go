package list_bookings

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/velmark/NST-BookingService/internal/domain"
	"github.com/velmark/NST-BookingService/internal/service/bookings/models"
)

// parseQuery разбирает query-параметры списка бронирований
func parseQuery(query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if raw := query.Get("startDate"); raw != "" {
		d, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %w", err)
		}
		req.StartDate = &d
	}

	if raw := query.Get("endDate"); raw != "" {
		d, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %w", err)
		}
		req.EndDate = &d
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	if raw := query.Get("resourceId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid resourceId: %w", err)
		}
		req.ResourceID = &id
	}

	if raw := query.Get("includeCancelled"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid includeCancelled: %w", err)
		}
		req.IncludeCancelled = include
	}

	return req, nil
}
