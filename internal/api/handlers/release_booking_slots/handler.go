package release_booking_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/velmark/NST-BookingService/internal/api/handlers"
	"github.com/velmark/NST-BookingService/internal/service/calendar"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
	msgNotCancelled     = "слоты можно освободить только у отмененного бронирования"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/release-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/release-slots - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.service.ReleaseBookingSlots(r.Context(), bookingID); err != nil {
		switch {
		case errors.Is(err, calendar.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/release-slots - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, calendar.ErrBookingNotCancelled):
			h.logger.Warn("POST /bookings/{id}/release-slots - Booking not cancelled: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNotCancelled)

		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/release-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("POST /bookings/{id}/release-slots - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/release-slots - Slots released: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "released"})
}
