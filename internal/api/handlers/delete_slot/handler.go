package delete_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/velmark/NST-BookingService/internal/api/handlers"
	"github.com/velmark/NST-BookingService/internal/service/calendar"
)

const (
	msgInvalidSlotID  = "некорректный ID слота"
	msgNotFound       = "слот не найден"
	msgSlotReferenced = "на слот ссылается активное бронирование"
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

// Handle DELETE /api/v1/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /slots/{id} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	if err := h.service.DeleteSlot(r.Context(), slotID); err != nil {
		switch {
		case errors.Is(err, calendar.ErrSlotNotFound):
			h.logger.Warn("DELETE /slots/{id} - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, calendar.ErrSlotReferenced):
			h.logger.Warn("DELETE /slots/{id} - Slot referenced by active booking: slot_id=%d", slotID)
			handlers.RespondConflict(w, msgSlotReferenced)

		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("DELETE /slots/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlotID)

		default:
			h.logger.Error("DELETE /slots/{id} - Failed to delete slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /slots/{id} - Slot deleted: slot_id=%d", slotID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
