package create_slot

import (
	"errors"
	"net/http"
	"time"

	"github.com/velmark/NST-BookingService/internal/api/handlers"
	"github.com/velmark/NST-BookingService/internal/domain"
	"github.com/velmark/NST-BookingService/internal/service/calendar"
	"github.com/velmark/NST-BookingService/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidStartTime   = "время начала не входит в сетку слотов"
	msgSlotExists         = "слот на это время уже существует"
	msgDateBlocked        = "дата закрыта для записи"
	msgInvalidInput       = "некорректные входные данные"
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

// Handle POST /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		h.logger.Warn("POST /slots - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	slot, err := h.service.CreateSlot(r.Context(), date, startTime, req.ResourceID, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidStartTime):
			h.logger.Warn("POST /slots - Start time not in grid: %s", req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidStartTime)

		case errors.Is(err, calendar.ErrSlotAlreadyExists):
			h.logger.Warn("POST /slots - Slot already exists: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotExists)

		case errors.Is(err, calendar.ErrDateBlocked):
			h.logger.Warn("POST /slots - Date blocked: %s", req.Date)
			handlers.RespondConflict(w, msgDateBlocked)

		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("POST /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /slots - Failed to create slot: date=%s, time=%s, error=%v",
				req.Date, req.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots - Slot created: slot_id=%d, date=%s, time=%s", slot.ID, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainSlot(slot))
}
