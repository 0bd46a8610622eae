package get_day_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/velmark/NST-BookingService/internal/api/handlers"
	"github.com/velmark/NST-BookingService/internal/domain"
	getDaySlots "github.com/velmark/NST-BookingService/internal/usecase/get_day_slots"
)

const (
	msgMissingDate       = "параметр date обязателен"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidResourceID = "некорректный resourceId"
	msgInvalidInput      = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetDaySlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetDaySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	rawDate := query.Get("date")
	if rawDate == "" {
		h.logger.Warn("GET /slots - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getDaySlots.Request{Date: date}

	if raw := query.Get("resourceId"); raw != "" {
		resourceID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /slots - Invalid resourceId: %v", err)
			handlers.RespondBadRequest(w, msgInvalidResourceID)
			return
		}
		req.ResourceID = &resourceID
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getDaySlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /slots - Failed to get slots: date=%s, error=%v", rawDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Retrieved %d slot(s) for %s", len(result.Slots), rawDate)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
