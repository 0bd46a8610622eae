package blocked_ranges

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/velmark/NST-BookingService/internal/api/handlers"
	"github.com/velmark/NST-BookingService/internal/domain"
	"github.com/velmark/NST-BookingService/internal/service/calendar"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDates       = "некорректные даты диапазона"
	msgInvalidRange       = "дата окончания раньше даты начала"
	msgInvalidRangeID     = "некорректный ID диапазона"
	msgRangeNotFound      = "диапазон не найден"
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

// HandleCreate POST /api/v1/blocked-ranges
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateBlockedRangeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocked-ranges - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	startDate, endDate, err := req.parseDates()
	if err != nil {
		h.logger.Warn("POST /blocked-ranges - Invalid dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	created, err := h.service.CreateBlockedRange(r.Context(), startDate, endDate, req.Reason, domain.BlockedRangeScope(req.Scope))
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidRange):
			h.logger.Warn("POST /blocked-ranges - Invalid range: start=%s, end=%s", req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("POST /blocked-ranges - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /blocked-ranges - Failed to create range: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocked-ranges - Range created: range_id=%d, %s..%s",
		created.ID, created.StartDate.Format(domain.DateFormat), created.EndDate.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusCreated, FromDomainBlockedRange(created))
}

// HandleList GET /api/v1/blocked-ranges
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ranges, err := h.service.ListBlockedRanges(r.Context())
	if err != nil {
		h.logger.Error("GET /blocked-ranges - Failed to list ranges: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /blocked-ranges - Retrieved %d range(s)", len(ranges))
	handlers.RespondJSON(w, http.StatusOK, FromDomainBlockedRangeList(ranges))
}

// HandleDeactivate DELETE /api/v1/blocked-ranges/{rangeId}
func (h *Handler) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	rangeID, err := strconv.ParseInt(vars["rangeId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /blocked-ranges/{id} - Invalid range ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRangeID)
		return
	}

	if err := h.service.DeactivateBlockedRange(r.Context(), rangeID); err != nil {
		switch {
		case errors.Is(err, calendar.ErrRangeNotFound):
			h.logger.Warn("DELETE /blocked-ranges/{id} - Range not found: range_id=%d", rangeID)
			handlers.RespondNotFound(w, msgRangeNotFound)

		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("DELETE /blocked-ranges/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRangeID)

		default:
			h.logger.Error("DELETE /blocked-ranges/{id} - Failed: range_id=%d, error=%v", rangeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /blocked-ranges/{id} - Range deactivated: range_id=%d", rangeID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
