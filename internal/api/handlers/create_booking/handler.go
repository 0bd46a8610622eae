package create_booking

import (
	"errors"
	"net/http"

	"github.com/velmark/NST-BookingService/internal/api/handlers"
	createBooking "github.com/velmark/NST-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные входные данные"
	msgInvalidService     = "неизвестный тип услуги"
	msgInvalidChain       = "слоты не образуют последовательную цепочку"
	msgSlotNotFound       = "слот не найден"
	msgSlotNotAvailable   = "выбранный слот недоступен"
	msgDateBlocked        = "дата закрыта для записи"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: slot_id=%d", req.StartSlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: slot_id=%d", req.StartSlotID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrDateBlocked):
			h.logger.Warn("POST /bookings - Date blocked: slot_id=%d", req.StartSlotID)
			handlers.RespondConflict(w, msgDateBlocked)

		case errors.Is(err, createBooking.ErrInvalidChain):
			h.logger.Warn("POST /bookings - Invalid slot chain: slot_id=%d, linked=%v", req.StartSlotID, req.LinkedSlotIDs)
			handlers.RespondBadRequest(w, msgInvalidChain)

		case errors.Is(err, createBooking.ErrInvalidServiceType):
			h.logger.Warn("POST /bookings - Invalid service type: %q", req.ServiceType)
			handlers.RespondBadRequest(w, msgInvalidService)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: slot_id=%d, error=%v", req.StartSlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, number=%s", result.ID, result.BookingNumber)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
