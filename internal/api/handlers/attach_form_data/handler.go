package attach_form_data

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/velmark/NST-BookingService/internal/api/handlers"
	attachFormData "github.com/velmark/NST-BookingService/internal/usecase/attach_form_data"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные входные данные"
	msgNotFound           = "бронирование не найдено"
	msgInvalidState       = "бронирование не ожидает данных формы"
	msgDuplicateResponse  = "ответ формы уже привязан к другому бронированию"
)

type Handler struct {
	useCase AttachFormDataUseCase
	logger  Logger
}

func NewHandler(useCase AttachFormDataUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/form-data
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/form-data - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req AttachFormDataRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/form-data - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID))
	if err != nil {
		switch {
		case errors.Is(err, attachFormData.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/form-data - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, attachFormData.ErrInvalidState):
			h.logger.Warn("POST /bookings/{id}/form-data - Invalid state: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgInvalidState)

		case errors.Is(err, attachFormData.ErrDuplicateResponse):
			h.logger.Warn("POST /bookings/{id}/form-data - Duplicate response: booking_id=%d, response_id=%s",
				bookingID, req.ExternalResponseID)
			handlers.RespondConflict(w, msgDuplicateResponse)

		case errors.Is(err, attachFormData.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/form-data - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/{id}/form-data - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/form-data - Form data attached: booking_id=%d, status=%s",
		result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
