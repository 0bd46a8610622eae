package release_expired

import (
	"net/http"

	"github.com/velmark/NST-BookingService/internal/api/handlers"
)

type Handler struct {
	useCase ReleaseExpiredUseCase
	logger  Logger
}

func NewHandler(useCase ReleaseExpiredUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// ReleaseExpiredResponse HTTP response model
type ReleaseExpiredResponse struct {
	Released int `json:"released"`
}

// Handle POST /internal/release-expired
// Ручной запуск sweeper'а, тот же use case, что и у фонового запуска
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	released, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /internal/release-expired - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /internal/release-expired - Released %d booking(s)", released)
	handlers.RespondJSON(w, http.StatusOK, ReleaseExpiredResponse{Released: released})
}
