package get_slot_availability

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/VisitBookingService/internal/api/handlers"
	"github.com/m04kA/VisitBookingService/internal/domain"
	getSlotAvailability "github.com/m04kA/VisitBookingService/internal/usecase/get_slot_availability"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetSlotAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dateStr := vars["date"]

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /slots/{date} - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSlotAvailability.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /slots/{date} - Failed to get availability: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /slots/{date} - Availability retrieved: date=%s, total=%d",
		dateStr, result.TotalBookings)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
