package get_overall_status

import (
	"net/http"

	"github.com/m04kA/VisitBookingService/internal/api/handlers"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/status/overall
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.OverallStatus(r.Context())
	if err != nil {
		h.logger.Error("GET /slots/status/overall - Failed to get status: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /slots/status/overall - Status retrieved: available_slots=%d, total=%d",
		result.AvailableSlots, result.TotalBookings)
	handlers.RespondJSON(w, http.StatusOK, result)
}
