package get_stats

import (
	"net/http"
	"time"

	"github.com/m04kA/VisitBookingService/internal/api/handlers"
	"github.com/m04kA/VisitBookingService/internal/domain"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/admin/stats?date={date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var date *time.Time

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /admin/stats - Invalid date %q: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = &parsed
	}

	result, err := h.service.Stats(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /admin/stats - Failed to get stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/stats - Stats retrieved: total=%d, available=%d",
		result.TotalBookings, result.AvailableBookings)
	handlers.RespondJSON(w, http.StatusOK, result)
}
