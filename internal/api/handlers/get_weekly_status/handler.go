package get_weekly_status

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/VisitBookingService/internal/api/handlers"
	"github.com/m04kA/VisitBookingService/internal/domain"
	bookingService "github.com/m04kA/VisitBookingService/internal/service/bookings"
	"github.com/m04kA/VisitBookingService/internal/service/bookings/models"
)

const (
	msgPhoneRequired = "параметр phone обязателен"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/user/weekly-status?phone={phone}&email={email}&date={date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	phone := query.Get("phone")
	if phone == "" {
		h.logger.Warn("GET /user/weekly-status - Missing phone parameter")
		handlers.RespondBadRequest(w, msgPhoneRequired)
		return
	}

	req := &models.WeeklyStatusRequest{Phone: phone}

	if email := query.Get("email"); email != "" {
		req.Email = &email
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /user/weekly-status - Invalid date %q: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	result, err := h.service.WeeklyStatus(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookingService.ErrInvalidInput) {
			h.logger.Warn("GET /user/weekly-status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgPhoneRequired)
			return
		}
		h.logger.Error("GET /user/weekly-status - Failed to get status: phone=%s, error=%v", phone, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /user/weekly-status - Status retrieved: phone=%s, can_book=%t",
		phone, result.CanBook)
	handlers.RespondJSON(w, http.StatusOK, result)
}
