package list_bookings

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
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPeriod = "дата окончания раньше даты начала"
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

// Handle GET /api/v1/admin/bookings?startDate={date}&endDate={date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parsePeriod(r)
	if err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid period: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookingService.ErrInvalidInput) {
			h.logger.Warn("GET /admin/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings - Listed %d booking(s)", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// parsePeriod читает опциональные границы периода из query параметров
func parsePeriod(r *http.Request) (*models.ListBookingsRequest, error) {
	query := r.URL.Query()
	req := &models.ListBookingsRequest{}

	if startStr := query.Get("startDate"); startStr != "" {
		start, err := time.Parse(domain.DateFormat, startStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &start
	}

	if endStr := query.Get("endDate"); endStr != "" {
		end, err := time.Parse(domain.DateFormat, endStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &end
	}

	return req, nil
}
