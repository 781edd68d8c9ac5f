package export_bookings

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/VisitBookingService/internal/api/handlers"
	"github.com/m04kA/VisitBookingService/internal/domain"
	exportService "github.com/m04kA/VisitBookingService/internal/service/export"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPeriod = "дата окончания раньше даты начала"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service ExportService
	logger  Logger
}

func NewHandler(service ExportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/export?startDate={date}&endDate={date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parsePeriod(r)
	if err != nil {
		h.logger.Warn("GET /admin/export - Invalid period: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Export(r.Context(), req)
	if err != nil {
		if errors.Is(err, exportService.ErrInvalidInput) {
			h.logger.Warn("GET /admin/export - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		h.logger.Error("GET /admin/export - Failed to export bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/export - Export completed: file=%s, size=%d bytes",
		result.Filename, len(result.Data))

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(result.Data)
}

// parsePeriod читает опциональные границы периода из query параметров
func parsePeriod(r *http.Request) (*exportService.Request, error) {
	query := r.URL.Query()
	req := &exportService.Request{}

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
