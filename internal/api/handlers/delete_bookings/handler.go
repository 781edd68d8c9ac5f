package delete_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/VisitBookingService/internal/api/handlers"
	bookingService "github.com/m04kA/VisitBookingService/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyIDs           = "список ids пуст"
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

// BulkDeleteRequest HTTP request model
type BulkDeleteRequest struct {
	IDs []int64 `json:"ids"`
}

// Handle DELETE /api/v1/admin/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BulkDeleteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /admin/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.DeleteBulk(r.Context(), req.IDs)
	if err != nil {
		if errors.Is(err, bookingService.ErrInvalidInput) {
			h.logger.Warn("DELETE /admin/bookings - Empty ids list")
			handlers.RespondBadRequest(w, msgEmptyIDs)
			return
		}
		h.logger.Error("DELETE /admin/bookings - Failed to delete bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/bookings - Deleted %d booking(s), not found: %d",
		result.DeletedCount, len(result.NotFoundIDs))
	handlers.RespondJSON(w, http.StatusOK, result)
}
