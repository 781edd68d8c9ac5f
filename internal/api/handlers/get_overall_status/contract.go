package get_overall_status

import (
	"context"

	"github.com/m04kA/VisitBookingService/internal/service/bookings/models"
)

type BookingService interface {
	OverallStatus(ctx context.Context) (*models.OverallStatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
