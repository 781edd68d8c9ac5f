package get_weekly_status

import (
	"context"

	"github.com/m04kA/VisitBookingService/internal/service/bookings/models"
)

type BookingService interface {
	WeeklyStatus(ctx context.Context, req *models.WeeklyStatusRequest) (*models.WeeklyStatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
