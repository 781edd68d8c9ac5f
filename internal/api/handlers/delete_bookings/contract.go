package delete_bookings

import (
	"context"

	"github.com/m04kA/VisitBookingService/internal/service/bookings/models"
)

type BookingService interface {
	DeleteBulk(ctx context.Context, ids []int64) (*models.BulkDeleteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
