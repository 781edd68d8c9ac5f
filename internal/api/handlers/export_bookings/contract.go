package export_bookings

import (
	"context"

	exportService "github.com/m04kA/VisitBookingService/internal/service/export"
)

type ExportService interface {
	Export(ctx context.Context, req *exportService.Request) (*exportService.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
