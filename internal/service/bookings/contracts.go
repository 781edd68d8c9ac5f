package bookings

import (
	"context"
	"time"

	"github.com/m04kA/VisitBookingService/internal/domain"
	"github.com/m04kA/VisitBookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListByDateRange(ctx context.Context, filter domain.ListFilter) ([]*domain.Booking, error)
	Count(ctx context.Context, filter domain.ListFilter) (int, error)
	CountByDate(ctx context.Context, date time.Time) (int, error)
	CountsBySlot(ctx context.Context, date time.Time) (map[types.TimeString]int, error)
	CountByIdentityAndWeek(ctx context.Context, identity domain.Identity, weekStart, weekEnd time.Time) (int, error)
	DeleteByID(ctx context.Context, id int64) (*domain.Booking, error)
	DeleteByIDs(ctx context.Context, ids []int64) ([]*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
