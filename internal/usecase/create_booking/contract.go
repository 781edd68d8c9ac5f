package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/VisitBookingService/internal/domain"
	"github.com/m04kA/VisitBookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	CountByDateAndSlot(ctx context.Context, date time.Time, slot types.TimeString) (int, error)
	CountByIdentityAndWeek(ctx context.Context, identity domain.Identity, weekStart, weekEnd time.Time) (int, error)
	CountByDate(ctx context.Context, date time.Time) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
