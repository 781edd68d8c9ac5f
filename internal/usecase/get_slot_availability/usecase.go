package get_slot_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/VisitBookingService/internal/domain"
)

// UseCase use case получения среза доступности слотов на дату
// Только чтение: счетчики не кешируются, каждый запрос перечитывает
// агрегаты из хранилища
type UseCase struct {
	bookingRepo BookingRepository
	catalog     domain.SlotCatalog
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, catalog domain.SlotCatalog, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalog:     catalog,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступности слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	uc.logger.Info("GetSlotAvailability: date=%s", req.Date.Format(domain.DateFormat))

	counts, err := uc.bookingRepo.CountsBySlot(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetSlotAvailability: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
	}

	slots := uc.catalog.Occupancy(counts)

	// Суммируем по слотам каталога, а не по сырым счетчикам: записи вне
	// каталога (после смены конфигурации) не должны ломать инвариант
	// "сумма по слотам == total"
	total := 0
	for _, slot := range slots {
		total += slot.BookingCount
	}

	uc.logger.Info("GetSlotAvailability: date=%s, total=%d/%d",
		req.Date.Format(domain.DateFormat), total, uc.catalog.DailyCapacity)

	return &Response{
		Date:          req.Date,
		Slots:         slots,
		TotalBookings: total,
		DailyCapacity: uc.catalog.DailyCapacity,
	}, nil
}
