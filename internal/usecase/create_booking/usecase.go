package create_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/VisitBookingService/internal/domain"
)

// UseCase use case создания бронирования — единственный писатель записей
// Последовательность допуска: валидация -> вместимость слота -> недельное
// ограничение -> дневной лимит -> вставка
// Проверки упорядочены от дешёвой и специфичной к дорогой и общей, первый
// отказ прерывает последовательность
type UseCase struct {
	bookingRepo BookingRepository
	catalog     domain.SlotCatalog
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalog domain.SlotCatalog,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalog:     catalog,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Все проверки и вставка выполняются в одной сериализуемой транзакции:
// два конкурентных запроса на границе вместимости не могут пройти оба
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: phone=%s, date=%s, slot=%s",
		req.Phone, req.Date.Format(domain.DateFormat), req.TimeSlot)

	// 1. Валидация входных данных (возвращает все нарушения разом)
	if vErr := validateRequest(req, uc.catalog); vErr != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", vErr)
		return nil, vErr
	}

	identity := domain.NewIdentity(req.Email, req.Phone)
	weekStart, weekEnd := domain.WeekBounds(req.Date)

	// Переменная для хранения результата
	var result *domain.Booking

	// 2. Проверки допуска и вставка в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Вместимость слота
		slotCount, err := uc.bookingRepo.CountByDateAndSlot(txCtx, req.Date, req.TimeSlot)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count slot bookings: %v", err)
			return fmt.Errorf("%w: failed to count slot bookings: %v", ErrInternal, err)
		}
		if slotCount >= uc.catalog.SlotCapacity {
			uc.logger.Warn("CreateBooking: slot %s on %s is full (%d/%d)",
				req.TimeSlot, req.Date.Format(domain.DateFormat), slotCount, uc.catalog.SlotCapacity)
			return ErrSlotFull
		}

		// 2.2. Недельное ограничение: одна запись на идентичность в ISO неделю
		weeklyCount, err := uc.bookingRepo.CountByIdentityAndWeek(txCtx, identity, weekStart, weekEnd)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count weekly bookings: %v", err)
			return fmt.Errorf("%w: failed to count weekly bookings: %v", ErrInternal, err)
		}
		if weeklyCount > 0 {
			uc.logger.Warn("CreateBooking: identity phone=%s already has %d booking(s) in week of %s",
				req.Phone, weeklyCount, weekStart.Format(domain.DateFormat))
			return ErrWeeklyLimitExceeded
		}

		// 2.3. Дневной лимит по всем слотам
		dailyCount, err := uc.bookingRepo.CountByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count daily bookings: %v", err)
			return fmt.Errorf("%w: failed to count daily bookings: %v", ErrInternal, err)
		}
		if dailyCount >= uc.catalog.DailyCapacity {
			uc.logger.Warn("CreateBooking: daily capacity reached for %s (%d/%d)",
				req.Date.Format(domain.DateFormat), dailyCount, uc.catalog.DailyCapacity)
			return ErrDailyLimitReached
		}

		// 2.4. Вставка записи
		booking := &domain.Booking{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Purpose:  req.Purpose,
			Date:     req.Date,
			TimeSlot: req.TimeSlot,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:        result.ID,
		Name:      result.Name,
		Email:     result.Email,
		Phone:     result.Phone,
		Purpose:   result.Purpose,
		Date:      result.Date,
		TimeSlot:  result.TimeSlot,
		CreatedAt: result.CreatedAt,
	}, nil
}
