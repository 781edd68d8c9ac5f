package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/VisitBookingService/internal/domain"
	bookingRepo "github.com/m04kA/VisitBookingService/internal/infra/storage/booking"
	"github.com/m04kA/VisitBookingService/internal/service/bookings/models"
)

// Service сервис отчетности и администрирования бронирований
// Только чтение и удаление: записи создает исключительно usecase допуска
type Service struct {
	bookingRepo  BookingRepository
	catalog      domain.SlotCatalog
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, catalog domain.SlotCatalog, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List получает бронирования за период, упорядоченные по дате по убыванию
// и слоту по возрастанию
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, period=%s", formatPeriod(req.StartDate, req.EndDate))

	if err := validatePeriod(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	list, err := s.bookingRepo.ListByDateRange(ctx, domain.ListFilter{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(list))
	return models.FromDomainBookingList(list), nil
}

// Stats возвращает статистику бронирований
// С датой: всего бронирований на дату и остаток дневного лимита
// Без даты: всего бронирований за все время, остаток считается от сегодня
func (s *Service) Stats(ctx context.Context, date *time.Time) (*models.StatsResponse, error) {
	var total int
	var err error

	scopeDate := date
	if scopeDate == nil {
		total, err = s.bookingRepo.Count(ctx, domain.ListFilter{})
	} else {
		total, err = s.bookingRepo.CountByDate(ctx, *scopeDate)
	}
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	// Остаток дневного лимита всегда считается для конкретного дня
	availabilityDate := s.today()
	if date != nil {
		availabilityDate = *date
	}

	dayCount, err := s.bookingRepo.CountByDate(ctx, availabilityDate)
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Stats: total=%d, day=%s (%d/%d)",
		total, availabilityDate.Format(domain.DateFormat), dayCount, s.catalog.DailyCapacity)

	return &models.StatsResponse{
		TotalBookings:     total,
		MaxBookings:       s.catalog.DailyCapacity,
		AvailableBookings: s.catalog.AvailableForDate(dayCount),
	}, nil
}

// OverallStatus возвращает общий статус сегодняшнего дня: количество
// ещё доступных слотов, загрузку и дневной лимит
func (s *Service) OverallStatus(ctx context.Context) (*models.OverallStatusResponse, error) {
	today := s.today()

	counts, err := s.bookingRepo.CountsBySlot(ctx, today)
	if err != nil {
		s.logger.Error("OverallStatus: repository error: %v", err)
		return nil, fmt.Errorf("%w: OverallStatus - repository error: %v", ErrInternal, err)
	}

	occupancy := s.catalog.Occupancy(counts)

	availableSlots := 0
	totalBookings := 0
	for _, slot := range occupancy {
		if slot.IsAvailable {
			availableSlots++
		}
		totalBookings += slot.BookingCount
	}

	s.logger.Info("OverallStatus: date=%s, available_slots=%d, total=%d/%d",
		today.Format(domain.DateFormat), availableSlots, totalBookings, s.catalog.DailyCapacity)

	return &models.OverallStatusResponse{
		AvailableSlots:  availableSlots,
		TotalBookings:   totalBookings,
		DailyCapacity:   s.catalog.DailyCapacity,
		UtilizationRate: s.catalog.UtilizationRate(totalBookings),
	}, nil
}

// WeeklyStatus возвращает статус недельного ограничения для идентичности
// посетителя: есть ли уже бронирование на неделе указанной даты
func (s *Service) WeeklyStatus(ctx context.Context, req *models.WeeklyStatusRequest) (*models.WeeklyStatusResponse, error) {
	if req.Phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	date := s.today()
	if req.Date != nil {
		date = *req.Date
	}

	identity := domain.NewIdentity(req.Email, req.Phone)
	weekStart, weekEnd := domain.WeekBounds(date)

	count, err := s.bookingRepo.CountByIdentityAndWeek(ctx, identity, weekStart, weekEnd)
	if err != nil {
		s.logger.Error("WeeklyStatus: repository error for phone=%s: %v", req.Phone, err)
		return nil, fmt.Errorf("%w: WeeklyStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("WeeklyStatus: phone=%s, week of %s, bookings=%d",
		req.Phone, weekStart.Format(domain.DateFormat), count)

	return &models.WeeklyStatusResponse{
		HasBookedThisWeek: count > 0,
		WeeklyBookings:    count,
		CanBook:           count == 0,
	}, nil
}

// Delete удаляет бронирование и возвращает удаленную запись
// Удаление административное и не ограничено доменными инвариантами
func (s *Service) Delete(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("Delete: deleting booking id=%d", id)

	deleted, err := s.bookingRepo.DeleteByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return models.FromDomainBooking(deleted), nil
}

// DeleteBulk удаляет бронирования пачкой
// Отсутствующие ID не считаются ошибкой, но возвращаются в NotFoundIDs
func (s *Service) DeleteBulk(ctx context.Context, ids []int64) (*models.BulkDeleteResponse, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: ids list is empty", ErrInvalidInput)
	}

	s.logger.Info("DeleteBulk: deleting %d booking(s)", len(ids))

	deleted, err := s.bookingRepo.DeleteByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("DeleteBulk: repository error: %v", err)
		return nil, fmt.Errorf("%w: DeleteBulk - repository error: %v", ErrInternal, err)
	}

	deletedIDs := make(map[int64]struct{}, len(deleted))
	responses := make([]models.BookingResponse, 0, len(deleted))
	for _, b := range deleted {
		deletedIDs[b.ID] = struct{}{}
		responses = append(responses, *models.FromDomainBooking(b))
	}

	notFound := make([]int64, 0)
	for _, id := range ids {
		if _, ok := deletedIDs[id]; !ok {
			notFound = append(notFound, id)
		}
	}

	s.logger.Info("DeleteBulk: deleted=%d, not_found=%d", len(deleted), len(notFound))

	return &models.BulkDeleteResponse{
		Deleted:      responses,
		DeletedCount: len(responses),
		NotFoundIDs:  notFound,
	}, nil
}

// Вспомогательные методы

// today возвращает сегодняшнюю дату без компонента времени (UTC)
func (s *Service) today() time.Time {
	now := s.timeProvider.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func validatePeriod(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}
	return nil
}

func formatPeriod(start, end *time.Time) string {
	format := func(t *time.Time) string {
		if t == nil {
			return "all"
		}
		return t.Format(domain.DateFormat)
	}
	return format(start) + ".." + format(end)
}
