package export

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/VisitBookingService/internal/domain"
)

const sheetName = "Bookings"

// columnHeaders фиксированный порядок колонок выгрузки
var columnHeaders = []interface{}{
	"ID", "Name", "Email", "Phone", "Purpose", "Date", "Time Slot", "Created At",
}

// Request параметры выгрузки (совпадают с фильтром списка)
type Request struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// Result готовая выгрузка: имя файла и содержимое XLSX
type Result struct {
	Filename string
	Data     []byte
}

// Service сервис выгрузки бронирований в XLSX
// Выгрузка использует тот же фильтр и порядок, что и листинг: набор и
// порядок записей в файле и в списке совпадают
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса выгрузки
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Export формирует XLSX файл с бронированиями за период
// Выгрузка не пагинируется: выполняется до конца или завершается ошибкой
func (s *Service) Export(ctx context.Context, req *Request) (*Result, error) {
	s.logger.Info("Export: period=%s..%s", boundary(req.StartDate), boundary(req.EndDate))

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}

	list, err := s.bookingRepo.ListByDateRange(ctx, domain.ListFilter{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		s.logger.Error("Export: repository error: %v", err)
		return nil, fmt.Errorf("%w: Export - repository error: %v", ErrInternal, err)
	}

	data, err := buildWorkbook(list)
	if err != nil {
		s.logger.Error("Export: failed to build workbook: %v", err)
		return nil, fmt.Errorf("%w: Export - build workbook: %v", ErrInternal, err)
	}

	filename := fmt.Sprintf("bookings_%s_%s_%s.xlsx",
		boundary(req.StartDate),
		boundary(req.EndDate),
		s.timeProvider.Now().Format("20060102_150405"),
	)

	s.logger.Info("Export: exported %d booking(s) to %s", len(list), filename)

	return &Result{Filename: filename, Data: data}, nil
}

// buildWorkbook собирает XLSX книгу с одним листом
func buildWorkbook(list []*domain.Booking) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(sheetName, "A1", &columnHeaders); err != nil {
		return nil, err
	}

	for i, b := range list {
		email := ""
		if b.Email != nil {
			email = *b.Email
		}

		row := []interface{}{
			b.ID,
			b.Name,
			email,
			b.Phone,
			b.Purpose,
			b.Date.Format(domain.DateFormat),
			b.TimeSlot.String(),
			b.CreatedAt.Format(time.RFC3339),
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// boundary форматирует границу периода для имени файла и логов
func boundary(t *time.Time) string {
	if t == nil {
		return "all"
	}
	return t.Format(domain.DateFormat)
}
