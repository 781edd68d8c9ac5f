package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/VisitBookingService/internal/domain"
	"github.com/m04kA/VisitBookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) ListByDateRange(_ context.Context, _ domain.ListFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func TestService_Export(t *testing.T) {
	now := time.Date(2025, 10, 16, 14, 30, 0, 0, time.UTC)

	bookings := []*domain.Booking{
		{
			ID:        2,
			Name:      "Anna Sidorova",
			Phone:     "+79009876543",
			Purpose:   "Document pickup",
			Date:      time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC),
			TimeSlot:  "09:00",
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:        1,
			Name:      "Ivan Petrov",
			Email:     ptr.Ptr("ivan@example.com"),
			Phone:     "+79001234567",
			Purpose:   "Consultation",
			Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
			TimeSlot:  "10:30",
			CreatedAt: now.Add(-26 * time.Hour),
		},
	}

	svc := NewService(&fakeBookingRepo{bookings: bookings}, nopLogger{})
	svc.timeProvider = fixedTime{now: now}

	result, err := svc.Export(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, "bookings_all_all_20251016_143000.xlsx", result.Filename)
	require.NotEmpty(t, result.Data)

	// Перечитываем книгу и проверяем содержимое
	f, err := excelize.OpenReader(bytes.NewReader(result.Data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3) // заголовок + 2 записи

	assert.Equal(t, []string{"ID", "Name", "Email", "Phone", "Purpose", "Date", "Time Slot", "Created At"}, rows[0])

	// Порядок строк совпадает с порядком листинга
	assert.Equal(t, "2", rows[1][0])
	assert.Equal(t, "Anna Sidorova", rows[1][1])
	assert.Equal(t, "+79009876543", rows[1][3])
	assert.Equal(t, "2025-10-16", rows[1][5])
	assert.Equal(t, "09:00", rows[1][6])

	assert.Equal(t, "1", rows[2][0])
	assert.Equal(t, "ivan@example.com", rows[2][2])
	assert.Equal(t, "10:30", rows[2][6])
}

func TestService_Export_FilenameIncludesPeriod(t *testing.T) {
	now := time.Date(2025, 10, 16, 14, 30, 0, 0, time.UTC)
	start := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC)

	svc := NewService(&fakeBookingRepo{}, nopLogger{})
	svc.timeProvider = fixedTime{now: now}

	result, err := svc.Export(context.Background(), &Request{StartDate: &start, EndDate: &end})
	require.NoError(t, err)

	assert.Equal(t, "bookings_2025-10-01_2025-10-31_20251016_143000.xlsx", result.Filename)
}

func TestService_Export_EmptyResult(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})
	svc.timeProvider = fixedTime{now: time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)}

	result, err := svc.Export(context.Background(), &Request{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(result.Data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1) // только заголовок
}

func TestService_Export_InvertedPeriodRejected(t *testing.T) {
	start := time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	_, err := svc.Export(context.Background(), &Request{StartDate: &start, EndDate: &end})
	require.ErrorIs(t, err, ErrInvalidInput)
}
