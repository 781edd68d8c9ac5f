package get_slot_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VisitBookingService/internal/domain"
	"github.com/m04kA/VisitBookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	counts map[types.TimeString]int
}

func (f *fakeBookingRepo) CountsBySlot(_ context.Context, _ time.Time) (map[types.TimeString]int, error) {
	return f.counts, nil
}

func testCatalog(t *testing.T) domain.SlotCatalog {
	t.Helper()

	slots := make([]types.TimeString, 0, len(domain.DefaultSlotTimes))
	for _, raw := range domain.DefaultSlotTimes {
		slots = append(slots, types.TimeString(raw))
	}

	catalog, err := domain.NewSlotCatalog(slots, domain.DefaultSlotCapacity, domain.DefaultDailyCapacity)
	require.NoError(t, err)
	return catalog
}

func TestUseCase_Execute(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	t.Run("returns every catalog slot with counts", func(t *testing.T) {
		repo := &fakeBookingRepo{counts: map[types.TimeString]int{
			"09:00": 100,
			"09:30": 42,
		}}
		uc := NewUseCase(repo, testCatalog(t), nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{Date: date})
		require.NoError(t, err)

		require.Len(t, resp.Slots, 10)
		assert.Equal(t, 142, resp.TotalBookings)
		assert.Equal(t, domain.DefaultDailyCapacity, resp.DailyCapacity)

		assert.True(t, resp.Slots[0].IsFullyBooked)
		assert.Equal(t, 58, resp.Slots[1].AvailableSpots)
		assert.Equal(t, 0, resp.Slots[2].BookingCount)
	})

	t.Run("per-slot counts sum to total", func(t *testing.T) {
		repo := &fakeBookingRepo{counts: map[types.TimeString]int{
			"09:00": 3,
			"10:00": 7,
			"13:30": 11,
		}}
		uc := NewUseCase(repo, testCatalog(t), nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{Date: date})
		require.NoError(t, err)

		sum := 0
		for _, slot := range resp.Slots {
			sum += slot.BookingCount
		}
		assert.Equal(t, resp.TotalBookings, sum)
	})

	t.Run("counts outside the catalog are ignored", func(t *testing.T) {
		repo := &fakeBookingRepo{counts: map[types.TimeString]int{
			"09:00": 5,
			"15:00": 99, // слот из старой конфигурации
		}}
		uc := NewUseCase(repo, testCatalog(t), nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{Date: date})
		require.NoError(t, err)
		assert.Equal(t, 5, resp.TotalBookings)
	})

	t.Run("empty day", func(t *testing.T) {
		repo := &fakeBookingRepo{counts: map[types.TimeString]int{}}
		uc := NewUseCase(repo, testCatalog(t), nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{Date: date})
		require.NoError(t, err)

		assert.Equal(t, 0, resp.TotalBookings)
		for _, slot := range resp.Slots {
			assert.True(t, slot.IsAvailable)
			assert.Equal(t, domain.DefaultSlotCapacity, slot.AvailableSpots)
		}
	})

	t.Run("zero date rejected", func(t *testing.T) {
		uc := NewUseCase(&fakeBookingRepo{}, testCatalog(t), nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
