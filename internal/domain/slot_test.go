package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VisitBookingService/pkg/types"
)

func testCatalog(t *testing.T) SlotCatalog {
	t.Helper()

	slots := make([]types.TimeString, 0, len(DefaultSlotTimes))
	for _, raw := range DefaultSlotTimes {
		slots = append(slots, types.TimeString(raw))
	}

	catalog, err := NewSlotCatalog(slots, DefaultSlotCapacity, DefaultDailyCapacity)
	require.NoError(t, err)
	return catalog
}

func TestNewSlotCatalog(t *testing.T) {
	t.Run("orders slots chronologically", func(t *testing.T) {
		catalog, err := NewSlotCatalog(
			[]types.TimeString{"13:30", "09:00", "10:30"},
			10, 30,
		)
		require.NoError(t, err)
		assert.Equal(t, []types.TimeString{"09:00", "10:30", "13:30"}, catalog.Slots)
	})

	t.Run("rejects empty catalog", func(t *testing.T) {
		_, err := NewSlotCatalog(nil, 10, 30)
		require.Error(t, err)
	})

	t.Run("rejects duplicate slots", func(t *testing.T) {
		_, err := NewSlotCatalog([]types.TimeString{"09:00", "09:00"}, 10, 30)
		require.Error(t, err)
	})

	t.Run("rejects malformed slot time", func(t *testing.T) {
		_, err := NewSlotCatalog([]types.TimeString{"9am"}, 10, 30)
		require.Error(t, err)
	})

	t.Run("rejects non-positive capacities", func(t *testing.T) {
		_, err := NewSlotCatalog([]types.TimeString{"09:00"}, 0, 30)
		require.Error(t, err)

		_, err = NewSlotCatalog([]types.TimeString{"09:00"}, 10, 0)
		require.Error(t, err)
	})
}

func TestSlotCatalog_DefaultShape(t *testing.T) {
	catalog := testCatalog(t)

	assert.Len(t, catalog.Slots, 10)
	assert.Equal(t, types.TimeString("09:00"), catalog.Slots[0])
	assert.Equal(t, types.TimeString("13:30"), catalog.Slots[len(catalog.Slots)-1])
	assert.Equal(t, 100, catalog.SlotCapacity)
	assert.Equal(t, 1000, catalog.DailyCapacity)
}

func TestSlotCatalog_Contains(t *testing.T) {
	catalog := testCatalog(t)

	assert.True(t, catalog.Contains("09:00"))
	assert.True(t, catalog.Contains("13:30"))
	assert.False(t, catalog.Contains("14:00"))
	assert.False(t, catalog.Contains("09:15"))
}

func TestSlotCatalog_Occupancy(t *testing.T) {
	catalog := testCatalog(t)

	counts := map[types.TimeString]int{
		"09:00": 100, // полностью занят
		"09:30": 42,
		"15:00": 7, // вне каталога, игнорируется
	}

	occupancy := catalog.Occupancy(counts)
	require.Len(t, occupancy, len(catalog.Slots))

	full := occupancy[0]
	assert.Equal(t, types.TimeString("09:00"), full.StartTime)
	assert.Equal(t, 100, full.BookingCount)
	assert.Equal(t, 0, full.AvailableSpots)
	assert.False(t, full.IsAvailable)
	assert.True(t, full.IsFullyBooked)

	partial := occupancy[1]
	assert.Equal(t, 42, partial.BookingCount)
	assert.Equal(t, 58, partial.AvailableSpots)
	assert.True(t, partial.IsAvailable)
	assert.False(t, partial.IsFullyBooked)

	empty := occupancy[2]
	assert.Equal(t, 0, empty.BookingCount)
	assert.Equal(t, 100, empty.AvailableSpots)

	// Слот вне каталога не появляется в результате
	for _, slot := range occupancy {
		assert.NotEqual(t, types.TimeString("15:00"), slot.StartTime)
	}
}

func TestSlotCatalog_AvailableForDate(t *testing.T) {
	catalog := testCatalog(t)

	assert.Equal(t, 1000, catalog.AvailableForDate(0))
	assert.Equal(t, 1, catalog.AvailableForDate(999))
	assert.Equal(t, 0, catalog.AvailableForDate(1000))
	assert.Equal(t, 0, catalog.AvailableForDate(1500))
}

func TestSlotCatalog_UtilizationRate(t *testing.T) {
	catalog := testCatalog(t)

	assert.Equal(t, 0.0, catalog.UtilizationRate(0))
	assert.Equal(t, 50.0, catalog.UtilizationRate(500))
	assert.Equal(t, 100.0, catalog.UtilizationRate(1000))
	assert.Equal(t, 12.3, catalog.UtilizationRate(123))
}

func TestNewIdentity(t *testing.T) {
	t.Run("normalizes email to lower case", func(t *testing.T) {
		email := "Ivan.Petrov@Example.COM"
		identity := NewIdentity(&email, "+79001234567")

		require.True(t, identity.HasEmail())
		assert.Equal(t, "ivan.petrov@example.com", *identity.Email)
		assert.Equal(t, "+79001234567", identity.Phone)
	})

	t.Run("blank email treated as absent", func(t *testing.T) {
		email := "   "
		identity := NewIdentity(&email, "+79001234567")

		assert.False(t, identity.HasEmail())
	})

	t.Run("nil email", func(t *testing.T) {
		identity := NewIdentity(nil, "+79001234567")

		assert.False(t, identity.HasEmail())
	})
}
