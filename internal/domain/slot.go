package domain

import (
	"fmt"
	"math"
	"sort"

	"github.com/m04kA/VisitBookingService/pkg/types"
)

// SlotCatalog фиксированный каталог слотов дня
// Каталог не зависит от даты: каждый день имеет один и тот же набор слотов,
// одинаковую вместимость слота и общий дневной лимит
type SlotCatalog struct {
	Slots         []types.TimeString // упорядоченный список времен начала слотов
	SlotCapacity  int                // вместимость одного слота
	DailyCapacity int                // суммарный дневной лимит по всем слотам
}

// NewSlotCatalog создает каталог с валидацией
func NewSlotCatalog(slots []types.TimeString, slotCapacity, dailyCapacity int) (SlotCatalog, error) {
	if len(slots) == 0 {
		return SlotCatalog{}, fmt.Errorf("domain: slot catalog must not be empty")
	}
	if slotCapacity <= 0 {
		return SlotCatalog{}, fmt.Errorf("domain: slot capacity must be positive, got %d", slotCapacity)
	}
	if dailyCapacity <= 0 {
		return SlotCatalog{}, fmt.Errorf("domain: daily capacity must be positive, got %d", dailyCapacity)
	}

	seen := make(map[types.TimeString]struct{}, len(slots))
	ordered := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if err := slot.Validate(); err != nil {
			return SlotCatalog{}, fmt.Errorf("domain: invalid slot time %q: %w", slot, err)
		}
		if _, ok := seen[slot]; ok {
			return SlotCatalog{}, fmt.Errorf("domain: duplicate slot time %q", slot)
		}
		seen[slot] = struct{}{}
		ordered = append(ordered, slot)
	}

	sort.Slice(ordered, func(i, j int) bool { return ordered[i].IsBefore(ordered[j]) })

	return SlotCatalog{
		Slots:         ordered,
		SlotCapacity:  slotCapacity,
		DailyCapacity: dailyCapacity,
	}, nil
}

// Contains проверяет, что время входит в каталог
func (c SlotCatalog) Contains(slot types.TimeString) bool {
	for _, s := range c.Slots {
		if s == slot {
			return true
		}
	}
	return false
}

// SlotOccupancy занятость одного слота каталога
type SlotOccupancy struct {
	StartTime      types.TimeString
	BookingCount   int
	Capacity       int
	AvailableSpots int
	IsAvailable    bool
	IsFullyBooked  bool
}

// Occupancy строит занятость каждого слота каталога по подсчитанным
// бронированиям; счетчики слотов, которых нет в каталоге, игнорируются
func (c SlotCatalog) Occupancy(counts map[types.TimeString]int) []SlotOccupancy {
	result := make([]SlotOccupancy, len(c.Slots))
	for i, slot := range c.Slots {
		count := counts[slot]
		available := c.SlotCapacity - count
		if available < 0 {
			available = 0
		}
		result[i] = SlotOccupancy{
			StartTime:      slot,
			BookingCount:   count,
			Capacity:       c.SlotCapacity,
			AvailableSpots: available,
			IsAvailable:    count < c.SlotCapacity,
			IsFullyBooked:  count >= c.SlotCapacity,
		}
	}
	return result
}

// AvailableForDate возвращает остаток дневного лимита
func (c SlotCatalog) AvailableForDate(totalBookings int) int {
	available := c.DailyCapacity - totalBookings
	if available < 0 {
		return 0
	}
	return available
}

// UtilizationRate возвращает загрузку дня в процентах, округленную
// до одного знака после запятой
func (c SlotCatalog) UtilizationRate(totalBookings int) float64 {
	if c.DailyCapacity == 0 {
		return 0
	}
	rate := float64(totalBookings) / float64(c.DailyCapacity) * 100
	return math.Round(rate*10) / 10
}
