package get_slot_availability

import (
	"github.com/m04kA/VisitBookingService/internal/domain"
	getSlotAvailability "github.com/m04kA/VisitBookingService/internal/usecase/get_slot_availability"
)

// SlotAvailabilityResponse HTTP response model
type SlotAvailabilityResponse struct {
	Date          string         `json:"date"`
	Slots         []SlotsPayload `json:"slots"`
	TotalBookings int            `json:"totalBookings"`
	DailyCapacity int            `json:"dailyCapacity"`
}

// SlotsPayload занятость одного слота
type SlotsPayload struct {
	StartTime      string `json:"startTime"`
	BookingCount   int    `json:"bookingCount"`
	Capacity       int    `json:"capacity"`
	AvailableSpots int    `json:"availableSpots"`
	IsAvailable    bool   `json:"isAvailable"`
	IsFullyBooked  bool   `json:"isFullyBooked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlotAvailability.Response) *SlotAvailabilityResponse {
	slots := make([]SlotsPayload, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotsPayload{
			StartTime:      slot.StartTime.String(),
			BookingCount:   slot.BookingCount,
			Capacity:       slot.Capacity,
			AvailableSpots: slot.AvailableSpots,
			IsAvailable:    slot.IsAvailable,
			IsFullyBooked:  slot.IsFullyBooked,
		}
	}

	return &SlotAvailabilityResponse{
		Date:          resp.Date.Format(domain.DateFormat),
		Slots:         slots,
		TotalBookings: resp.TotalBookings,
		DailyCapacity: resp.DailyCapacity,
	}
}
