package get_slot_availability

import (
	"time"

	"github.com/m04kA/VisitBookingService/internal/domain"
)

// Request модель запроса среза доступности
type Request struct {
	Date time.Time // дата, для которой запрашивается занятость слотов
}

// Response срез занятости всех слотов каталога на дату
// TotalBookings всегда равен сумме BookingCount по слотам: обе величины
// вычисляются из одного чтения
type Response struct {
	Date          time.Time
	Slots         []domain.SlotOccupancy
	TotalBookings int
	DailyCapacity int
}
