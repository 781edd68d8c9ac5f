package domain

import (
	"time"

	"github.com/m04kA/VisitBookingService/pkg/types"
)

// Booking represents a committed visit reservation
// Запись неизменяемая после создания: редактирования нет, только
// административное удаление
type Booking struct {
	ID       int64
	Name     string
	Email    *string // опционально; домен приводится к нижнему регистру перед сохранением
	Phone    string
	Purpose  string
	Date     time.Time        // календарная дата без времени
	TimeSlot types.TimeString // время слота из каталога, "HH:MM"

	CreatedAt time.Time
}

// Identity возвращает идентичность посетителя для недельного ограничения
func (b *Booking) Identity() Identity {
	return NewIdentity(b.Email, b.Phone)
}

// ListFilter фильтр для выборки бронирований за период
// Обе границы опциональны и включительны
type ListFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}
