package create_booking

import (
	"time"

	"github.com/m04kA/VisitBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Name     string           // имя посетителя
	Email    *string          // email (опционально)
	Phone    string           // телефон, цифры с опциональным ведущим "+"
	Purpose  string           // цель визита
	Date     time.Time        // дата бронирования (без времени)
	TimeSlot types.TimeString // время слота из каталога, например "09:00"
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID       int64
	Name     string
	Email    *string
	Phone    string
	Purpose  string
	Date     time.Time
	TimeSlot types.TimeString

	CreatedAt time.Time
}
