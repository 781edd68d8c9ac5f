package models

import (
	"time"

	"github.com/m04kA/VisitBookingService/internal/domain"
)

// Request модели

// ListBookingsRequest запрос на получение бронирований за период
type ListBookingsRequest struct {
	StartDate *time.Time // начало периода (опционально, включительно)
	EndDate   *time.Time // конец периода (опционально, включительно)
}

// WeeklyStatusRequest запрос недельного статуса идентичности посетителя
type WeeklyStatusRequest struct {
	Phone string     // обязателен
	Email *string    // опционально
	Date  *time.Time // неделя этой даты; по умолчанию - текущая
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Email    *string `json:"email,omitempty"`
	Phone    string  `json:"phone"`
	Purpose  string  `json:"purpose"`
	Date     string  `json:"date"`     // "2025-10-15"
	TimeSlot string  `json:"timeSlot"` // "09:00"

	CreatedAt time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// StatsResponse агрегированная статистика бронирований
type StatsResponse struct {
	TotalBookings     int `json:"totalBookings"`
	MaxBookings       int `json:"maxBookings"`
	AvailableBookings int `json:"availableBookings"`
}

// OverallStatusResponse общий статус дня
type OverallStatusResponse struct {
	AvailableSlots  int     `json:"availableSlots"`
	TotalBookings   int     `json:"totalBookings"`
	DailyCapacity   int     `json:"dailyCapacity"`
	UtilizationRate float64 `json:"utilizationRate"` // проценты, один знак после запятой
}

// WeeklyStatusResponse статус недельного ограничения идентичности
type WeeklyStatusResponse struct {
	HasBookedThisWeek bool `json:"hasBookedThisWeek"`
	WeeklyBookings    int  `json:"weeklyBookings"`
	CanBook           bool `json:"canBook"`
}

// BulkDeleteResponse результат пакетного удаления
// NotFoundIDs перечисляет запрошенные ID, которых не оказалось в хранилище:
// пакетное удаление не падает на отсутствующих ID, но сообщает о них
type BulkDeleteResponse struct {
	Deleted      []BookingResponse `json:"deleted"`
	DeletedCount int               `json:"deletedCount"`
	NotFoundIDs  []int64           `json:"notFoundIds"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		Purpose:   b.Purpose,
		Date:      b.Date.Format(domain.DateFormat),
		TimeSlot:  b.TimeSlot.String(),
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
