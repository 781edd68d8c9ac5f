package create_booking

import (
	"time"

	"github.com/m04kA/VisitBookingService/internal/domain"
	createBooking "github.com/m04kA/VisitBookingService/internal/usecase/create_booking"
	"github.com/m04kA/VisitBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name     string  `json:"name"`
	Email    *string `json:"email,omitempty"`
	Phone    string  `json:"phone"`
	Purpose  string  `json:"purpose"`
	Date     string  `json:"date"`      // "2025-10-15"
	TimeSlot string  `json:"time_slot"` // "09:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     *string `json:"email,omitempty"`
	Phone     string  `json:"phone"`
	Purpose   string  `json:"purpose"`
	Date      string  `json:"date"`
	TimeSlot  string  `json:"time_slot"`
	CreatedAt string  `json:"createdAt"`
}

// CreateBookingResponse HTTP response: ID и каноническая запись
type CreateBookingResponse struct {
	ID      int64           `json:"id"`
	Booking BookingResponse `json:"booking"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Дата парсится здесь; time_slot проверяется use case'ом против каталога,
// поэтому прокидывается без валидации формата
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Purpose:  r.Purpose,
		Date:     date,
		TimeSlot: types.TimeString(r.TimeSlot),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID: resp.ID,
		Booking: BookingResponse{
			ID:        resp.ID,
			Name:      resp.Name,
			Email:     resp.Email,
			Phone:     resp.Phone,
			Purpose:   resp.Purpose,
			Date:      resp.Date.Format(domain.DateFormat),
			TimeSlot:  resp.TimeSlot.String(),
			CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		},
	}
}
