package create_booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSlotFull возвращается, когда слот заполнен до вместимости
	ErrSlotFull = errors.New("create_booking: slot is fully booked")

	// ErrWeeklyLimitExceeded возвращается, когда идентичность посетителя
	// уже имеет бронирование на этой календарной неделе
	ErrWeeklyLimitExceeded = errors.New("create_booking: weekly booking limit exceeded")

	// ErrDailyLimitReached возвращается, когда дневной лимит даты исчерпан
	ErrDailyLimitReached = errors.New("create_booking: daily booking limit reached")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// FieldViolation нарушение валидации одного поля
type FieldViolation struct {
	Field   string
	Message string
}

// ValidationError содержит ВСЕ нарушения валидации запроса, а не только
// первое: клиент исправляет форму за один проход
type ValidationError struct {
	Violations []FieldViolation
}

// Error реализует интерфейс error
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Field + ": " + v.Message
	}
	return fmt.Sprintf("create_booking: validation failed: %s", strings.Join(parts, "; "))
}
