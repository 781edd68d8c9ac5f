package create_booking

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/m04kA/VisitBookingService/internal/domain"
)

// phonePattern телефон: опциональный ведущий "+", первая цифра не ноль,
// всего до 16 цифр (E.164)
var phonePattern = regexp.MustCompile(`^[+]?[1-9]\d{0,15}$`)

// validateRequest валидирует запрос и нормализует поля на месте
// Возвращает *ValidationError со ВСЕМИ нарушениями
func validateRequest(req *Request, catalog domain.SlotCatalog) *ValidationError {
	violations := make([]FieldViolation, 0)

	// name: обрезанная длина в границах [2, 255], границы включительны
	req.Name = strings.TrimSpace(req.Name)
	if len(req.Name) < domain.MinNameLength || len(req.Name) > domain.MaxNameLength {
		violations = append(violations, FieldViolation{
			Field:   "name",
			Message: fmt.Sprintf("must be between %d and %d characters", domain.MinNameLength, domain.MaxNameLength),
		})
	}

	// email: опционален; при наличии - корректный синтаксис адреса,
	// домен приводится к нижнему регистру перед сохранением
	if req.Email != nil {
		trimmed := strings.TrimSpace(*req.Email)
		if trimmed == "" {
			req.Email = nil
		} else if normalized, err := normalizeEmail(trimmed); err != nil {
			violations = append(violations, FieldViolation{
				Field:   "email",
				Message: "must be a valid email address",
			})
		} else {
			req.Email = &normalized
		}
	}

	// phone: обязателен, проверяется после удаления пробелов
	req.Phone = stripWhitespace(req.Phone)
	if req.Phone == "" {
		violations = append(violations, FieldViolation{
			Field:   "phone",
			Message: "is required",
		})
	} else if !phonePattern.MatchString(req.Phone) {
		violations = append(violations, FieldViolation{
			Field:   "phone",
			Message: "must contain only digits with an optional leading +",
		})
	}

	// purpose: обрезанная длина в границах [5, 1000]
	req.Purpose = strings.TrimSpace(req.Purpose)
	if len(req.Purpose) < domain.MinPurposeLength || len(req.Purpose) > domain.MaxPurposeLength {
		violations = append(violations, FieldViolation{
			Field:   "purpose",
			Message: fmt.Sprintf("must be between %d and %d characters", domain.MinPurposeLength, domain.MaxPurposeLength),
		})
	}

	// date: корректная календарная дата
	if req.Date.IsZero() {
		violations = append(violations, FieldViolation{
			Field:   "date",
			Message: "is required",
		})
	}

	// time_slot: формат HH:MM и членство в каталоге слотов
	if req.TimeSlot.IsZero() {
		violations = append(violations, FieldViolation{
			Field:   "time_slot",
			Message: "is required",
		})
	} else if err := req.TimeSlot.Validate(); err != nil {
		violations = append(violations, FieldViolation{
			Field:   "time_slot",
			Message: "must be a valid HH:MM time",
		})
	} else if !catalog.Contains(req.TimeSlot) {
		violations = append(violations, FieldViolation{
			Field:   "time_slot",
			Message: "is not a bookable time slot",
		})
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

// normalizeEmail проверяет синтаксис адреса и приводит домен к нижнему регистру
func normalizeEmail(s string) (string, error) {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return "", err
	}
	// ParseAddress принимает формы с display name ("Name <a@b>"), нам нужен
	// только голый адрес
	if addr.Address != s {
		return "", fmt.Errorf("address must not contain a display name")
	}

	at := strings.LastIndex(addr.Address, "@")
	local := addr.Address[:at]
	domainPart := strings.ToLower(addr.Address[at+1:])

	return local + "@" + domainPart, nil
}

// stripWhitespace удаляет все пробельные символы из строки
func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
