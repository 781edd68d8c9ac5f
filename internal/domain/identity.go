package domain

import "strings"

// Identity идентичность посетителя для правила "одно бронирование в неделю"
// Если email указан, совпадением считается email (без учета регистра) ИЛИ телефон;
// без email сравнивается только телефон
type Identity struct {
	Email *string
	Phone string
}

// NewIdentity создает идентичность; email нормализуется к нижнему регистру
func NewIdentity(email *string, phone string) Identity {
	var normalized *string
	if email != nil && strings.TrimSpace(*email) != "" {
		lowered := strings.ToLower(strings.TrimSpace(*email))
		normalized = &lowered
	}
	return Identity{Email: normalized, Phone: phone}
}

// HasEmail проверяет, что у посетителя указан email
func (i Identity) HasEmail() bool {
	return i.Email != nil
}
