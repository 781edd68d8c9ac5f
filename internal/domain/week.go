package domain

import "time"

// WeekBounds возвращает границы ISO недели, содержащей date:
// понедельник 00:00 и воскресенье той же недели (обе границы включительны,
// без компонента времени)
// Конвенция зафиксирована в коде, а не делегирована date_trunc БД,
// чтобы недельное ограничение не зависело от настроек Postgres
func WeekBounds(date time.Time) (start, end time.Time) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	// time.Weekday: Sunday=0 ... Saturday=6; ISO неделя начинается с понедельника
	offset := (int(day.Weekday()) + 6) % 7

	start = day.AddDate(0, 0, -offset)
	end = start.AddDate(0, 0, 6)
	return start, end
}
