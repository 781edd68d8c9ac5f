package domain

// Business validation constants
const (
	MinNameLength    = 2
	MaxNameLength    = 255
	MinPurposeLength = 5
	MaxPurposeLength = 1000
	MaxEmailLength   = 255
	MaxPhoneLength   = 16 // до 16 цифр с опциональным ведущим "+"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Дефолтный каталог слотов: 10 получасовых слотов с 09:00,
// вместимость слота 100, дневной лимит 1000
// Используется, когда секция [slots] не задана в config.toml
var DefaultSlotTimes = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00",
	"11:30", "12:00", "12:30", "13:00", "13:30",
}

const (
	DefaultSlotCapacity  = 100
	DefaultDailyCapacity = 1000
)
