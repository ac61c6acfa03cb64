package domain

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Гранулярность учёта занятости
const (
	// TickMinutes размер тика - минимальной единицы бронирования.
	// Счётчики занятости и множества студентов ведутся по 30-минутным тикам
	TickMinutes = 30

	// MaxSlotDurationMinutes максимальная длительность слота
	MaxSlotDurationMinutes = 60
)

// Допустимые длительности бронирования в минутах
var AllowedDurations = []int{TickMinutes, MaxSlotDurationMinutes}

// IsAllowedDuration проверяет, что длительность равна 30 или 60 минутам
func IsAllowedDuration(minutes int) bool {
	for _, d := range AllowedDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

// Ограничения валидации столовых
const (
	MinCapacity          = 1
	MinPeriodMinutes     = 30 // каждый период работы не короче одного тика
	MaxCanteenNameLength = 200
)

// Ограничения валидации студентов
const (
	MaxStudentNameLength = 200
	MaxEmailLength       = 254
)
