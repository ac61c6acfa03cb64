package domain

import (
	"time"

	"github.com/m04kA/Canteen-BookingService/pkg/types"
)

// Slot кандидат на бронирование - производное значение, нигде не хранится
// Существует только во время генерации календаря и запросов доступности
type Slot struct {
	Date            time.Time
	StartTime       types.TimeString
	Meal            Meal
	DurationMinutes int
}
