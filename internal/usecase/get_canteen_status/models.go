package get_canteen_status

import (
	"time"

	"github.com/m04kA/Canteen-BookingService/pkg/types"
)

// Request модель запроса статуса одной столовой
// Времена первого и последнего дня опциональны: по умолчанию день
// берётся целиком (00:00 - 23:59)
type Request struct {
	CanteenID       int64
	StartDate       string // "2025-12-10"
	StartTime       string // "08:00", опционально
	EndDate         string // "2025-12-10"
	EndTime         string // "09:00", опционально
	DurationMinutes int    // длительность слота: 30 или 60
}

// AllRequest модель запроса статуса всех столовых
type AllRequest struct {
	StartDate       string
	StartTime       string
	EndDate         string
	EndTime         string
	DurationMinutes int
}

// SlotStatus слот с количеством оставшихся мест
type SlotStatus struct {
	Date              time.Time
	Meal              string
	StartTime         types.TimeString
	RemainingCapacity int
}

// Response модель ответа по одной столовой
// Nil-ответ без ошибки означает, что столовая не найдена
type Response struct {
	CanteenID int64
	Name      string
	Slots     []SlotStatus
}

// AllResponse модель ответа по всем столовым
// Порядок столовых совпадает с порядком листинга
type AllResponse struct {
	Canteens []Response
}
