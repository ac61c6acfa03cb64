package cancel_reservation

import (
	"time"

	"github.com/m04kA/Canteen-BookingService/pkg/types"
)

// Request модель запроса на отмену бронирования
type Request struct {
	ReservationID int64 // ID бронирования
	StudentID     int64 // ID студента, запросившего отмену
}

// Response модель ответа с отменённым бронированием
// Nil-ответ без ошибки означает "не применимо": брони нет, она чужая
// или уже отменена
type Response struct {
	ID              int64
	StudentID       int64
	CanteenID       int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string
	CreatedAt       time.Time
	CancelledAt     *time.Time
}
