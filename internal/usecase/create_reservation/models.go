package create_reservation

import (
	"time"

	"github.com/m04kA/Canteen-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
// Дата и время приходят строками: их разбор и проверка - часть
// предусловий движка, а не транспортного слоя
type Request struct {
	StudentID       int64  // ID студента (доверенный идентификатор вызывающей стороны)
	CanteenID       int64  // ID столовой
	Date            string // дата брони, "2025-12-10"
	StartTime       string // время начала, "08:30"
	DurationMinutes int    // длительность: 30 или 60
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	StudentID       int64
	CanteenID       int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string
	CreatedAt       time.Time
}
