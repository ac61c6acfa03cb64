package reservations

import (
	"github.com/m04kA/Canteen-BookingService/internal/domain"
	"github.com/m04kA/Canteen-BookingService/pkg/types"
)

// GetByStudentRequest - запрос истории бронирований студента
type GetByStudentRequest struct {
	StudentID int64
	StartDate string
	EndDate   string
}

// Reservation - бронирование в ответе сервиса
type Reservation struct {
	ID              int64
	StudentID       int64
	CanteenID       int64
	Date            string
	StartTime       types.TimeString
	DurationMinutes int
	Status          domain.ReservationStatus
}

// Response - список бронирований студента
type Response struct {
	Reservations []Reservation
}
