package reservations

import (
	"context"
	"time"

	"github.com/m04kA/Canteen-BookingService/internal/domain"
)

// ReservationRepository - контракт хранилища бронирований
type ReservationRepository interface {
	GetByStudentBetween(ctx context.Context, studentID int64, from, to time.Time) ([]*domain.Reservation, error)
}

// Logger - контракт логгера
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
